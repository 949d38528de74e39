// internal/runutil/progress.go
package runutil

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress is a files-processed bar. A nil *Progress is valid and does nothing.
type Progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// NewProgress returns a bar over total files on out, or nil when disabled.
func NewProgress(enabled bool, out io.Writer, total int) *Progress {
	if !enabled || total <= 0 {
		return nil
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("processed files: ", decor.WC{W: len("processed files: "), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Progress{p: p, bar: bar}
}

// Increment marks one more file as processed.
func (pr *Progress) Increment() {
	if pr == nil {
		return
	}
	pr.bar.Increment()
}

// Wait stops the bar, aborting it if not every file was processed, and
// waits for the final render.
func (pr *Progress) Wait() {
	if pr == nil {
		return
	}
	if !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}

// internal/writers/block.go
package writers

import (
	"bufio"
	"errors"
	"io"
	"sync"
	"syscall"
)

// Block is one rendered, self-contained graph payload.
type Block struct {
	Component int
	Accession string // empty in merged mode
	Text      string
}

// Reuse a 64 KiB buffered writer across block writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// StartBlockWriter spins up the single goroutine that owns out. Each block is
// written whole, so blocks from concurrent producers never interleave. After
// a write error the goroutine keeps draining the channel so producers never
// block; the first error is reported on the returned channel once in is
// closed. Broken pipes are reported as nil.
func StartBlockWriter(out io.Writer, bufSize int) (chan<- Block, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan Block, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		var werr error
		for b := range in {
			if werr != nil {
				continue
			}
			if _, err := bw.WriteString(b.Text); err != nil {
				werr = err
			}
		}
		if werr == nil {
			werr = bw.Flush()
		}
		if IsBrokenPipe(werr) {
			werr = nil
		}
		done <- werr
	}()

	return in, done
}

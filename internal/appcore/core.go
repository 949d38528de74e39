// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"fa2dbg/internal/cmdutil"
	"fa2dbg/internal/pipeline"
	"fa2dbg/internal/report"
	"fa2dbg/internal/runutil"
	"fa2dbg/internal/version"
	"fa2dbg/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// Options is the validated run configuration.
type Options struct {
	Files []string

	KmerLength     int
	Component      int
	StrandSpecific bool
	GraphPerRecord bool

	Threads int

	Output      string
	SummaryFile string
	Progress    bool
	Monitor     int
}

func (o Options) mode() string {
	if o.GraphPerRecord {
		return "per-record"
	}
	return "merged"
}

// Run builds the graph(s) described by o and writes them to stdout.
// Diagnostics go to stderr. The return value is the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	logger := cmdutil.NewLogger(stderr, o.Monitor)

	render, err := writers.Lookup(o.Output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	thr := runutil.EffectiveThreads(o.Threads, o.GraphPerRecord)
	cfg := pipeline.Config{
		K:              o.KmerLength,
		StrandSpecific: o.StrandSpecific,
		Threads:        thr,
		Monitor:        o.Monitor,
		Logger:         logger,
	}
	prog := runutil.NewProgress(o.Progress, stderr, len(o.Files))
	if prog != nil {
		cfg.Progress = prog
	}

	logger.Info("building", "mode", o.mode(), "k", o.KmerLength, "strand_specific", o.StrandSpecific,
		"files", len(o.Files), "threads", thr, "output", o.Output)

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartBlockWriter(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	start := time.Now()
	var (
		st   pipeline.Stats
		perr error
	)
	if o.GraphPerRecord {
		st, perr = pipeline.PerRecord(ctx, cfg, o.Files, pipeline.Render(render), func(r pipeline.Result) error {
			select {
			case inCh <- writers.Block{Component: r.Component, Accession: r.Accession, Text: r.Text}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	} else {
		g, mst, err := pipeline.Merged(ctx, cfg, o.Files)
		st, perr = mst, err
		if perr == nil {
			if w := runutil.EmptyGraphWarning(o.KmerLength, g.NumNodes()); w != "" {
				logger.Warn(w, "component", o.Component)
			}
			text, err := render(g, o.Component, o.StrandSpecific)
			if err != nil {
				perr = fmt.Errorf("render component %d: %w", o.Component, err)
			} else {
				inCh <- writers.Block{Component: o.Component, Text: text}
			}
		}
	}

	close(inCh)
	prog.Wait()

	if werr := <-writeErr; werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintln(stderr, perr)
		return ExitIO
	}

	logger.Info("done", "records", st.Records, "graphs", st.Graphs, "skipped", st.Skipped,
		"nodes", st.Nodes, "edges", st.Edges, "elapsed", time.Since(start).Round(time.Millisecond))

	if o.SummaryFile != "" {
		sum := report.Summary{
			Version:        version.Version,
			Mode:           o.mode(),
			Output:         o.Output,
			KmerLength:     o.KmerLength,
			StrandSpecific: o.StrandSpecific,
			Threads:        thr,
			Inputs:         o.Files,
			Files:          st.Files,
			Records:        st.Records,
			Bundles:        st.Bundles,
			Graphs:         st.Graphs,
			Skipped:        st.Skipped,
			Nodes:          st.Nodes,
			Edges:          st.Edges,
			ElapsedSecs:    time.Since(start).Seconds(),
		}
		if !o.GraphPerRecord {
			sum.Component = o.Component
		}
		if err := report.Write(o.SummaryFile, sum); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitIO
		}
	}
	return ExitOK
}

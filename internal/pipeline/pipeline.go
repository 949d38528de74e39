// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"fa2dbg-core/fasta"
	"fa2dbg-core/kmergraph"
	"fa2dbg/internal/common"
)

// Config controls graph construction.
type Config struct {
	K              int
	StrandSpecific bool
	Threads        int         // per-record worker goroutines (>=1)
	Monitor        int         // >1 logs each file, >2 logs each added sequence
	Logger         *log.Logger // nil discards diagnostics
	Progress       Progress    // optional, ticked once per finished file
}

// Progress receives one tick per finished input file.
type Progress interface {
	Increment()
}

// Render serializes one graph for emission.
type Render func(g *kmergraph.Graph, component int, strandSpecific bool) (string, error)

// Result is one rendered per-record graph.
type Result struct {
	Accession string
	Component int
	Text      string
	Nodes     int
	Edges     int
}

// Stats summarizes a build.
type Stats struct {
	Files   int
	Records int
	Bundles int
	Graphs  int
	Skipped int
	Nodes   int
	Edges   int
}

func (c Config) normalize() Config {
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

func (c Config) trace() func(string) {
	if c.Monitor <= 2 {
		return nil
	}
	return func(seq string) { c.Logger.Debug("adding sequence to graph", "seq", seq) }
}

func (c Config) fileDone() {
	if c.Progress != nil {
		c.Progress.Increment()
	}
}

func (c Config) openFile(path string) (*fasta.Source, error) {
	if c.Monitor > 1 {
		c.Logger.Debug("parsing file", "file", path)
	}
	src, err := fasta.NewSource(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return src, nil
}

// Merged builds a single graph from every record of every file, in order.
// The first open or read error aborts the build.
func Merged(ctx context.Context, cfg Config, files []string) (*kmergraph.Graph, Stats, error) {
	cfg = cfg.normalize()
	g := kmergraph.New(cfg.K)
	trace := cfg.trace()
	var st Stats

	for _, fa := range files {
		src, err := cfg.openFile(fa)
		if err != nil {
			return g, st, err
		}
		for {
			if err := ctx.Err(); err != nil {
				_ = src.Close()
				return g, st, err
			}
			rec, ok, err := src.Next()
			if err != nil {
				_ = src.Close()
				return g, st, fmt.Errorf("read %s: %w", fa, err)
			}
			if !ok {
				break
			}
			st.Records++
			st.Bundles += AddBundles(g, string(rec.Seq), cfg.StrandSpecific, trace)
		}
		_ = src.Close()
		st.Files++
		cfg.fileDone()
	}

	st.Graphs = 1
	st.Nodes = g.NumNodes()
	st.Edges = g.NumEdges()
	return g, st, nil
}

// PerRecord builds, renders and emits one graph per record. Files are taken
// in order; within a file, cfg.Threads workers claim records from a shared
// source. emit is called concurrently and must serialize its own output.
//
// A record whose accession carries no component id is logged and skipped.
// An open/read error or an emit error stops all workers and is returned.
func PerRecord(ctx context.Context, cfg Config, files []string, render Render, emit func(Result) error) (Stats, error) {
	cfg = cfg.normalize()
	trace := cfg.trace()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		st       Stats
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	worker := func(src *fasta.Source) {
		for ctx.Err() == nil {
			rec, ok, err := src.Next()
			if err != nil {
				fail(fmt.Errorf("read %s: %w", src.Path, err))
				return
			}
			if !ok {
				return
			}
			res, bundles, err := buildRecord(cfg, rec, render, trace)

			mu.Lock()
			st.Records++
			st.Bundles += bundles
			mu.Unlock()

			var ae *common.AccessionError
			switch {
			case errors.As(err, &ae):
				cfg.Logger.Warn("skipping record", "accession", ae.Accession, "file", src.Path, "reason", ae.Reason)
				mu.Lock()
				st.Skipped++
				mu.Unlock()
				continue
			case err != nil:
				fail(fmt.Errorf("render %s: %w", rec.ID, err))
				return
			}

			if err := emit(res); err != nil {
				fail(err)
				return
			}
			mu.Lock()
			st.Graphs++
			st.Nodes += res.Nodes
			st.Edges += res.Edges
			mu.Unlock()
		}
	}

	for _, fa := range files {
		if ctx.Err() != nil {
			break
		}
		src, err := cfg.openFile(fa)
		if err != nil {
			fail(err)
			break
		}
		var wg sync.WaitGroup
		wg.Add(cfg.Threads)
		for w := 0; w < cfg.Threads; w++ {
			go func() {
				defer wg.Done()
				worker(src)
			}()
		}
		wg.Wait()
		_ = src.Close()

		mu.Lock()
		st.Files++
		mu.Unlock()
		cfg.fileDone()
	}

	mu.Lock()
	defer mu.Unlock()
	if firstErr != nil {
		return st, firstErr
	}
	return st, ctx.Err()
}

// buildRecord runs one claimed record through parse -> build -> render.
func buildRecord(cfg Config, rec fasta.Record, render Render, trace func(string)) (Result, int, error) {
	comp, err := common.ComponentFromAccession(rec.ID)
	if err != nil {
		return Result{}, 0, err
	}
	g := kmergraph.New(cfg.K)
	bundles := AddBundles(g, string(rec.Seq), cfg.StrandSpecific, trace)
	text, err := render(g, comp, cfg.StrandSpecific)
	if err != nil {
		return Result{}, bundles, err
	}
	return Result{
		Accession: rec.ID,
		Component: comp,
		Text:      text,
		Nodes:     g.NumNodes(),
		Edges:     g.NumEdges(),
	}, bundles, nil
}

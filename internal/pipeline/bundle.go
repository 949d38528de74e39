// internal/pipeline/bundle.go
package pipeline

import (
	"fa2dbg-core/kmergraph"
	"fa2dbg-core/seqs"
)

// AddBundles splits seq into bundles, sanitizes each and adds it to g,
// followed by its reverse complement unless strandSpecific. trace, when not
// nil, sees every sequence added. It returns the number of bundles.
func AddBundles(g *kmergraph.Graph, seq string, strandSpecific bool, trace func(string)) int {
	bundles := seqs.SplitBundles(seq)
	for _, b := range bundles {
		b = seqs.Sanitize(b)
		if trace != nil {
			trace(b)
		}
		g.AddSequence(b)
		if strandSpecific {
			continue
		}
		rc := seqs.ReverseComplement(b)
		if trace != nil {
			trace(rc)
		}
		g.AddSequence(rc)
	}
	return len(bundles)
}

// internal/writers/dot.go
package writers

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"fa2dbg-core/kmergraph"
)

func init() { Register(FormatDOT, RenderDOT) }

// RenderDOT renders g as one Graphviz digraph named after its component.
// Node labels carry the k-mer and its count, edge labels the edge count.
func RenderDOT(g *kmergraph.Graph, component int, strandSpecific bool) (string, error) {
	name := strconv.Quote(fmt.Sprintf("component %d", component))
	gv := gographviz.NewGraph()
	if err := gv.SetName(name); err != nil {
		return "", err
	}
	if err := gv.SetDir(true); err != nil {
		return "", err
	}
	label := fmt.Sprintf("\"component %d k=%d strand_specific=%t\"", component, g.K(), strandSpecific)
	if err := gv.AddAttr(name, "label", label); err != nil {
		return "", err
	}
	for _, n := range g.Nodes() {
		attrs := map[string]string{
			"label": fmt.Sprintf("\"%s\\nx%d\"", n.Kmer, n.Count),
		}
		if err := gv.AddNode(name, strconv.Quote(n.Kmer), attrs); err != nil {
			return "", err
		}
	}
	for _, e := range g.Edges() {
		attrs := map[string]string{"label": strconv.Quote(strconv.Itoa(e.Count))}
		if err := gv.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), true, attrs); err != nil {
			return "", err
		}
	}
	return gv.String(), nil
}

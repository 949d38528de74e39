// internal/writers/jsonl.go
package writers

import (
	"encoding/json"

	"fa2dbg-core/kmergraph"
	"fa2dbg/pkg/api"
)

func init() { Register(FormatJSONL, RenderJSONL) }

// ToAPIGraph converts g to the v1 wire schema.
func ToAPIGraph(g *kmergraph.Graph, component int, strandSpecific bool) api.GraphV1 {
	nodes := g.Nodes()
	edges := g.Edges()
	out := api.GraphV1{
		Component:      component,
		K:              g.K(),
		StrandSpecific: strandSpecific,
		Nodes:          make([]api.NodeV1, len(nodes)),
		Edges:          make([]api.EdgeV1, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = api.NodeV1{Kmer: n.Kmer, Count: n.Count}
	}
	for i, e := range edges {
		out.Edges[i] = api.EdgeV1{From: e.From, To: e.To, Count: e.Count}
	}
	return out
}

// RenderJSONL renders g as one JSON line (v1).
func RenderJSONL(g *kmergraph.Graph, component int, strandSpecific bool) (string, error) {
	b, err := json.Marshal(ToAPIGraph(g, component, strandSpecific))
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

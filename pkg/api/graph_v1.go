// pkg/api/graph_v1.go
package api

// GraphV1 is the stable JSON/JSONL schema for one emitted graph.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GraphV1 struct {
	Component      int      `json:"component"`
	K              int      `json:"k"`
	StrandSpecific bool     `json:"strand_specific"`
	Accession      string   `json:"accession,omitempty"`
	Nodes          []NodeV1 `json:"nodes"`
	Edges          []EdgeV1 `json:"edges"`
}

// NodeV1 is one k-mer and its multiplicity.
type NodeV1 struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// EdgeV1 is one adjacency and its multiplicity.
type EdgeV1 struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// Package kmergraph accumulates de Bruijn graphs over fixed-length k-mers.
//
// Nodes are distinct k-mers with an occurrence count. An edge joins two
// k-mers that are adjacent in some added sequence (they overlap by k-1
// bases) and carries the number of times that adjacency was observed.
// Counts only ever grow: adding the same data twice doubles them.
package kmergraph

import (
	"fmt"
	"sort"
)

const bases = "ACGT"

// baseIndex maps a nucleotide to its slot in node.out; -1 for anything else.
func baseIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return -1
}

type node struct {
	count int
	out   [4]int // successor edge counts keyed by the extending base
}

// Node is a k-mer and its multiplicity.
type Node struct {
	Kmer  string
	Count int
}

// Edge is a directed k-mer adjacency and its multiplicity.
type Edge struct {
	From, To string
	Count    int
}

// Graph is a de Bruijn graph for a fixed k. It is not safe for concurrent
// mutation; build it from one goroutine, then read it from any.
type Graph struct {
	k     int
	nodes map[string]*node
	edges int
}

// New returns an empty graph. k <= 0 yields a graph that never accepts k-mers.
func New(k int) *Graph {
	return &Graph{k: k, nodes: make(map[string]*node)}
}

// K returns the k-mer length.
func (g *Graph) K() int { return g.k }

// NumNodes returns the number of distinct k-mers.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of distinct adjacencies.
func (g *Graph) NumEdges() int { return g.edges }

// Empty reports whether the graph holds no k-mers.
func (g *Graph) Empty() bool { return len(g.nodes) == 0 }

func (g *Graph) get(kmer string) *node {
	n := g.nodes[kmer]
	if n == nil {
		n = &node{}
		g.nodes[kmer] = n
	}
	return n
}

// AddSequence counts every k-mer of seq and every adjacent pair of k-mers.
// A sequence shorter than k contributes nothing.
func (g *Graph) AddSequence(seq string) {
	if g.k <= 0 || len(seq) < g.k {
		return
	}
	last := len(seq) - g.k
	var prev *node
	for i := 0; i <= last; i++ {
		cur := g.get(seq[i : i+g.k])
		cur.count++
		if prev != nil {
			if bi := baseIndex(seq[i+g.k-1]); bi >= 0 {
				if prev.out[bi] == 0 {
					g.edges++
				}
				prev.out[bi]++
			}
		}
		prev = cur
	}
}

// AddKmer adds n occurrences of kmer.
func (g *Graph) AddKmer(kmer string, n int) error {
	if g.k <= 0 || len(kmer) != g.k {
		return fmt.Errorf("kmer %q has length %d, want %d", kmer, len(kmer), g.k)
	}
	g.get(kmer).count += n
	return nil
}

// AddEdge adds n observations of the adjacency from -> to. Both k-mers are
// created with a zero count when absent.
func (g *Graph) AddEdge(from, to string, n int) error {
	if g.k <= 0 || len(from) != g.k || len(to) != g.k {
		return fmt.Errorf("edge %s->%s: k-mers must have length %d", from, to, g.k)
	}
	if from[1:] != to[:g.k-1] {
		return fmt.Errorf("edge %s->%s: k-mers do not overlap by %d", from, to, g.k-1)
	}
	bi := baseIndex(to[g.k-1])
	if bi < 0 {
		return fmt.Errorf("edge %s->%s: invalid extending base %q", from, to, to[g.k-1])
	}
	src := g.get(from)
	g.get(to)
	if n == 0 {
		return nil
	}
	if src.out[bi] == 0 {
		g.edges++
	}
	src.out[bi] += n
	return nil
}

// Count returns the multiplicity of kmer, 0 when absent.
func (g *Graph) Count(kmer string) int {
	if n := g.nodes[kmer]; n != nil {
		return n.count
	}
	return 0
}

// EdgeCount returns the multiplicity of from -> to, 0 when absent.
func (g *Graph) EdgeCount(from, to string) int {
	n := g.nodes[from]
	if n == nil || len(to) != g.k || from[1:] != to[:g.k-1] {
		return 0
	}
	bi := baseIndex(to[g.k-1])
	if bi < 0 {
		return 0
	}
	return n.out[bi]
}

func (g *Graph) sortedKmers() []string {
	keys := make([]string, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Nodes returns all nodes sorted by k-mer.
func (g *Graph) Nodes() []Node {
	keys := g.sortedKmers()
	out := make([]Node, len(keys))
	for i, k := range keys {
		out[i] = Node{Kmer: k, Count: g.nodes[k].count}
	}
	return out
}

// successors returns the outgoing edges of kmer in lexicographic order of
// the destination, which is the ACGT order of the extending base.
func (g *Graph) successors(kmer string, n *node) []Edge {
	var out []Edge
	for bi, c := range n.out {
		if c == 0 {
			continue
		}
		out = append(out, Edge{From: kmer, To: kmer[1:] + string(bases[bi]), Count: c})
	}
	return out
}

// Edges returns all edges sorted by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, k := range g.sortedKmers() {
		out = append(out, g.successors(k, g.nodes[k])...)
	}
	return out
}

// Equal reports whether g and o have the same k and the same node and edge
// multisets.
func (g *Graph) Equal(o *Graph) bool {
	if g.k != o.k || len(g.nodes) != len(o.nodes) || g.edges != o.edges {
		return false
	}
	for k, n := range g.nodes {
		m := o.nodes[k]
		if m == nil || *m != *n {
			return false
		}
	}
	return true
}

// core/kmergraph/chrysalis.go
package kmergraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line tags of the chrysalis block format.
const (
	tagHeader = "Component"
	tagNode   = "N"
	tagEdge   = "E"
	tagEnd    = "//"
)

// Block is one parsed chrysalis component.
type Block struct {
	Component      int
	K              int
	StrandSpecific bool
	Graph          *Graph
}

// ChrysalisFormat renders g as a self-contained, line-oriented block for the
// clustering stage:
//
//	Component	<id>	k=<k>	strand_specific=<0|1>	nodes=<n>	edges=<m>
//	N	<id>	<kmer>	<count>
//	E	<id>	<from>	<to>	<count>
//	//
//
// Nodes are sorted by k-mer, edges by (from, to).
func (g *Graph) ChrysalisFormat(component int, strandSpecific bool) string {
	id := strconv.Itoa(component)
	ss := "0"
	if strandSpecific {
		ss = "1"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%s\tk=%d\tstrand_specific=%s\tnodes=%d\tedges=%d\n",
		tagHeader, id, g.k, ss, len(g.nodes), g.edges)
	keys := g.sortedKmers()
	for _, k := range keys {
		b.WriteString(tagNode + "\t" + id + "\t" + k + "\t" + strconv.Itoa(g.nodes[k].count) + "\n")
	}
	for _, k := range keys {
		for _, e := range g.successors(k, g.nodes[k]) {
			b.WriteString(tagEdge + "\t" + id + "\t" + e.From + "\t" + e.To + "\t" + strconv.Itoa(e.Count) + "\n")
		}
	}
	b.WriteString(tagEnd + "\n")
	return b.String()
}

// ParseChrysalis reads concatenated chrysalis blocks back into graphs.
// Blank lines between blocks are ignored.
func ParseChrysalis(r io.Reader) ([]Block, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		out          []Block
		cur          *Block
		wantN, wantE int
		lineNo       int
		seen         map[string]bool
	)
	fail := func(format string, a ...any) error {
		return fmt.Errorf("chrysalis line %d: %s", lineNo, fmt.Sprintf(format, a...))
	}

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" && cur == nil {
			continue
		}
		f := strings.Split(line, "\t")
		if cur == nil {
			if f[0] != tagHeader {
				return out, fail("expected %s header, got %q", tagHeader, line)
			}
			blk, n, e, err := parseHeaderLine(f)
			if err != nil {
				return out, fail("%v", err)
			}
			cur, wantN, wantE = &blk, n, e
			seen = make(map[string]bool, n)
			continue
		}
		switch f[0] {
		case tagEnd:
			if got := cur.Graph.NumNodes(); got != wantN {
				return out, fail("component %d declares %d nodes, found %d", cur.Component, wantN, got)
			}
			if got := cur.Graph.NumEdges(); got != wantE {
				return out, fail("component %d declares %d edges, found %d", cur.Component, wantE, got)
			}
			out = append(out, *cur)
			cur = nil
		case tagNode:
			if len(f) != 4 {
				return out, fail("node line needs 4 fields, got %d", len(f))
			}
			if err := checkID(f[1], cur.Component); err != nil {
				return out, fail("%v", err)
			}
			c, err := strconv.Atoi(f[3])
			if err != nil || c < 0 {
				return out, fail("bad node count %q", f[3])
			}
			if seen[f[2]] {
				return out, fail("duplicate node %s", f[2])
			}
			seen[f[2]] = true
			if err := cur.Graph.AddKmer(f[2], c); err != nil {
				return out, fail("%v", err)
			}
		case tagEdge:
			if len(f) != 5 {
				return out, fail("edge line needs 5 fields, got %d", len(f))
			}
			if err := checkID(f[1], cur.Component); err != nil {
				return out, fail("%v", err)
			}
			c, err := strconv.Atoi(f[4])
			if err != nil || c <= 0 {
				return out, fail("bad edge count %q", f[4])
			}
			if cur.Graph.EdgeCount(f[2], f[3]) != 0 {
				return out, fail("duplicate edge %s->%s", f[2], f[3])
			}
			if err := cur.Graph.AddEdge(f[2], f[3], c); err != nil {
				return out, fail("%v", err)
			}
		default:
			return out, fail("unknown line tag %q", f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("chrysalis scan: %w", err)
	}
	if cur != nil {
		return out, fmt.Errorf("chrysalis: component %d not terminated by %q", cur.Component, tagEnd)
	}
	return out, nil
}

func parseHeaderLine(f []string) (Block, int, int, error) {
	if len(f) != 6 {
		return Block{}, 0, 0, fmt.Errorf("header needs 6 fields, got %d", len(f))
	}
	id, err := strconv.Atoi(f[1])
	if err != nil {
		return Block{}, 0, 0, fmt.Errorf("bad component id %q", f[1])
	}
	vals := make(map[string]int, 4)
	for _, kv := range f[2:] {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return Block{}, 0, 0, fmt.Errorf("bad header field %q", kv)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return Block{}, 0, 0, fmt.Errorf("bad header value %q", kv)
		}
		vals[key] = n
	}
	for _, key := range []string{"k", "strand_specific", "nodes", "edges"} {
		if _, ok := vals[key]; !ok {
			return Block{}, 0, 0, fmt.Errorf("header missing %s", key)
		}
	}
	blk := Block{
		Component:      id,
		K:              vals["k"],
		StrandSpecific: vals["strand_specific"] != 0,
		Graph:          New(vals["k"]),
	}
	return blk, vals["nodes"], vals["edges"], nil
}

func checkID(field string, want int) error {
	id, err := strconv.Atoi(field)
	if err != nil || id != want {
		return fmt.Errorf("component id %q does not match header %d", field, want)
	}
	return nil
}

// core/kmergraph/text.go
package kmergraph

import (
	"strconv"
	"strings"
)

// String renders a descriptive dump: a header line, then one line per node
// in k-mer order with its count and successor:count pairs, then a blank line.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("DeBruijnGraph k=")
	b.WriteString(strconv.Itoa(g.k))
	b.WriteString(" nodes=")
	b.WriteString(strconv.Itoa(len(g.nodes)))
	b.WriteString(" edges=")
	b.WriteString(strconv.Itoa(g.edges))
	b.WriteByte('\n')
	for _, k := range g.sortedKmers() {
		n := g.nodes[k]
		b.WriteString(k)
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(n.count))
		for _, e := range g.successors(k, n) {
			b.WriteByte('\t')
			b.WriteString(e.To)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.Count))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

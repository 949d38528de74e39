// internal/writers/registry.go
package writers

import (
	"fmt"
	"sort"

	"fa2dbg-core/kmergraph"
)

// Output format names.
const (
	FormatText      = "text"
	FormatChrysalis = "chrysalis"
	FormatDOT       = "dot"
	FormatJSONL     = "jsonl"
)

// Render serializes one graph into a self-contained block.
type Render func(g *kmergraph.Graph, component int, strandSpecific bool) (string, error)

// Renderers maps format name to renderer. Register in init() blocks.
var Renderers = map[string]Render{}

// Register adds or replaces a renderer (last wins).
func Register(format string, fn Render) { Renderers[format] = fn }

// Lookup returns the renderer for format.
func Lookup(format string) (Render, error) {
	fn, ok := Renderers[format]
	if !ok {
		return nil, fmt.Errorf("unknown graph format %q (no writer registered)", format)
	}
	return fn, nil
}

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(Renderers))
	for name := range Renderers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register(FormatText, func(g *kmergraph.Graph, _ int, _ bool) (string, error) {
		return g.String(), nil
	})
	Register(FormatChrysalis, func(g *kmergraph.Graph, component int, ss bool) (string, error) {
		return g.ChrysalisFormat(component, ss), nil
	})
}

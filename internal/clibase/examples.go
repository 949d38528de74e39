package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// QuickstartBody is the example block shown by --examples.
func QuickstartBody(name string) func(io.Writer) {
	return func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  # one merged graph, component 7, k=25\n")
		_, _ = fmt.Fprintf(w, "  %s --fasta reads.fa -K 25 -C 7 > comp7.dbg\n\n", name)
		_, _ = fmt.Fprintf(w, "  # strand-specific reads, readable dump\n")
		_, _ = fmt.Fprintf(w, "  %s --fasta reads.fa -K 25 -C 7 --SS --toString\n\n", name)
		_, _ = fmt.Fprintf(w, "  # one graph per record (>a1_12 -> component 12), 8 workers\n")
		_, _ = fmt.Fprintf(w, "  %s --graph-per-record -K 25 -t 8 components/*.fa.gz\n\n", name)
		_, _ = fmt.Fprintf(w, "  # Graphviz for a small component\n")
		_, _ = fmt.Fprintf(w, "  %s --fasta small.fa -K 5 -C 1 -o dot | dot -Tsvg > g.svg\n", name)
	}
}

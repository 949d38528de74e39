package cli

import (
	"flag"
	"fmt"
	"io"

	"fa2dbg/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet with the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] --fasta file[,file...] -K k (-C id | --graph-per-record)\n", name)
		fmt.Fprintf(out, "  %s [flags] -K k --graph-per-record file.fa [file.fa ...]\n", name)
	})
	return fs
}

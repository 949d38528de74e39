package clibase

import (
	"flag"
	"fmt"
	"io"

	"fa2dbg/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints additional sections (usage line, examples) before the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – FASTA to de Bruijn k-mer graph\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --fasta list             FASTA file(s), comma-separated or repeatable; '-' for STDIN")
		fmt.Fprintln(out, "                               (positional arguments and globs are accepted too)")

		fmt.Fprintln(out, "\nGraph:")
		fmt.Fprintln(out, "  -K, --kmer-length int        k-mer length [*]")
		fmt.Fprintln(out, "  -C, --component int          component id (required unless --graph-per-record)")
		fmt.Fprintf(out, "      --SS, --strand-specific  do not add reverse complements [%s]\n", def("strand-specific"))
		fmt.Fprintf(out, "      --graph-per-record       one graph per FASTA record, id from accession [%s]\n", def("graph-per-record"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int            worker threads for --graph-per-record (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string          text | chrysalis | dot | jsonl [%s]\n", def("output"))
		fmt.Fprintln(out, "      --toString               same as --output text")
		fmt.Fprintln(out, "      --summary file           write a TOML run summary")

		fmt.Fprintln(out, "\nConfiguration:")
		fmt.Fprintln(out, "      --config file            TOML settings file")
		fmt.Fprintln(out, "      --env file               dotenv file with FA2DBG_* variables [.env]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --monitor int            verbosity: 0=warn, 1=info, 2+=debug [%s]\n", def("monitor"))
		fmt.Fprintf(out, "      --progress               progress bar on stderr [%s]\n", def("progress"))
		fmt.Fprintln(out, "      --examples               print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version                print version and exit")
		fmt.Fprintln(out, "  -h, --help                   show this help and exit")
	}
}

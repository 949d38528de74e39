// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fa2dbg/internal/clibase"
	"fa2dbg/internal/cliutil"
	"fa2dbg/internal/config"
)

// Output formats accepted by --output.
const (
	OutputText      = "text"
	OutputChrysalis = "chrysalis"
	OutputDOT       = "dot"
	OutputJSONL     = "jsonl"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Fasta []string

	// Graph
	KmerLength     int
	Component      int
	HasComponent   bool
	StrandSpecific bool
	GraphPerRecord bool

	// Performance
	Threads int

	// Output
	Output      string
	SummaryFile string
	Progress    bool

	// Configuration
	ConfigFile string
	EnvFile    string

	// Misc
	Monitor int
	Version bool

	set map[string]bool
}

// IsSet reports whether the named option was given explicitly on the
// command line. Short aliases report under their long name.
func (o Options) IsSet(name string) bool { return o.set[name] }

// long names for the short/legacy aliases
var aliases = map[string]string{
	"K":  "kmer-length",
	"C":  "component",
	"SS": "strand-specific",
	"t":  "threads",
	"o":  "output",
	"v":  "version",
}

func canonical(name string) string {
	if long, ok := aliases[name]; ok {
		return long
	}
	return name
}

// sliceValue appends each value to a *[]string (for --fasta).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// ParseArgs registers and parses all flags. It does not validate; callers
// layer config with Apply and then call Validate.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples, toString bool
	var fasta []string

	fs.Var(&sliceValue{dst: &fasta}, "fasta", "FASTA file(s), comma-separated (repeatable or '-')")

	fs.IntVar(&opt.KmerLength, "K", 0, "k-mer length (shorthand)")
	fs.IntVar(&opt.KmerLength, "kmer-length", 0, "k-mer length")
	fs.IntVar(&opt.Component, "C", 0, "component id (shorthand)")
	fs.IntVar(&opt.Component, "component", 0, "component id")
	fs.BoolVar(&opt.StrandSpecific, "SS", false, "strand-specific (shorthand)")
	fs.BoolVar(&opt.StrandSpecific, "strand-specific", false, "strand-specific")
	fs.BoolVar(&opt.GraphPerRecord, "graph-per-record", false, "one graph per FASTA record")

	fs.IntVar(&opt.Threads, "t", 0, "worker threads (shorthand)")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs)")

	fs.StringVar(&opt.Output, "o", OutputChrysalis, "output format (shorthand)")
	fs.StringVar(&opt.Output, "output", OutputChrysalis, "output format: text | chrysalis | dot | jsonl")
	fs.BoolVar(&toString, "toString", false, "same as --output text")
	fs.StringVar(&opt.SummaryFile, "summary", "", "write a TOML run summary")
	fs.BoolVar(&opt.Progress, "progress", false, "progress bar on stderr")

	fs.StringVar(&opt.ConfigFile, "config", "", "TOML settings file")
	fs.StringVar(&opt.EnvFile, "env", "", "dotenv file")

	fs.IntVar(&opt.Monitor, "monitor", 0, "verbosity")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&examples, "examples", false, "print quickstart examples and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	opt.set = map[string]bool{}
	outputGiven := false
	fs.Visit(func(f *flag.Flag) {
		name := canonical(f.Name)
		opt.set[name] = true
		if name == "output" {
			outputGiven = true
		}
	})
	if toString {
		if outputGiven && opt.Output != OutputText {
			return opt, fmt.Errorf("--toString conflicts with --output %s", opt.Output)
		}
		opt.Output = OutputText
		opt.set["output"] = true
	}
	opt.HasComponent = opt.set["component"]

	inputs, err := cliutil.ExpandInputs(fasta, append(fs.Args(), posArgs...))
	if err != nil {
		return opt, err
	}
	opt.Fasta = inputs
	if len(opt.Fasta) > 0 {
		opt.set["fasta"] = true
	}
	return opt, nil
}

// Apply fills every option not given on the command line from s.
func (o *Options) Apply(s config.Settings) {
	if o.set == nil {
		o.set = map[string]bool{}
	}
	if !o.set["kmer-length"] && s.KmerLength != nil {
		o.KmerLength = *s.KmerLength
		o.set["kmer-length"] = true
	}
	if !o.set["component"] && s.Component != nil {
		o.Component = *s.Component
		o.HasComponent = true
	}
	if !o.set["strand-specific"] && s.StrandSpecific != nil {
		o.StrandSpecific = *s.StrandSpecific
	}
	if !o.set["graph-per-record"] && s.GraphPerRecord != nil {
		o.GraphPerRecord = *s.GraphPerRecord
	}
	if !o.set["output"] && s.Output != nil {
		o.Output = *s.Output
	}
	if !o.set["threads"] && s.Threads != nil {
		o.Threads = *s.Threads
	}
	if !o.set["monitor"] && s.Monitor != nil {
		o.Monitor = *s.Monitor
	}
	if !o.set["fasta"] && len(s.Fasta) > 0 {
		o.Fasta = append([]string(nil), s.Fasta...)
	}
}

// Validate checks the fully layered options.
func Validate(o Options) error {
	if len(o.Fasta) == 0 {
		return errors.New("at least one --fasta input is required")
	}
	if !o.set["kmer-length"] {
		return errors.New("-K/--kmer-length is required")
	}
	if o.KmerLength <= 0 {
		return fmt.Errorf("-K/--kmer-length must be ≥ 1 (got %d)", o.KmerLength)
	}
	if !o.GraphPerRecord && !o.HasComponent {
		return errors.New("-C/--component is required unless --graph-per-record is set")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Monitor < 0 {
		return errors.New("--monitor must be ≥ 0")
	}
	switch o.Output {
	case OutputText, OutputChrysalis, OutputDOT, OutputJSONL:
	default:
		return fmt.Errorf("invalid --output %q (want text | chrysalis | dot | jsonl)", o.Output)
	}
	return nil
}

// internal/cooccli/options.go
package cooccli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"dnabpe/internal/cliutil"
	"dnabpe/internal/output"
	"dnabpe/internal/version"
)

// Options holds all dnabpe-cooc CLI flags and arguments.
type Options struct {
	// Input: encoded-token files (one line per sequence, space-separated)
	InputFiles []string

	// Window parameters
	Window      int
	MinCount    int
	KeepMarkers bool

	// Output
	Output        string // text | csv | json
	TopPairs      int    // 0 = all
	DenseFile     string
	MarginalsFile string
	VocabFile     string
	Header        bool

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: windowed token co-occurrence statistics over encoded sequences

Reads the encoded-token export of dnabpe (one line per sequence) and emits
GloVe-style symmetric pair counts, marginals, and the token↔ID mapping.
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Positional arguments are treated as additional input paths.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var in stringSlice
	fs.Var(&in, "input", "encoded token file(s) (repeatable, '-' for stdin) [*]")
	fs.Var(&in, "i", "alias of --input")

	fs.IntVar(&opt.Window, "window-size", 5, "context window size in token positions [5]")
	fs.IntVar(&opt.Window, "w", 5, "alias of --window-size")
	fs.IntVar(&opt.MinCount, "min-count", 1, "minimum token count threshold [1]")
	fs.BoolVar(&opt.KeepMarkers, "keep-markers", false, "include boundary markers (<s>, </s>) in the matrix [false]")

	fs.StringVar(&opt.Output, "output", output.FormatText, "sparse output format: text | csv | json [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.IntVar(&opt.TopPairs, "top-pairs", 0, "emit only the N highest-count pairs (0 = all) [0]")
	fs.StringVar(&opt.DenseFile, "dense", "", "write dense matrix CSV to FILE")
	fs.StringVar(&opt.MarginalsFile, "marginals", "", "write marginal frequency CSV to FILE")
	fs.StringVar(&opt.VocabFile, "vocab", "", "write vocabulary mapping JSON to FILE")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/CSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the summary block [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	pos, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.InputFiles = append(in, pos...)
	opt.Header = !noHeader

	// Validation: structural misconfiguration fails before any processing.
	if len(opt.InputFiles) == 0 {
		return opt, errors.New("at least one --input file is required")
	}
	if opt.Window <= 0 {
		return opt, errors.New("--window-size must be ≥ 1")
	}
	if opt.MinCount < 1 {
		return opt, errors.New("--min-count must be ≥ 1")
	}
	if opt.TopPairs < 0 {
		return opt, errors.New("--top-pairs must be ≥ 0")
	}
	if !output.ValidFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

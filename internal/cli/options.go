// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"dnabpe/internal/cliutil"
	"dnabpe/internal/output"
	"dnabpe/internal/version"
)

// Options holds all dnabpe CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// BPE parameters
	Merges       int
	AutoOptimize bool
	Candidates   []int // empty = optimizer default sweep

	// Output
	Output      string // text | csv | json
	EncodedFile string
	TokensFile  string
	RulesFile   string
	ShowCodes   bool
	ShowVocab   bool
	Pretty      bool
	Header      bool // true unless --no-header

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: BPE vocabulary learning and encoding for DNA sequence corpora

Reads FASTA, learns byte-pair merge rules, encodes every sequence, and
exports token tables shaped for downstream co-occurrence analysis.
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Positional arguments are treated as additional FASTA paths.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var candidates string

	var seq stringSlice
	fs.Var(&seq, "sequences", "input FASTA file(s) (repeatable, '-' for stdin, .gz ok) [*]")
	fs.Var(&seq, "s", "alias of --sequences")

	fs.IntVar(&opt.Merges, "merges", 1000, "number of BPE merges to perform (stops early when no pair repeats) [1000]")
	fs.IntVar(&opt.Merges, "m", 1000, "alias of --merges")
	fs.BoolVar(&opt.AutoOptimize, "auto-optimize", false, "sweep merge budgets and pick the most efficient one [false]")
	fs.StringVar(&candidates, "candidates", "", "comma-separated merge budgets for --auto-optimize (default sweep if empty)")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | csv | json [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.StringVar(&opt.EncodedFile, "encoded", "", "write encoded sequences (one line per input, space-separated tokens) to FILE")
	fs.StringVar(&opt.TokensFile, "tokens", "", "write token frequency CSV to FILE")
	fs.StringVar(&opt.RulesFile, "rules", "", "write learned merge rules CSV to FILE")
	fs.BoolVar(&opt.ShowCodes, "show-codes", false, "print learned merge codes to stderr [false]")
	fs.BoolVar(&opt.ShowVocab, "show-vocab", false, "print learned vocabulary to stderr [false]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "render summary tables to stderr [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/CSV [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "encoder worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and the summary block [false]")
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
	opt.SeqFiles = append(seq, pos...)
	opt.Header = !noHeader

	if candidates != "" {
		list, err := parseIntList(candidates)
		if err != nil {
			return opt, fmt.Errorf("--candidates: %w", err)
		}
		opt.Candidates = list
	}

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Merges < 0 {
		return opt, errors.New("--merges must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if !output.ValidFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if len(opt.Candidates) > 0 && !opt.AutoOptimize {
		return opt, errors.New("--candidates requires --auto-optimize")
	}
	for _, c := range opt.Candidates {
		if c < 0 {
			return opt, errors.New("--candidates entries must be ≥ 0")
		}
	}
	return opt, nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", p)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

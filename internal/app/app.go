// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"dnabpe-core/bpe"
	"dnabpe-core/fasta"
	"dnabpe/internal/cli"
	"dnabpe/internal/cmdutil"
	"dnabpe/internal/optimizer"
	"dnabpe/internal/output"
	"dnabpe/internal/pipeline"
	"dnabpe/internal/pretty"
	"dnabpe/internal/version"
	"dnabpe/pkg/api"
)

// RunContext executes the full FASTA → learn → encode → export pipeline.
// Exit codes: 0 ok, 1 empty corpus / degenerate sweep, 2 usage, 3 runtime,
// 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnabpe")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}) // register flags so Usage prints defaults
		return usage(fs, outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnabpe version %s\n", version.Version)
		return flush(outw, stderr)
	}

	// Load the whole corpus up front; malformed records are skipped with a
	// warning, an unusable corpus is surfaced.
	records, warns, err := fasta.ReadAllFiles(opts.SeqFiles)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintln(stderr, "error: empty corpus: no usable sequences after loading")
		return 1
	}

	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}

	merges := opts.Merges
	if opts.AutoOptimize {
		rep, err := optimizer.Optimize(parent, seqs, opts.Candidates)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			_, _ = fmt.Fprintln(stderr, err)
			if errors.Is(err, optimizer.ErrDegenerateVocabulary) {
				return 1
			}
			return 2
		}
		merges = rep.Best.Merges
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, "auto-optimize: best merges=%d efficiency=%.6f ratio=%.3f vocab=%d\n",
				rep.Best.Merges, rep.Best.Efficiency, rep.Best.CompressionRatio, rep.Best.VocabSize)
		}
		if opts.Pretty {
			pretty.RenderOptimizerTable(stderr, rep)
		}
	}

	learner, err := bpe.NewLearner(bpe.Config{MaxMerges: merges})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	res := learner.Learn(seqs)

	tokens, stats, err := pipeline.EncodeAll(parent, records, res.Rules, opts.Threads)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.ShowCodes {
		for i, r := range res.Rules {
			_, _ = fmt.Fprintf(stderr, "%4d: %q + %q -> %q\n", i+1, r.Left, r.Right, r.Composite())
		}
	}
	if opts.ShowVocab {
		toks := res.Vocab.Tokens()
		sort.Strings(toks)
		for _, tok := range toks {
			_, _ = fmt.Fprintf(stderr, "  %q\t%d\n", tok, res.Vocab.Count(tok))
		}
	}

	list := encodedRecords(records, tokens)
	if err := writeMain(outw, opts.Output, list, opts.Header); err != nil {
		return writeErr(err, stderr)
	}
	if code := flush(outw, stderr); code != 0 {
		return code
	}

	if code := sideExports(opts, tokens, stats, res.Rules, stderr); code != 0 {
		return code
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr,
			"sequences=%d chars=%d tokens=%d compression=%.2fx vocab=%d merges=%d\n",
			len(records), stats.Chars(), stats.Tokens(), stats.CompressionRatio(),
			res.Vocab.Size(), len(res.Rules))
	}
	if opts.Pretty {
		pretty.RenderTokenTable(stderr, tokenFreqs(stats), 10)
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func encodedRecords(records []fasta.Record, tokens [][]string) []api.EncodedRecordV1 {
	list := make([]api.EncodedRecordV1, len(records))
	for i, r := range records {
		ratio := 0.0
		if n := len(tokens[i]); n > 0 {
			ratio = float64(len(r.Seq)) / float64(n)
		}
		list[i] = api.EncodedRecordV1{
			SequenceID:       r.ID,
			OriginalLength:   len(r.Seq),
			TokenCount:       len(tokens[i]),
			CompressionRatio: ratio,
			Encoded:          strings.Join(tokens[i], " "),
		}
	}
	return list
}

func tokenFreqs(stats *bpe.Stats) []api.TokenFreqV1 {
	freqs := stats.Frequencies()
	out := make([]api.TokenFreqV1, len(freqs))
	for i, f := range freqs {
		out[i] = api.TokenFreqV1{
			Token:     f.Token,
			Count:     f.Count,
			Frequency: f.Percent / 100,
			Percent:   f.Percent,
		}
	}
	return out
}

func writeMain(w io.Writer, format string, list []api.EncodedRecordV1, header bool) error {
	switch format {
	case output.FormatCSV:
		return output.WriteEncodedCSV(w, list, header)
	case output.FormatJSON:
		return output.WriteEncodedJSON(w, list)
	default:
		return output.WriteEncodedText(w, list, header)
	}
}

func sideExports(opts cli.Options, tokens [][]string, stats *bpe.Stats, rules []bpe.Rule, stderr io.Writer) int {
	if opts.EncodedFile != "" {
		if err := output.ToFile(opts.EncodedFile, func(w io.Writer) error {
			return output.WriteTokenLines(w, tokens)
		}); err != nil {
			return writeErr(err, stderr)
		}
	}
	if opts.TokensFile != "" {
		if err := output.ToFile(opts.TokensFile, func(w io.Writer) error {
			return output.WriteTokenFreqCSV(w, tokenFreqs(stats), opts.Header)
		}); err != nil {
			return writeErr(err, stderr)
		}
	}
	if opts.RulesFile != "" {
		list := make([]api.RuleV1, len(rules))
		for i, r := range rules {
			list[i] = api.RuleV1{Rank: i + 1, Left: r.Left, Right: r.Right, Composite: r.Composite()}
		}
		if err := output.ToFile(opts.RulesFile, func(w io.Writer) error {
			return output.WriteRulesCSV(w, list, opts.Header)
		}); err != nil {
			return writeErr(err, stderr)
		}
	}
	return 0
}

func usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	if c := flush(outw, stderr); c != 0 {
		return c
	}
	return code
}

func flush(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func writeErr(err error, stderr io.Writer) int {
	if output.IsBrokenPipe(err) {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 3
}

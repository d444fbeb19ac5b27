// internal/coocapp/app.go
package coocapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dnabpe-core/bpe"
	"dnabpe-core/cooc"
	"dnabpe/internal/cooccli"
	"dnabpe/internal/output"
	"dnabpe/internal/version"
	"dnabpe/pkg/api"
)

// RunContext executes encoded-tokens → co-occurrence table → export.
// Exit codes match dnabpe: 0 ok, 1 empty corpus, 2 usage, 3 runtime.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cooccli.NewFlagSet("dnabpe-cooc")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cooccli.ParseArgs(fs, []string{"-h"}) // register flags so Usage prints defaults
		return usage(fs, outw, stderr, 0)
	}

	opts, err := cooccli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnabpe-cooc version %s\n", version.Version)
		return flush(outw, stderr)
	}
	if err := parent.Err(); err != nil {
		return 130
	}

	seqs, err := cooc.ReadTokenFiles(opts.InputFiles)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if len(seqs) == 0 {
		_, _ = fmt.Fprintln(stderr, "error: empty corpus: no token sequences in input")
		return 1
	}

	cfg := cooc.Config{Window: opts.Window, MinCount: opts.MinCount}
	if !opts.KeepMarkers {
		cfg.Drop = []string{bpe.SeqStart, bpe.SeqEnd}
	}
	builder, err := cooc.New(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	table := builder.Build(seqs)

	pairs := sparsePairs(table, opts.TopPairs)
	if err := writeSparse(outw, opts.Output, pairs, opts.Header); err != nil {
		return writeErr(err, stderr)
	}
	if code := flush(outw, stderr); code != 0 {
		return code
	}

	if code := sideExports(opts, table, stderr); code != 0 {
		return code
	}

	if !opts.Quiet {
		n := table.Size()
		cells := n * n
		sparsity := 0.0
		if cells > 0 {
			// Off-diagonal entries occupy two cells each.
			filled := 0
			for _, p := range table.Sparse() {
				if p.ID1 == p.ID2 {
					filled++
				} else {
					filled += 2
				}
			}
			sparsity = 100 * (1 - float64(filled)/float64(cells))
		}
		_, _ = fmt.Fprintf(stderr,
			"vocab=%d shape=%dx%d nonzero=%d total_pairs=%d window=%d sparsity=%.2f%%\n",
			n, n, n, table.NonZero(), table.TotalPairs(), opts.Window, sparsity)
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func sparsePairs(t *cooc.Table, topN int) []api.CoocPairV1 {
	sp := t.Sparse()
	if topN > 0 && topN < len(sp) {
		sp = sp[:topN]
	}
	out := make([]api.CoocPairV1, len(sp))
	for i, p := range sp {
		out[i] = api.CoocPairV1{
			Token1: p.Token1, Token2: p.Token2,
			Token1D: p.ID1, Token2D: p.ID2,
			Count: p.Count,
		}
	}
	return out
}

func writeSparse(w io.Writer, format string, list []api.CoocPairV1, header bool) error {
	switch format {
	case output.FormatCSV:
		return output.WriteSparseCSV(w, list, header)
	case output.FormatJSON:
		return output.WriteSparseJSON(w, list)
	default:
		return output.WriteSparseText(w, list, header)
	}
}

func sideExports(opts cooccli.Options, t *cooc.Table, stderr io.Writer) int {
	if opts.DenseFile != "" {
		tokens := make([]string, t.Size())
		for i := range tokens {
			tokens[i] = t.TokenOf(i)
		}
		if err := output.ToFile(opts.DenseFile, func(w io.Writer) error {
			return output.WriteDenseCSV(w, tokens, t.Dense())
		}); err != nil {
			return writeErr(err, stderr)
		}
	}
	if opts.MarginalsFile != "" {
		marg := t.Marginals()
		list := make([]api.MarginalV1, len(marg))
		for i, m := range marg {
			list[i] = api.MarginalV1{Token: m.Token, ID: m.ID, Count: m.Count}
		}
		if err := output.ToFile(opts.MarginalsFile, func(w io.Writer) error {
			return output.WriteMarginalsCSV(w, list, opts.Header)
		}); err != nil {
			return writeErr(err, stderr)
		}
	}
	if opts.VocabFile != "" {
		m := t.Mapping()
		v := api.VocabMappingV1{
			TokenToID:   m.TokenToID,
			IDToToken:   m.IDToToken,
			TokenCounts: m.TokenCounts,
			VocabSize:   m.VocabSize,
			WindowSize:  opts.Window,
			MinCount:    opts.MinCount,
		}
		if err := output.ToFile(opts.VocabFile, func(w io.Writer) error {
			return output.WriteVocabJSON(w, v)
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

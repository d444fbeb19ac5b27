// Package pipeline encodes FASTA records with a learned BPE rule table.
// Rule application inside one sequence is strictly rank-ordered and not
// parallelizable; across sequences encoding is embarrassingly parallel, so
// records are fanned out to a bounded worker group and collected by index.
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dnabpe-core/bpe"
	"dnabpe-core/fasta"
)

// EncodeAll encodes every record with rules and returns the token sequences
// (index-aligned with records) plus batch statistics. threads <= 0 means all
// CPUs. Output is identical for any thread count.
func EncodeAll(ctx context.Context, records []fasta.Record, rules []bpe.Rule, threads int) ([][]string, *bpe.Stats, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	tokens := make([][]string, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := range records {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokens[i] = bpe.Encode(records[i].Seq, rules)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Stats are accumulated after the fan-in; the accumulator is not
	// synchronized and must stay single-writer.
	stats := bpe.NewStats()
	for i, r := range records {
		stats.Observe(len(r.Seq), tokens[i])
	}
	return tokens, stats, nil
}

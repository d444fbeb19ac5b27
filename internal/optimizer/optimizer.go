// internal/optimizer/optimizer.go
// Package optimizer sweeps BPE merge budgets and scores each resulting
// vocabulary to pick the best compression/size tradeoff.
package optimizer

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dnabpe-core/bpe"
)

// DefaultCandidates is the conventional sweep used when none is given.
var DefaultCandidates = []int{0, 5, 10, 15, 20, 30, 50, 75, 100, 150, 200, 300, 500}

// ErrDegenerateVocabulary means every candidate produced an empty vocabulary.
// A single degenerate candidate is skipped, not fatal.
var ErrDegenerateVocabulary = errors.New("optimizer: every candidate produced an empty vocabulary")

// Candidate is the scored outcome of one merge-budget run.
type Candidate struct {
	Merges           int // requested budget
	RulesLearned     int // actual rules before early stop
	VocabSize        int
	CompressionRatio float64
	Efficiency       float64 // CompressionRatio / VocabSize
	Degenerate       bool    // vocabulary was empty; excluded from selection
}

// Report is a completed sweep. Candidates preserves input order.
type Report struct {
	Best       Candidate
	Candidates []Candidate
}

// Optimize runs an independent Learn+Encode for every candidate budget and
// returns the one maximizing efficiency, tie-broken by higher compression
// ratio then by smaller merge count. Candidates run concurrently; results
// are compared only after every run completes. A negative candidate fails
// fast before any run starts.
func Optimize(ctx context.Context, seqs []string, candidates []int) (Report, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, m := range candidates {
		if m < 0 {
			return Report{}, bpe.ErrInvalidMergeBudget
		}
	}

	out := make([]Candidate, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, m := range candidates {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = runCandidate(seqs, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	best := -1
	for i, c := range out {
		if c.Degenerate {
			continue
		}
		if best < 0 || better(c, out[best]) {
			best = i
		}
	}
	if best < 0 {
		return Report{Candidates: out}, ErrDegenerateVocabulary
	}
	return Report{Best: out[best], Candidates: out}, nil
}

// runCandidate does one fresh learner pass; no state is shared between
// candidates. The learner's final corpus state is, by the encode-replay
// property, exactly what encoding the corpus with the learned rules yields,
// so it is scored directly.
func runCandidate(seqs []string, merges int) Candidate {
	l, _ := bpe.NewLearner(bpe.Config{MaxMerges: merges}) // budget validated by caller
	res := l.Learn(seqs)

	stats := bpe.NewStats()
	for i, s := range seqs {
		if res.Tokens[i] == nil {
			continue
		}
		stats.Observe(len(s), res.Tokens[i])
	}

	c := Candidate{
		Merges:           merges,
		RulesLearned:     len(res.Rules),
		VocabSize:        res.Vocab.Size(),
		CompressionRatio: stats.CompressionRatio(),
	}
	if c.VocabSize == 0 {
		c.Degenerate = true
		return c
	}
	c.Efficiency = c.CompressionRatio / float64(c.VocabSize)
	return c
}

func better(a, b Candidate) bool {
	if a.Efficiency != b.Efficiency {
		return a.Efficiency > b.Efficiency
	}
	if a.CompressionRatio != b.CompressionRatio {
		return a.CompressionRatio > b.CompressionRatio
	}
	return a.Merges < b.Merges
}

// internal/optimizer/optimizer_test.go
package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnabpe-core/bpe"
)

var corpus = []string{"ACGTACGTACGT", "ACACACACACAC", "GTGTGTGTGTGT"}

func TestOptimizeNeverPicksWorseCandidate(t *testing.T) {
	rep, err := Optimize(context.Background(), corpus, []int{0, 2, 5, 10})
	require.NoError(t, err)
	require.Len(t, rep.Candidates, 4)

	for _, c := range rep.Candidates {
		if c.Degenerate {
			continue
		}
		assert.LessOrEqual(t, c.Efficiency, rep.Best.Efficiency,
			"candidate %d beats the selected best", c.Merges)
	}
}

func TestOptimizeUsesDefaultSweep(t *testing.T) {
	rep, err := Optimize(context.Background(), corpus, nil)
	require.NoError(t, err)
	assert.Len(t, rep.Candidates, len(DefaultCandidates))
	for i, c := range rep.Candidates {
		assert.Equal(t, DefaultCandidates[i], c.Merges, "candidate order must follow input")
	}
}

func TestOptimizeRejectsNegativeCandidate(t *testing.T) {
	_, err := Optimize(context.Background(), corpus, []int{0, -3})
	assert.ErrorIs(t, err, bpe.ErrInvalidMergeBudget)
}

func TestOptimizeAllDegenerate(t *testing.T) {
	// Empty corpus: every candidate yields an empty vocabulary.
	_, err := Optimize(context.Background(), nil, []int{0, 5})
	assert.ErrorIs(t, err, ErrDegenerateVocabulary)
}

func TestOptimizeTieBreaksOnSmallestMergeCount(t *testing.T) {
	// With a corpus where no pair repeats, every budget stops early at zero
	// rules and all candidates score identically; the smallest budget wins.
	rep, err := Optimize(context.Background(), []string{"AC", "GT"}, []int{50, 5, 20})
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Best.Merges)
	assert.Equal(t, 0, rep.Best.RulesLearned)
}

func TestOptimizeIsDeterministicAcrossRuns(t *testing.T) {
	a, err := Optimize(context.Background(), corpus, []int{0, 3, 7})
	require.NoError(t, err)
	b, err := Optimize(context.Background(), corpus, []int{0, 3, 7})
	require.NoError(t, err)
	assert.Equal(t, a, b, "concurrent sweep must not affect results")
}

// core/cooc/builder.go
// Package cooc accumulates windowed token co-occurrence statistics over
// encoded token sequences, GloVe-style. The builder derives its own token→ID
// map from the sequences it is given; IDs are independent of any upstream
// vocabulary.
package cooc

import (
	"errors"
	"sort"
)

// ErrInvalidWindowSize rejects a non-positive window before any processing.
var ErrInvalidWindowSize = errors.New("cooc: window size must be positive")

// Config controls one co-occurrence run.
type Config struct {
	Window   int      // forward half-window width in token positions
	MinCount int      // tokens seen fewer times are dropped from the ID space (<1 means 1)
	Drop     []string // tokens excluded outright (e.g. boundary markers)
}

// Builder computes co-occurrence tables. Safe to reuse across Build calls;
// each call produces an independent Table.
type Builder struct {
	cfg  Config
	drop map[string]struct{}
}

// New validates cfg and returns a Builder. Structural misconfiguration fails
// here, before any data is read.
func New(cfg Config) (*Builder, error) {
	if cfg.Window <= 0 {
		return nil, ErrInvalidWindowSize
	}
	if cfg.MinCount < 1 {
		cfg.MinCount = 1
	}
	b := &Builder{cfg: cfg, drop: make(map[string]struct{}, len(cfg.Drop))}
	for _, t := range cfg.Drop {
		b.drop[t] = struct{}{}
	}
	return b, nil
}

// pairKey is an unordered ID pair stored with A <= B.
type pairKey struct{ A, B int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{A: a, B: b}
}

// Build scans every token sequence independently: for each position i and
// each j with i < j <= i+Window inside the same sequence, the unordered pair
// {t[i], t[j]} is incremented by 1. Counts are exact integers.
//
// Dropped and below-MinCount tokens are removed from a sequence before
// windowing, so surviving tokens become adjacent across the gap.
func (b *Builder) Build(seqs [][]string) *Table {
	t := &Table{
		ids:   make(map[string]int),
		pairs: make(map[pairKey]int),
	}

	// Vocabulary pass: count surviving tokens, then assign IDs in sorted
	// token order so two runs over the same data agree.
	counts := make(map[string]int)
	for _, seq := range seqs {
		for _, tok := range seq {
			if _, skip := b.drop[tok]; skip {
				continue
			}
			counts[tok]++
		}
	}
	kept := make([]string, 0, len(counts))
	for tok, c := range counts {
		if c >= b.cfg.MinCount {
			kept = append(kept, tok)
		}
	}
	sort.Strings(kept)
	t.tokens = kept
	t.counts = make([]int, len(kept))
	for id, tok := range kept {
		t.ids[tok] = id
		t.counts[id] = counts[tok]
	}

	// Windowing pass.
	idbuf := make([]int, 0, 256)
	for _, seq := range seqs {
		idbuf = idbuf[:0]
		for _, tok := range seq {
			if id, ok := t.ids[tok]; ok {
				idbuf = append(idbuf, id)
			}
		}
		for i := 0; i < len(idbuf); i++ {
			hi := i + b.cfg.Window
			if hi >= len(idbuf) {
				hi = len(idbuf) - 1
			}
			for j := i + 1; j <= hi; j++ {
				t.pairs[keyOf(idbuf[i], idbuf[j])]++
			}
		}
	}

	// Marginals: for every stored pair, each distinct member accumulates the
	// pair's count (sum-of-pair-counts interpretation).
	t.marginals = make([]int, len(t.tokens))
	for k, c := range t.pairs {
		t.marginals[k.A] += c
		if k.B != k.A {
			t.marginals[k.B] += c
		}
	}
	return t
}

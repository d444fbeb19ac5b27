// core/cooc/table.go
package cooc

import "sort"

// Table is the read-only result of one Build call: an unordered pair-count
// map over a token ID space established by that same call.
type Table struct {
	tokens    []string // id → token, sorted token order
	ids       map[string]int
	counts    []int // raw occurrence counts per id
	pairs     map[pairKey]int
	marginals []int
}

// Pair is one sparse co-occurrence entry. Token1's ID is never greater than
// Token2's; each unordered pair is reported once.
type Pair struct {
	Token1, Token2 string
	ID1, ID2       int
	Count          int
}

// Marginal is one row of the per-token marginal table.
type Marginal struct {
	Token string
	ID    int
	Count int
}

// Size returns the number of distinct tokens in the table's ID space.
func (t *Table) Size() int { return len(t.tokens) }

// TokenID returns the table-local ID for a token.
func (t *Table) TokenID(tok string) (int, bool) {
	id, ok := t.ids[tok]
	return id, ok
}

// TokenOf returns the token for an ID; empty string for out-of-range IDs.
func (t *Table) TokenOf(id int) string {
	if id < 0 || id >= len(t.tokens) {
		return ""
	}
	return t.tokens[id]
}

// TokenCount returns a token's raw occurrence count across the input.
func (t *Table) TokenCount(tok string) int {
	if id, ok := t.ids[tok]; ok {
		return t.counts[id]
	}
	return 0
}

// Count returns the co-occurrence count for an unordered token pair.
func (t *Table) Count(a, b string) int {
	ia, ok := t.ids[a]
	if !ok {
		return 0
	}
	ib, ok := t.ids[b]
	if !ok {
		return 0
	}
	return t.pairs[keyOf(ia, ib)]
}

// NonZero returns the number of stored (unordered) pair entries.
func (t *Table) NonZero() int { return len(t.pairs) }

// TotalPairs returns the sum of all pair counts (every windowed (i,j) hit).
func (t *Table) TotalPairs() int {
	n := 0
	for _, c := range t.pairs {
		n += c
	}
	return n
}

// Sparse returns all nonzero entries sorted by count descending, then by IDs.
func (t *Table) Sparse() []Pair {
	out := make([]Pair, 0, len(t.pairs))
	for k, c := range t.pairs {
		out = append(out, Pair{
			Token1: t.tokens[k.A], Token2: t.tokens[k.B],
			ID1: k.A, ID2: k.B, Count: c,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].ID1 != out[j].ID1 {
			return out[i].ID1 < out[j].ID1
		}
		return out[i].ID2 < out[j].ID2
	})
	return out
}

// Dense materializes the symmetric matrix indexed by table IDs.
func (t *Table) Dense() [][]int {
	m := make([][]int, len(t.tokens))
	for i := range m {
		m[i] = make([]int, len(t.tokens))
	}
	for k, c := range t.pairs {
		m[k.A][k.B] = c
		m[k.B][k.A] = c
	}
	return m
}

// Marginals returns the per-token marginal frequencies in ID order.
func (t *Table) Marginals() []Marginal {
	out := make([]Marginal, len(t.tokens))
	for id, tok := range t.tokens {
		out[id] = Marginal{Token: tok, ID: id, Count: t.marginals[id]}
	}
	return out
}

// Mapping exports the bidirectional token↔ID table so downstream consumers
// can interpret the matrix. Keys of TokenToID mirror IDToToken exactly.
type Mapping struct {
	TokenToID   map[string]int `json:"token_to_id"`
	IDToToken   []string       `json:"id_to_token"`
	TokenCounts map[string]int `json:"token_counts"`
	VocabSize   int            `json:"vocab_size"`
}

// Mapping returns the table's vocabulary mapping artifact.
func (t *Table) Mapping() Mapping {
	m := Mapping{
		TokenToID:   make(map[string]int, len(t.tokens)),
		IDToToken:   append([]string(nil), t.tokens...),
		TokenCounts: make(map[string]int, len(t.tokens)),
		VocabSize:   len(t.tokens),
	}
	for id, tok := range t.tokens {
		m.TokenToID[tok] = id
		m.TokenCounts[tok] = t.counts[id]
	}
	return m
}

// core/bpe/encoder.go
package bpe

import "sort"

// Encode tokenizes one raw sequence with a learned rule table. The sequence
// is initialized exactly as in learning, then every rule is applied in rank
// order: rule i is exhausted everywhere before rule i+1 is considered. This
// is a deterministic replay of the learning merge sequence, not a greedy
// longest-match tokenizer. Empty input yields nil.
func Encode(seq string, rules []Rule) []string {
	toks := initSymbols(seq)
	if toks == nil {
		return nil
	}
	for _, r := range rules {
		toks = mergePair(toks, r)
	}
	return toks
}

// TokenFreq is one row of a batch frequency report.
type TokenFreq struct {
	Token   string
	Count   int
	Percent float64 // share of all tokens in the batch, 0-100
}

// Stats accumulates per-batch encoding diagnostics: total input characters,
// total output tokens, and per-token frequencies. One Stats instance covers
// one encoded batch; it is not safe for concurrent use.
type Stats struct {
	chars  int
	tokens int
	freq   map[string]int
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{freq: make(map[string]int)}
}

// Observe adds one encoded sequence: rawLen input characters producing tokens.
func (s *Stats) Observe(rawLen int, tokens []string) {
	s.chars += rawLen
	s.tokens += len(tokens)
	for _, t := range tokens {
		s.freq[t]++
	}
}

// Chars returns the total input characters observed.
func (s *Stats) Chars() int { return s.chars }

// Tokens returns the total output tokens observed.
func (s *Stats) Tokens() int { return s.tokens }

// CompressionRatio is total input characters over total output tokens;
// 0 when nothing has been observed.
func (s *Stats) CompressionRatio() float64 {
	if s.tokens == 0 {
		return 0
	}
	return float64(s.chars) / float64(s.tokens)
}

// Frequencies returns per-token counts and corpus percentages, sorted by
// count descending then token ascending.
func (s *Stats) Frequencies() []TokenFreq {
	out := make([]TokenFreq, 0, len(s.freq))
	for t, c := range s.freq {
		f := TokenFreq{Token: t, Count: c}
		if s.tokens > 0 {
			f.Percent = 100 * float64(c) / float64(s.tokens)
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}

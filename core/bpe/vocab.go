// core/bpe/vocab.go
package bpe

// Vocab is a snapshot of every distinct symbol in a final corpus state, with
// occurrence counts and integer IDs assigned in first-seen order. IDs are
// stable for the lifetime of one snapshot only.
type Vocab struct {
	ids    map[string]int
	tokens []string
	counts []int
}

func buildVocab(corpus [][]string) *Vocab {
	v := &Vocab{ids: make(map[string]int)}
	for _, toks := range corpus {
		for _, t := range toks {
			id, ok := v.ids[t]
			if !ok {
				id = len(v.tokens)
				v.ids[t] = id
				v.tokens = append(v.tokens, t)
				v.counts = append(v.counts, 0)
			}
			v.counts[id]++
		}
	}
	return v
}

// Size returns the number of distinct symbols.
func (v *Vocab) Size() int { return len(v.tokens) }

// ID returns the symbol's ID.
func (v *Vocab) ID(tok string) (int, bool) {
	id, ok := v.ids[tok]
	return id, ok
}

// Token returns the symbol for an ID; empty string for out-of-range IDs.
func (v *Vocab) Token(id int) string {
	if id < 0 || id >= len(v.tokens) {
		return ""
	}
	return v.tokens[id]
}

// Count returns the symbol's occurrence count in the final corpus state.
func (v *Vocab) Count(tok string) int {
	if id, ok := v.ids[tok]; ok {
		return v.counts[id]
	}
	return 0
}

// Tokens returns all symbols in ID order. The slice is a copy.
func (v *Vocab) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// core/bpe/bpe.go
// Package bpe learns and applies byte-pair-encoding merge tables over DNA
// sequences. Each raw sequence is treated as one word: it is split into
// single-character symbols, wrapped in boundary markers, and merges never
// cross sequence boundaries.
package bpe

import (
	"errors"
	"strings"
)

// Boundary markers wrapping every sequence. They keep merges from fusing
// across record boundaries and make word-final patterns distinguishable from
// interior ones (the symbol before SeqEnd is always the last base).
const (
	SeqStart = "<s>"
	SeqEnd   = "</s>"
)

// ErrInvalidMergeBudget rejects a negative merge count before any processing.
var ErrInvalidMergeBudget = errors.New("bpe: merge budget must be non-negative")

// Rule is one learned merge: adjacent (Left, Right) become Left+Right.
// Rules are identified by rank (position in the learned list); rank order is
// the only valid application order.
type Rule struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Composite is the symbol produced by applying the rule.
func (r Rule) Composite() string { return r.Left + r.Right }

// initSymbols splits a raw sequence into its initial symbol list:
// [<s>, c1, ..., cn, </s>]. Empty sequences yield nil.
func initSymbols(seq string) []string {
	if seq == "" {
		return nil
	}
	out := make([]string, 0, len(seq)+2)
	out = append(out, SeqStart)
	for i := 0; i < len(seq); i++ {
		out = append(out, string(seq[i]))
	}
	out = append(out, SeqEnd)
	return out
}

// mergePair replaces every adjacent (Left, Right) occurrence in tokens with
// the composite symbol, scanning left to right. Returns the input slice
// untouched when the pair is absent.
func mergePair(tokens []string, r Rule) []string {
	found := false
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == r.Left && tokens[i+1] == r.Right {
			found = true
			break
		}
	}
	if !found {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+1 < len(tokens) && tokens[i] == r.Left && tokens[i+1] == r.Right {
			out = append(out, r.Left+r.Right)
			i += 2
		} else {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}

var markerStripper = strings.NewReplacer(SeqStart, "", SeqEnd, "")

// Decode reconstructs the raw sequence from an encoded token list by
// concatenating tokens and stripping boundary markers. Markers may be fused
// into composite tokens by merges, so stripping happens on the joined string.
func Decode(tokens []string) string {
	return markerStripper.Replace(strings.Join(tokens, ""))
}

// core/bpe/encoder_test.go
package bpe

import (
	"math"
	"reflect"
	"testing"
)

func TestEncodeAppliesRulesInRankOrder(t *testing.T) {
	// Rule 2 depends on rule 1's composite existing; out-of-order application
	// could never produce "AAC".
	rules := []Rule{
		{Left: "A", Right: "A"},
		{Left: "AA", Right: "C"},
	}
	got := Encode("AACAAC", rules)
	want := []string{SeqStart, "AAC", "AAC", SeqEnd}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encode = %v, want %v", got, want)
	}
}

func TestEncodeWithoutRulesIsCharacterLevel(t *testing.T) {
	got := Encode("ACG", nil)
	want := []string{SeqStart, "A", "C", "G", SeqEnd}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encode = %v, want %v", got, want)
	}
}

func TestEncodeEmptySequence(t *testing.T) {
	if got := Encode("", []Rule{{Left: "A", Right: "A"}}); got != nil {
		t.Fatalf("empty sequence must encode to nil, got %v", got)
	}
}

// BPE is lossless: decoding any encoding reconstructs the input exactly.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	corpus := []string{"ACGTACGTACGT", "AAAA", "GTCAGTCA", "N", "ACGTNNNNACGT"}
	res := mustLearner(t, 40).Learn(corpus)
	for _, seq := range corpus {
		if got := Decode(Encode(seq, res.Rules)); got != seq {
			t.Fatalf("round trip %q -> %q", seq, got)
		}
	}
}

func TestDecodeStripsFusedMarkers(t *testing.T) {
	// Merges may fuse boundary markers into composites.
	rules := []Rule{
		{Left: "A", Right: "A"},
		{Left: SeqStart, Right: "AA"},
	}
	toks := Encode("AAAA", rules)
	if got := Decode(toks); got != "AAAA" {
		t.Fatalf("decode = %q, want AAAA (tokens %v)", got, toks)
	}
}

func TestStatsCompressionAndFrequencies(t *testing.T) {
	s := NewStats()
	s.Observe(4, []string{SeqStart, "AA", "AA", SeqEnd})
	s.Observe(4, []string{SeqStart, "AA", "AA", SeqEnd})

	if s.Chars() != 8 || s.Tokens() != 8 {
		t.Fatalf("chars=%d tokens=%d, want 8/8", s.Chars(), s.Tokens())
	}
	if r := s.CompressionRatio(); math.Abs(r-1.0) > 1e-12 {
		t.Fatalf("compression ratio = %v, want 1.0", r)
	}

	freqs := s.Frequencies()
	if len(freqs) != 3 {
		t.Fatalf("want 3 distinct tokens, got %v", freqs)
	}
	if freqs[0].Token != "AA" || freqs[0].Count != 4 {
		t.Fatalf("top token = %+v, want AA x4", freqs[0])
	}
	if math.Abs(freqs[0].Percent-50.0) > 1e-12 {
		t.Fatalf("AA percent = %v, want 50", freqs[0].Percent)
	}
	// Ties sort by token text.
	if freqs[1].Token != SeqEnd || freqs[2].Token != SeqStart {
		t.Fatalf("tie order wrong: %+v", freqs[1:])
	}
}

func TestStatsEmpty(t *testing.T) {
	s := NewStats()
	if s.CompressionRatio() != 0 {
		t.Fatalf("empty stats ratio must be 0")
	}
	if len(s.Frequencies()) != 0 {
		t.Fatalf("empty stats must report no tokens")
	}
}

// pkg/api/bpe_v1.go
package api

// EncodedRecordV1 is the stable JSON schema for one encoded sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EncodedRecordV1 struct {
	SequenceID       string  `json:"sequence_id"`
	OriginalLength   int     `json:"original_length"`
	TokenCount       int     `json:"token_count"`
	CompressionRatio float64 `json:"compression_ratio"`
	Encoded          string  `json:"encoded"` // space-separated tokens
	SourceFile       string  `json:"source_file,omitempty"`
}

// TokenFreqV1 is one row of the token frequency table.
type TokenFreqV1 struct {
	Token     string  `json:"token"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"` // count / total tokens
	Percent   float64 `json:"percentage"`
}

// RuleV1 is one learned merge rule.
type RuleV1 struct {
	Rank      int    `json:"rank"` // 1-based application order
	Left      string `json:"left"`
	Right     string `json:"right"`
	Composite string `json:"composite"`
}

// OptimizeCandidateV1 is one auto-optimizer sweep entry.
type OptimizeCandidateV1 struct {
	Merges           int     `json:"merges"`
	RulesLearned     int     `json:"rules_learned"`
	VocabSize        int     `json:"vocab_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	Efficiency       float64 `json:"efficiency"`
	Degenerate       bool    `json:"degenerate,omitempty"`
}

// OptimizeReportV1 is the full sweep result.
type OptimizeReportV1 struct {
	Best       int                   `json:"best_merges"`
	Candidates []OptimizeCandidateV1 `json:"candidates"`
}

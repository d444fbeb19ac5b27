// pkg/api/cooc_v1.go
package api

// CoocPairV1 is one sparse co-occurrence entry.
type CoocPairV1 struct {
	Token1  string `json:"token1"`
	Token2  string `json:"token2"`
	Token1D int    `json:"token1_id"`
	Token2D int    `json:"token2_id"`
	Count   int    `json:"cooccurrence_count"`
}

// MarginalV1 is one row of the per-token marginal frequency table.
type MarginalV1 struct {
	Token string `json:"token"`
	ID    int    `json:"token_id"`
	Count int    `json:"marginal_count"`
}

// VocabMappingV1 is the exported bidirectional token↔ID artifact. Downstream
// consumers need it to interpret matrix indices.
type VocabMappingV1 struct {
	TokenToID   map[string]int `json:"token_to_id"`
	IDToToken   []string       `json:"id_to_token"`
	TokenCounts map[string]int `json:"token_counts"`
	VocabSize   int            `json:"vocab_size"`
	WindowSize  int            `json:"window_size"`
	MinCount    int            `json:"min_count"`
}

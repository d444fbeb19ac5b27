// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnabpe/pkg/api"
)

func TestHeadersStable(t *testing.T) {
	assert.Equal(t, "sequence_id\toriginal_length\ttoken_count\tcompression_ratio\tencoded", EncodedTSVHeader)
	assert.Equal(t, "token1\ttoken2\ttoken1_id\ttoken2_id\tcooccurrence_count", SparseTSVHeader)
}

func TestWriteEncodedText(t *testing.T) {
	var buf bytes.Buffer
	list := []api.EncodedRecordV1{{
		SequenceID: "s1", OriginalLength: 4, TokenCount: 4,
		CompressionRatio: 1.0, Encoded: "<s> AA AA </s>",
	}}
	require.NoError(t, WriteEncodedText(&buf, list, true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, EncodedTSVHeader, lines[0])
	assert.Equal(t, "s1\t4\t4\t1.00\t<s> AA AA </s>", lines[1])
}

func TestWriteEncodedCSVQuotesTokens(t *testing.T) {
	var buf bytes.Buffer
	list := []api.EncodedRecordV1{{SequenceID: "a,b", OriginalLength: 1, TokenCount: 3, Encoded: "<s> A </s>"}}
	require.NoError(t, WriteEncodedCSV(&buf, list, false))
	assert.Equal(t, "\"a,b\",1,3,0.00,<s> A </s>\n", buf.String())
}

func TestWriteEncodedJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	list := []api.EncodedRecordV1{{SequenceID: "s", OriginalLength: 2, TokenCount: 4, CompressionRatio: 0.5, Encoded: "<s> A C </s>"}}
	require.NoError(t, WriteEncodedJSON(&buf, list))
	var got []api.EncodedRecordV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, list, got)
}

func TestWriteTokenLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokenLines(&buf, [][]string{
		{"<s>", "AA", "</s>"},
		nil,
		{"<s>", "G", "</s>"},
	}))
	assert.Equal(t, "<s> AA </s>\n\n<s> G </s>\n", buf.String())
}

func TestWriteTokenFreqCSV(t *testing.T) {
	var buf bytes.Buffer
	list := []api.TokenFreqV1{{Token: "AA", Count: 4, Frequency: 0.5, Percent: 50}}
	require.NoError(t, WriteTokenFreqCSV(&buf, list, true))
	assert.Equal(t, "token,count,frequency,percentage\nAA,4,0.500000,50.00\n", buf.String())
}

func TestWriteRulesCSV(t *testing.T) {
	var buf bytes.Buffer
	list := []api.RuleV1{{Rank: 1, Left: "A", Right: "A", Composite: "AA"}}
	require.NoError(t, WriteRulesCSV(&buf, list, true))
	assert.Equal(t, "rank,left,right,composite\n1,A,A,AA\n", buf.String())
}

func TestWriteSparseFormats(t *testing.T) {
	list := []api.CoocPairV1{{Token1: "AA", Token2: "AA", Token1D: 0, Token2D: 0, Count: 1}}

	var text bytes.Buffer
	require.NoError(t, WriteSparseText(&text, list, true))
	assert.Equal(t, SparseTSVHeader+"\nAA\tAA\t0\t0\t1\n", text.String())

	var csvBuf bytes.Buffer
	require.NoError(t, WriteSparseCSV(&csvBuf, list, false))
	assert.Equal(t, "AA,AA,0,0,1\n", csvBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteSparseJSON(&jsonBuf, list))
	var got []api.CoocPairV1
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &got))
	assert.Equal(t, list, got)
}

func TestWriteDenseCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDenseCSV(&buf, []string{"A", "G"}, [][]int{{0, 2}, {2, 1}}))
	assert.Equal(t, "token,A,G\nA,0,2\nG,2,1\n", buf.String())
}

func TestWriteMarginalsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarginalsCSV(&buf, []api.MarginalV1{{Token: "A", ID: 0, Count: 3}}, true))
	assert.Equal(t, "token,token_id,marginal_count\nA,0,3\n", buf.String())
}

func TestWriteVocabJSON(t *testing.T) {
	var buf bytes.Buffer
	v := api.VocabMappingV1{
		TokenToID:   map[string]int{"A": 0},
		IDToToken:   []string{"A"},
		TokenCounts: map[string]int{"A": 2},
		VocabSize:   1,
		WindowSize:  5,
		MinCount:    1,
	}
	require.NoError(t, WriteVocabJSON(&buf, v))
	var got api.VocabMappingV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, v, got)
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatCSV, FormatJSON} {
		assert.True(t, ValidFormat(f))
	}
	assert.False(t, ValidFormat("fasta"))
}

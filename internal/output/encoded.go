// internal/output/encoded.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dnabpe/pkg/api"
)

// WriteEncodedText writes the per-sequence table as TSV.
func WriteEncodedText(w io.Writer, list []api.EncodedRecordV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, EncodedTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			r.SequenceID, r.OriginalLength, r.TokenCount,
			formatRatio(r.CompressionRatio), r.Encoded,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteEncodedCSV writes the per-sequence table as CSV.
func WriteEncodedCSV(w io.Writer, list []api.EncodedRecordV1, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"sequence_id", "original_length", "token_count", "compression_ratio", "encoded"}); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := cw.Write([]string{
			r.SequenceID,
			strconv.Itoa(r.OriginalLength),
			strconv.Itoa(r.TokenCount),
			formatRatio(r.CompressionRatio),
			r.Encoded,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEncodedJSON writes the per-sequence table as a pretty JSON array.
func WriteEncodedJSON(w io.Writer, list []api.EncodedRecordV1) error {
	if list == nil {
		list = []api.EncodedRecordV1{}
	}
	return encodePretty(w, list)
}

// WriteTokenLines writes the raw encoded-sequence export: one line per input
// sequence, space-separated tokens. Empty sequences keep their line so line
// numbers stay aligned with the input order.
func WriteTokenLines(w io.Writer, tokens [][]string) error {
	for _, toks := range tokens {
		if _, err := fmt.Fprintln(w, strings.Join(toks, " ")); err != nil {
			return err
		}
	}
	return nil
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// internal/output/cooc.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"dnabpe/pkg/api"
)

// WriteSparseText writes sparse co-occurrence entries as TSV.
func WriteSparseText(w io.Writer, list []api.CoocPairV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SparseTSVHeader); err != nil {
			return err
		}
	}
	for _, p := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			p.Token1, p.Token2, p.Token1D, p.Token2D, p.Count,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteSparseCSV writes sparse co-occurrence entries as CSV.
func WriteSparseCSV(w io.Writer, list []api.CoocPairV1, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"token1", "token2", "token1_id", "token2_id", "cooccurrence_count"}); err != nil {
			return err
		}
	}
	for _, p := range list {
		if err := cw.Write([]string{
			p.Token1, p.Token2,
			strconv.Itoa(p.Token1D), strconv.Itoa(p.Token2D),
			strconv.Itoa(p.Count),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSparseJSON writes sparse co-occurrence entries as a pretty JSON array.
func WriteSparseJSON(w io.Writer, list []api.CoocPairV1) error {
	if list == nil {
		list = []api.CoocPairV1{}
	}
	return encodePretty(w, list)
}

// WriteDenseCSV writes the token-indexed square matrix: a header row of
// token names, then one row per token with its counts.
func WriteDenseCSV(w io.Writer, tokens []string, m [][]int) error {
	cw := csv.NewWriter(w)
	head := append([]string{"token"}, tokens...)
	if err := cw.Write(head); err != nil {
		return err
	}
	for i, tok := range tokens {
		row := make([]string, 0, len(tokens)+1)
		row = append(row, tok)
		for _, c := range m[i] {
			row = append(row, strconv.Itoa(c))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMarginalsCSV writes the per-token marginal frequency table.
func WriteMarginalsCSV(w io.Writer, list []api.MarginalV1, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"token", "token_id", "marginal_count"}); err != nil {
			return err
		}
	}
	for _, m := range list {
		if err := cw.Write([]string{m.Token, strconv.Itoa(m.ID), strconv.Itoa(m.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteVocabJSON writes the vocabulary mapping artifact.
func WriteVocabJSON(w io.Writer, v api.VocabMappingV1) error {
	return encodePretty(w, v)
}

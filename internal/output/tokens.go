// internal/output/tokens.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"dnabpe/pkg/api"
)

// WriteTokenFreqCSV writes the token frequency table:
// token, count, frequency, percentage (frequency = count / total tokens).
func WriteTokenFreqCSV(w io.Writer, list []api.TokenFreqV1, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"token", "count", "frequency", "percentage"}); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := cw.Write([]string{
			r.Token,
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Frequency, 'f', 6, 64),
			strconv.FormatFloat(r.Percent, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRulesCSV writes the learned merge table in rank order:
// rank, left, right, composite.
func WriteRulesCSV(w io.Writer, list []api.RuleV1, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"rank", "left", "right", "composite"}); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := cw.Write([]string{strconv.Itoa(r.Rank), r.Left, r.Right, r.Composite}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

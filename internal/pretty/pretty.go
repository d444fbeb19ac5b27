// internal/pretty/pretty.go
// Package pretty renders human-readable report tables for --pretty mode.
package pretty

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"dnabpe/internal/optimizer"
	"dnabpe/pkg/api"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetNoWhiteSpace(true)
	t.SetTablePadding("    ")
	return t
}

// RenderTokenTable prints the top-N token frequency rows.
func RenderTokenTable(w io.Writer, list []api.TokenFreqV1, topN int) {
	if topN > 0 && len(list) > topN {
		list = list[:topN]
	}
	t := newTable(w, []string{"TOKEN", "COUNT", "PERCENT"})
	for _, r := range list {
		t.Append([]string{
			r.Token,
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Percent, 'f', 2, 64) + "%",
		})
	}
	t.Render()
}

// RenderOptimizerTable prints one row per sweep candidate; the selected
// budget is marked with an asterisk.
func RenderOptimizerTable(w io.Writer, rep optimizer.Report) {
	t := newTable(w, []string{"MERGES", "RULES", "VOCAB", "RATIO", "EFFICIENCY", ""})
	for _, c := range rep.Candidates {
		mark := ""
		switch {
		case c.Degenerate:
			mark = "skipped"
		case c.Merges == rep.Best.Merges:
			mark = "*"
		}
		t.Append([]string{
			strconv.Itoa(c.Merges),
			strconv.Itoa(c.RulesLearned),
			strconv.Itoa(c.VocabSize),
			strconv.FormatFloat(c.CompressionRatio, 'f', 3, 64),
			strconv.FormatFloat(c.Efficiency, 'f', 6, 64),
			mark,
		})
	}
	t.Render()
}

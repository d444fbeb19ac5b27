// internal/output/formats.go
// Package output turns domain results into serialized exports. Writers own
// all presentation knowledge; the apps stay orchestration-only.
package output

// Output format names accepted by --output.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	return f == FormatText || f == FormatCSV || f == FormatJSON
}

// EncodedTSVHeader is the canonical header row for encoded text/TSV output.
// Keep this as the single source of truth.
const EncodedTSVHeader = "sequence_id\toriginal_length\ttoken_count\tcompression_ratio\tencoded"

// SparseTSVHeader is the canonical header row for sparse co-occurrence output.
const SparseTSVHeader = "token1\ttoken2\ttoken1_id\ttoken2_id\tcooccurrence_count"

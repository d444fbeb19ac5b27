// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// encodePretty writes v as indented JSON to w.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// internal/cmdutil/log.go
// Package cmdutil holds small shared command helpers.
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a diagnostic line unless quiet is set. Warnings go to
// stderr so stdout stays machine-parseable.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

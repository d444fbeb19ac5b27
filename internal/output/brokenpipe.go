// internal/output/brokenpipe.go
package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from writing into a closed pipe,
// e.g. when stdout is piped into `head`. Callers treat it as a clean exit.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

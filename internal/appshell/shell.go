// internal/appshell/shell.go
// Package appshell is the shared process entry point: signal wiring,
// stdio plumbing, and exit-code normalization for every binary.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs an app's RunContext with SIGINT/SIGTERM cancellation.
// Apps render usage themselves when argv is empty.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

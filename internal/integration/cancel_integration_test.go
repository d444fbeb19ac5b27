// internal/integration/cancel_integration_test.go
package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dnabpe/internal/app"
)

func TestCancelledContextExit130(t *testing.T) {
	// Biggish corpus so encoding is actually underway when we cancel.
	fn := filepath.Join(t.TempDir(), "cancel_big.fa")
	const Mb = 1 << 20
	seq := strings.Repeat("ACGT", (4*Mb)/4)
	require.NoError(t, os.WriteFile(fn, []byte(">chr1\n"+seq+"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"--sequences", fn, "--merges", "10"}, io.Discard, io.Discard)
	require.Equal(t, 130, code)
}

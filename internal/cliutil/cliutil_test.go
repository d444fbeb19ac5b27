// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var n int
	fs.BoolVar(&b, "quiet", false, "")
	fs.IntVar(&n, "window-size", 5, "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"in1.txt", "--window-size", "3", "--quiet", "in2.txt", "--", "in3.txt"})

	assert.Equal(t, []string{"--window-size", "3", "--quiet"}, flagArgs)
	assert.Equal(t, []string{"in1.txt", "in2.txt", "in3.txt"}, posArgs)
}

func TestSplitKeepsStdinMarker(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"-"})
	assert.Empty(t, flagArgs)
	assert.Equal(t, []string{"-"}, posArgs)
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644))
	}

	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "-", got[2])
}

func TestExpandPositionalsEmptyGlob(t *testing.T) {
	_, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.nope")})
	assert.Error(t, err)
}

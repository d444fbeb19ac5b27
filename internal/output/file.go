// internal/output/file.go
package output

import (
	"bufio"
	"io"
	"os"
)

// ToFile creates path and runs fn over a buffered writer, flushing and
// closing on the way out. The first error wins.
func ToFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

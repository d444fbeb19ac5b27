// core/cooc/reader.go
package cooc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dnabpe-core/fasta"
)

// maxLineSize bounds a single encoded line (64 MiB).
const maxLineSize = 64 * 1024 * 1024

// ReadTokenLines parses encoded-corpus input: one sequence per line,
// tokens separated by whitespace. Blank lines (empty sequences) are
// skipped; they carry no pairs.
func ReadTokenLines(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), maxLineSize)

	var seqs [][]string
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		seqs = append(seqs, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cooc: read token lines: %w", err)
	}
	return seqs, nil
}

// ReadTokenFiles loads every path ("-" for stdin, .gz transparent) and
// concatenates the sequences in argument order.
func ReadTokenFiles(paths []string) ([][]string, error) {
	var seqs [][]string
	for _, p := range paths {
		rc, err := fasta.Open(p)
		if err != nil {
			return nil, err
		}
		got, err := ReadTokenLines(rc)
		cerr := rc.Close()
		if err != nil {
			return nil, err
		}
		if cerr != nil {
			return nil, cerr
		}
		seqs = append(seqs, got...)
	}
	return seqs, nil
}

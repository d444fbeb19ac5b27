// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// IsValidBase reports whether b is part of the expected DNA alphabet.
// The alphabet is A/C/G/T plus N for ambiguous calls; sequences are
// uppercased before validation.
func IsValidBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'N':
		return true
	}
	return false
}

// Read parses FASTA from r. Lines starting with '>' open a new record
// (ID = first whitespace-delimited field of the header); sequence lines are
// concatenated and uppercased until the next header or EOF.
//
// Records containing bytes outside the expected alphabet are skipped with a
// warning rather than aborting the whole parse (partial-success policy);
// empty records are dropped silently. Only scanner failures are returned as
// errors.
func Read(r io.Reader) ([]Record, []string, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs  []Record
		warns []string
		id    string
		seq   = make([]byte, 0, 1<<12)
		open  bool
	)

	flush := func() {
		if !open || len(seq) == 0 {
			return
		}
		if pos, bad, ok := firstInvalidBase(seq); !ok {
			warns = append(warns, fmt.Sprintf("fasta: skipping record %q: invalid base %q at position %d", id, string(bad), pos))
			return
		}
		recs = append(recs, Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = parseHeaderID(line[1:])
			seq = seq[:0]
			open = true
			continue
		}
		if !open {
			// Sequence data before any header; treat as an anonymous record.
			open = true
			id = ""
		}
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, warns, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, warns, nil
}

// ReadAll opens path (stdin via "-", gzip transparently) and parses it.
func ReadAll(path string) ([]Record, []string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, warns, err := Read(rc)
	if err != nil {
		return nil, warns, fmt.Errorf("%s: %w", path, err)
	}
	return recs, warns, nil
}

// ReadAllFiles parses every path in order and concatenates the records.
func ReadAllFiles(paths []string) ([]Record, []string, error) {
	var (
		recs  []Record
		warns []string
	)
	for _, p := range paths {
		rs, ws, err := ReadAll(p)
		if err != nil {
			return nil, warns, err
		}
		recs = append(recs, rs...)
		warns = append(warns, ws...)
	}
	return recs, warns, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

func firstInvalidBase(seq []byte) (int, byte, bool) {
	for i, b := range seq {
		if !IsValidBase(b) {
			return i, b, false
		}
	}
	return 0, 0, true
}

// core/cooc/reader_test.go
package cooc

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadTokenLines(t *testing.T) {
	in := "<s> AA AA </s>\n\n  A\tB  \n"
	got, err := ReadTokenLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTokenLines: %v", err)
	}
	want := [][]string{
		{"<s>", "AA", "AA", "</s>"},
		{"A", "B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestReadTokenLinesEmpty(t *testing.T) {
	got, err := ReadTokenLines(strings.NewReader("\n\n"))
	if err != nil {
		t.Fatalf("ReadTokenLines: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no sequences, got %v", got)
	}
}

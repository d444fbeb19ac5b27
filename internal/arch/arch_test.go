// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Layering: output/pretty/pipeline are leaves below the app layer, and the
// options packages never reach into processing code.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"dnabpe/internal/pipeline": {
			"dnabpe/internal/app", "dnabpe/internal/coocapp",
			"dnabpe/internal/cli", "dnabpe/internal/cooccli",
			"dnabpe/internal/output", "dnabpe/internal/pretty",
			"dnabpe/cmd/",
		},
		"dnabpe/internal/output": {
			"dnabpe/internal/app", "dnabpe/internal/coocapp",
			"dnabpe/internal/cli", "dnabpe/internal/cooccli",
			"dnabpe/internal/pipeline", "dnabpe/cmd/",
		},
		"dnabpe/internal/pretty": {
			"dnabpe/internal/app", "dnabpe/internal/coocapp",
			"dnabpe/internal/cli", "dnabpe/internal/cooccli",
			"dnabpe/internal/pipeline", "dnabpe/cmd/",
		},
		"dnabpe/internal/optimizer": {
			"dnabpe/internal/app", "dnabpe/internal/coocapp",
			"dnabpe/internal/cli", "dnabpe/internal/cooccli",
			"dnabpe/internal/output", "dnabpe/cmd/",
		},
		"dnabpe/internal/cli": {
			"dnabpe/internal/app", "dnabpe/internal/pipeline", "dnabpe/cmd/",
		},
		"dnabpe/internal/cooccli": {
			"dnabpe/internal/coocapp", "dnabpe/internal/pipeline", "dnabpe/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "dnabpe/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "dnabpe/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

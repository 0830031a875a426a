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

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"photom/internal/pipeline": {
			"photom/internal/appcore", "photom/internal/app",
			"photom/internal/cli", "photom/internal/lookupcli",
			"photom/internal/writers", "photom/internal/output", "photom/cmd/",
		},
		"photom/internal/writers": {
			"photom/internal/appcore", "photom/internal/app",
			"photom/internal/cli", "photom/internal/lookupcli",
			"photom/internal/pipeline", "photom/cmd/",
		},
		"photom/internal/output": {
			"photom/internal/appcore", "photom/internal/app",
			"photom/internal/cli", "photom/internal/lookupcli",
			"photom/internal/pipeline", "photom/internal/writers", "photom/cmd/",
		},
		"photom/internal/lookupoutput": {
			"photom/internal/appcore", "photom/internal/app",
			"photom/internal/cli", "photom/internal/lookupcli",
			"photom/internal/pipeline", "photom/cmd/",
		},
		"photom/internal/cli": {
			"photom/internal/appcore", "photom/internal/app", "photom/cmd/",
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
		if !strings.HasPrefix(p.ImportPath, "photom/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "photom/") {
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

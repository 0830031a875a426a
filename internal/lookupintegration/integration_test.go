// internal/lookupintegration/integration_test.go
package lookupintegration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"photom/internal/lookupapp"
	"photom/pkg/api"
)

const refTable = `
rows:
  - filter: F200W
    pupil: CLEAR
    photmjsr: 2.0e-15
    uncertainty: 1.0e-17
  - filter: GR150R
    pupil: F200W
    order: 1
    photmjsr: 1.0
    uncertainty: 0.0
    nelem: 3
    wavelength: [1.0, 3.0, 2.0]
    relresponse: [1.0, 1.0, 1.0]
    reluncertainty: [0.0, 0.0, 0.0]
`

func writeRef(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photom.yaml")
	if err := os.WriteFile(path, []byte(refTable), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateAllFlagsBadRow(t *testing.T) {
	ref := writeRef(t)
	var out, errBuf bytes.Buffer
	code := lookupapp.Run([]string{"--photom", ref, "--output", "json"}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected exit 1 for invalid row, got %d (err=%s)", code, errBuf.String())
	}
	var rows []api.LookupRowV1
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Valid || rows[0].Kind != "scalar" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Valid || rows[1].Error == "" {
		t.Errorf("row 1 should fail monotonicity: %+v", rows[1])
	}
}

func TestKeyLookup(t *testing.T) {
	ref := writeRef(t)
	var out, errBuf bytes.Buffer
	code := lookupapp.Run([]string{
		"--photom", ref,
		"--mode", "imaging-pupil", "--filter", "f200w", "--pupil", "clear",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errBuf.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("F200W")) {
		t.Errorf("selected row missing: %s", out.String())
	}
}

func TestKeyLookupNoMatch(t *testing.T) {
	ref := writeRef(t)
	var out, errBuf bytes.Buffer
	code := lookupapp.Run([]string{
		"--photom", ref,
		"--mode", "imaging-pupil", "--filter", "F444W", "--pupil", "CLEAR",
	}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("no matching calibration row")) {
		t.Errorf("stderr = %s", errBuf.String())
	}
}

func TestUnknownModeIsUsageError(t *testing.T) {
	ref := writeRef(t)
	var out, errBuf bytes.Buffer
	if code := lookupapp.Run([]string{"--photom", ref, "--mode", "coron"}, &out, &errBuf); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

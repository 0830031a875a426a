package exposure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateShapes(t *testing.T) {
	e := &Exposure{ID: "e1", Mode: "imaging-pupil", Width: 2, Height: 2, Data: []float64{1, 2, 3, 4}}
	if err := e.Validate(); err != nil {
		t.Fatalf("valid exposure rejected: %v", err)
	}

	bad := *e
	bad.Data = bad.Data[:3]
	if err := bad.Validate(); err == nil {
		t.Fatal("expected data-length error")
	}

	bad = *e
	bad.Wavelength = []float64{1, 2}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected wavelength-length error")
	}

	bad = *e
	bad.Width = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected shape error")
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"id":"jw001","mode":"imaging-pupil","filter":"F200W","pupil":"CLEAR",
	         "width":2,"height":1,"data":[100,100]}`
	e, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	k := e.Key()
	if k.Filter != "F200W" || k.Pupil != "CLEAR" {
		t.Errorf("key = %+v", k)
	}
}

func TestParseJSONBad(t *testing.T) {
	if _, err := ParseJSON([]byte("{")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := ParseJSON([]byte(`{"mode":"imaging","width":1,"height":1,"data":[1]}`)); err == nil {
		t.Fatal("expected missing-id error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exp.json")
	doc := `{"id":"jw002","mode":"ifu","filter":"F290LP","grating":"G395H",
	         "width":1,"height":1,"data":[1.0],"wavelength":[2.5]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != "jw002" {
		t.Errorf("id = %q", e.ID)
	}
	_, err = LoadFile(filepath.Join(dir, "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "nope.json") {
		t.Fatalf("expected path in error, got %v", err)
	}
}

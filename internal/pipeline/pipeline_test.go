package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photom-core/photom"
	"photom-core/phototab"
)

func writeExposure(t *testing.T, dir, id string) string {
	t.Helper()
	doc := fmt.Sprintf(`{"id":%q,"mode":"imaging-pupil","filter":"F200W","pupil":"CLEAR",
		"width":1,"height":1,"data":[100]}`, id)
	path := filepath.Join(dir, id+".json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func testTable() *phototab.Table {
	return &phototab.Table{Rows: []phototab.Row{
		{Filter: "F200W", Pupil: "CLEAR", PhotMJSR: 2.0e-15, Uncertainty: 1.0e-17},
	}}
}

func TestForEachResultAllFiles(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 8; i++ {
		files = append(files, writeExposure(t, dir, fmt.Sprintf("jw%03d", i)))
	}

	var mu sync.Mutex
	var ids []string
	failed, err := ForEachResult(context.Background(), Config{Threads: 4},
		testTable(), files, photom.New(photom.Config{}), zap.NewNop(),
		func(r photom.Result) error {
			mu.Lock()
			ids = append(ids, r.ExposureID)
			mu.Unlock()
			return nil
		})
	require.NoError(t, err)
	require.Zero(t, failed)
	sort.Strings(ids)
	require.Len(t, ids, 8)
	require.Equal(t, "jw000", ids[0])
}

func TestForEachResultPerExposureFailureContinues(t *testing.T) {
	dir := t.TempDir()
	good := writeExposure(t, dir, "good")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(
		`{"id":"bad","mode":"imaging-pupil","filter":"F444W","pupil":"CLEAR",
		  "width":1,"height":1,"data":[1]}`), 0o644))

	var got int
	failed, err := ForEachResult(context.Background(), Config{Threads: 2},
		testTable(), []string{bad, good}, photom.New(photom.Config{}), zap.NewNop(),
		func(photom.Result) error { got++; return nil })
	require.NoError(t, err)
	require.Equal(t, 1, failed)
	require.Equal(t, 1, got)
}

func TestForEachResultReferenceDefectIsFatal(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeExposure(t, dir, "a"), writeExposure(t, dir, "b")}

	tab := &phototab.Table{Rows: []phototab.Row{{
		Filter: "F200W", Pupil: "CLEAR", PhotMJSR: 1.0,
		Nelem:          3,
		Wavelength:     []float64{1.0, 3.0, 2.0},
		RelResponse:    []float64{1, 1, 1},
		RelUncertainty: []float64{0, 0, 0},
	}}}
	_, err := ForEachResult(context.Background(), Config{Threads: 2},
		tab, files, photom.New(photom.Config{}), zap.NewNop(),
		func(photom.Result) error { return nil })
	require.ErrorIs(t, err, photom.ErrNonMonotonicWavelength)
}

func TestForEachResultCancellation(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 64; i++ {
		files = append(files, writeExposure(t, dir, fmt.Sprintf("c%03d", i)))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ForEachResult(ctx, Config{Threads: 2},
		testTable(), files, photom.New(photom.Config{}), zap.NewNop(),
		func(photom.Result) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

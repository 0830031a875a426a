// core/photom/engine.go
package photom

import (
	"fmt"
	"strings"

	"photom-core/exposure"
	"photom-core/phototab"
)

// Config controls how the engine resolves and applies conversions.
type Config struct {
	// Schema maps mode identifiers to required selector fields. Nil means
	// phototab.DefaultSchema().
	Schema phototab.Schema
	// DisableArea / DisableTime skip the optional stages even when the
	// reference file carries their extensions.
	DisableArea bool
	DisableTime bool
}

// Engine performs reference-table lookup and unit conversion. It holds no
// mutable state; one engine may calibrate independent exposures concurrently.
type Engine struct{ cfg Config }

func New(cfg Config) *Engine {
	if cfg.Schema == nil {
		cfg.Schema = phototab.DefaultSchema()
	}
	return &Engine{cfg: cfg}
}

// Result is one fully calibrated exposure.
type Result struct {
	ExposureID string
	Mode       string
	Selector   string // rendered key, e.g. "filter=F200W,pupil=CLEAR"
	RowIndex   int

	Conv    Conversion
	Stages  []string
	Width   int
	Height  int
	Data    []float64
	Err     []float64
	DQ      []uint32
	Flagged int

	// Header scalars copied verbatim from the reference file (average pixel
	// solid angle in steradians and square arcseconds).
	PixelAreaSR float64
	PixelAreaA2 float64
}

// Calibrate maps exp's selector key to a calibration row in tab and applies
// the resulting conversion plus any reference-file-driven stages. tab is
// treated as a read-only snapshot.
func (e *Engine) Calibrate(tab *phototab.Table, exp *exposure.Exposure) (Result, error) {
	if err := exp.Validate(); err != nil {
		return Result{}, err
	}
	fields, err := e.cfg.Schema.Fields(exp.Mode)
	if err != nil {
		return Result{}, fmt.Errorf("exposure %s: %w", exp.ID, err)
	}
	key := exp.Key()
	row, idx, err := phototab.SelectRow(tab, fields, key)
	if err != nil {
		return Result{}, fmt.Errorf("exposure %s: %w", exp.ID, err)
	}
	conv, err := Build(row)
	if err != nil {
		return Result{}, fmt.Errorf("exposure %s: row %d: %w", exp.ID, idx, err)
	}

	applied, err := Apply(conv, exp.Data, exp.Err, exp.Wavelength, exp.DQ)
	if err != nil {
		return Result{}, fmt.Errorf("exposure %s: %w", exp.ID, err)
	}

	var stages []string
	if !e.cfg.DisableArea && len(tab.AreaMap) > 0 {
		st := AreaStage{Area: tab.AreaMap}
		if err := st.Apply(&applied); err != nil {
			return Result{}, fmt.Errorf("exposure %s: %w", exp.ID, err)
		}
		stages = append(stages, st.Name())
	}
	if !e.cfg.DisableTime && len(tab.TimeCoeffs) > 0 {
		if tc, ok := findTimeCoeff(tab.TimeCoeffs, exp.Channel); ok {
			st := TimeStage{Coeff: tc, MidTime: exp.MidTime}
			if err := st.Apply(&applied); err != nil {
				return Result{}, fmt.Errorf("exposure %s: %w", exp.ID, err)
			}
			stages = append(stages, st.Name())
		}
	}

	return Result{
		ExposureID:  exp.ID,
		Mode:        exp.Mode,
		Selector:    phototab.KeyString(fields, key),
		RowIndex:    idx,
		Conv:        conv,
		Stages:      stages,
		Width:       exp.Width,
		Height:      exp.Height,
		Data:        applied.Data,
		Err:         applied.Err,
		DQ:          applied.DQ,
		Flagged:     applied.Flagged,
		PixelAreaSR: tab.PixelAreaSR,
		PixelAreaA2: tab.PixelAreaA2,
	}, nil
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// core/photom/stages.go
package photom

import (
	"fmt"
	"math"

	"photom-core/phototab"
)

// Stage is a composable post-processing pass over an already-converted
// exposure. Stages are selected by the presence of their reference-file
// extension (area image, time-coefficient table), not by instrument identity.
type Stage interface {
	Name() string
	Apply(a *Applied) error
}

// AreaStage multiplies each pixel by the per-pixel solid angle from the
// image-based reference variant.
type AreaStage struct {
	Area []float64
}

func (s AreaStage) Name() string { return "area" }

func (s AreaStage) Apply(a *Applied) error {
	if len(s.Area) != len(a.Data) {
		return fmt.Errorf("area stage: area map length %d, data length %d", len(s.Area), len(a.Data))
	}
	for i := range a.Data {
		a.Data[i] *= s.Area[i]
		a.Err[i] *= math.Abs(s.Area[i])
	}
	return nil
}

// TimeStage applies the per-channel time-dependent correction: a relative
// amplitude decaying exponentially from epoch T0 with timescale Tau, scaling
// the whole converted exposure by 1 + A·exp(-(t-t0)/tau).
type TimeStage struct {
	Coeff   phototab.TimeCoeff
	MidTime float64
}

func (s TimeStage) Name() string { return "time" }

// Scale returns the multiplicative correction at the exposure mid-time.
func (s TimeStage) Scale() float64 {
	return 1 + s.Coeff.Amplitude*math.Exp(-(s.MidTime-s.Coeff.T0)/s.Coeff.Tau)
}

func (s TimeStage) Apply(a *Applied) error {
	scale := s.Scale()
	for i := range a.Data {
		a.Data[i] *= scale
		a.Err[i] *= math.Abs(scale)
	}
	return nil
}

// findTimeCoeff resolves the coefficient row for an exposure's channel.
// Absent channel or no matching row simply disables the stage.
func findTimeCoeff(coeffs []phototab.TimeCoeff, channel string) (phototab.TimeCoeff, bool) {
	for _, tc := range coeffs {
		if equalFoldTrim(tc.Channel, channel) {
			return tc, true
		}
	}
	return phototab.TimeCoeff{}, false
}

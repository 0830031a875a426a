// core/photom/apply.go
package photom

import (
	"errors"
	"math"

	"photom-core/dq"
)

// ErrMissingWavelengthMap is returned when a wavelength-dependent conversion
// is applied to an exposure that carries no per-pixel wavelength map.
var ErrMissingWavelengthMap = errors.New("wavelength-dependent conversion requires a wavelength map")

// Applied holds the output arrays of one apply pass, shaped like the input.
type Applied struct {
	Data    []float64
	Err     []float64
	DQ      []uint32
	Flagged int // pixels newly marked NoFluxCal
}

// Apply multiplies pix by the conversion and propagates uncertainty and data
// quality. It is a pure function of its inputs.
//
// Scalar case: every pixel is scaled by Factor. With an input error array the
// relative uncertainties combine in quadrature; without one the output
// uncertainty is |pix| times the factor uncertainty.
//
// Curve case: each pixel's factor is interpolated at its mapped wavelength.
// A pixel whose wavelength falls outside the tabulated range gets the zero
// sentinel and the NoFluxCal|DoNotUse flags instead of an extrapolated value;
// this is the only failure downgraded to a per-pixel flag.
func Apply(c Conversion, pix, errIn, wl []float64, dqIn []uint32) (Applied, error) {
	n := len(pix)
	if c.IsCurve() && len(wl) != n {
		return Applied{}, ErrMissingWavelengthMap
	}

	out := Applied{
		Data: make([]float64, n),
		Err:  make([]float64, n),
		DQ:   make([]uint32, n),
	}
	for i := 0; i < n; i++ {
		if len(dqIn) == n {
			out.DQ[i] = dqIn[i]
		}

		f, fu := c.Factor, c.Uncertainty
		if c.IsCurve() {
			var ok bool
			f, fu, ok = c.FactorAt(wl[i])
			if !ok {
				out.Data[i] = 0
				out.Err[i] = 0
				out.DQ[i] = dq.Merge(out.DQ[i], dq.NoFluxCal|dq.DoNotUse)
				out.Flagged++
				continue
			}
		}

		v := pix[i]
		out.Data[i] = v * f
		if len(errIn) == n {
			out.Err[i] = math.Sqrt((f*errIn[i])*(f*errIn[i]) + (v*fu)*(v*fu))
		} else {
			out.Err[i] = math.Abs(v) * fu
		}
	}
	return out, nil
}

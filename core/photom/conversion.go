// core/photom/conversion.go
package photom

import (
	"errors"
	"fmt"
	"sort"

	"photom-core/phototab"
)

// Reference-file structural defects. These are fatal for the reference file,
// not just one exposure: the same malformed row would fail every exposure in
// the batch.
var (
	ErrInvalidElementCount    = errors.New("invalid element count")
	ErrNonMonotonicWavelength = errors.New("non-monotonic wavelength")
)

// Conversion is the calibration payload derived from a matched row: either a
// constant scalar factor or a wavelength-dependent response curve. Curves
// hold the already-scaled factor photmjsr×relresponse at each tabulated
// wavelength, truncated to the row's nelem.
type Conversion struct {
	Factor      float64
	Uncertainty float64

	wavelength []float64
	response   []float64
	responseUn []float64
}

// IsCurve reports whether the conversion is wavelength-dependent.
func (c Conversion) IsCurve() bool { return len(c.wavelength) > 0 }

// Nelem returns the number of valid curve samples (0 for scalar conversions).
func (c Conversion) Nelem() int { return len(c.wavelength) }

// Range returns the tabulated wavelength bounds of a curve conversion.
func (c Conversion) Range() (lo, hi float64) {
	if !c.IsCurve() {
		return 0, 0
	}
	return c.wavelength[0], c.wavelength[len(c.wavelength)-1]
}

// FactorAt evaluates the conversion at wavelength w by linear interpolation
// between the tabulated samples. ok is false when w falls outside the
// tabulated range; callers flag such pixels rather than extrapolate.
func (c Conversion) FactorAt(w float64) (factor, unc float64, ok bool) {
	if !c.IsCurve() {
		return c.Factor, c.Uncertainty, true
	}
	n := len(c.wavelength)
	if w < c.wavelength[0] || w > c.wavelength[n-1] {
		return 0, 0, false
	}
	// Index of the first sample >= w.
	i := sort.SearchFloat64s(c.wavelength, w)
	if i < n && c.wavelength[i] == w {
		return c.response[i], c.responseUn[i], true
	}
	// w is strictly between samples i-1 and i.
	frac := (w - c.wavelength[i-1]) / (c.wavelength[i] - c.wavelength[i-1])
	factor = c.response[i-1] + frac*(c.response[i]-c.response[i-1])
	unc = c.responseUn[i-1] + frac*(c.responseUn[i]-c.responseUn[i-1])
	return factor, unc, true
}

// Build derives the conversion for a matched row. A row with nelem <= 0 is a
// scalar conversion. A positive nelem requires the three parallel sequences
// to hold at least nelem entries each (trailing entries are ignored) and the
// valid wavelengths to be strictly ascending.
func Build(row phototab.Row) (Conversion, error) {
	c := Conversion{Factor: row.PhotMJSR, Uncertainty: row.Uncertainty}
	if row.Nelem <= 0 {
		return c, nil
	}
	n := row.Nelem
	if len(row.Wavelength) < n || len(row.RelResponse) < n || len(row.RelUncertainty) < n {
		return Conversion{}, fmt.Errorf(
			"%w: nelem=%d but wavelength/relresponse/reluncertainty have %d/%d/%d entries",
			ErrInvalidElementCount, n,
			len(row.Wavelength), len(row.RelResponse), len(row.RelUncertainty))
	}
	wl := row.Wavelength[:n]
	for i := 1; i < n; i++ {
		if wl[i] <= wl[i-1] {
			return Conversion{}, fmt.Errorf(
				"%w: wavelength[%d]=%g after wavelength[%d]=%g",
				ErrNonMonotonicWavelength, i, wl[i], i-1, wl[i-1])
		}
	}
	c.wavelength = append([]float64(nil), wl...)
	c.response = make([]float64, n)
	c.responseUn = make([]float64, n)
	for i := 0; i < n; i++ {
		c.response[i] = row.PhotMJSR * row.RelResponse[i]
		c.responseUn[i] = row.PhotMJSR * row.RelUncertainty[i]
	}
	return c, nil
}

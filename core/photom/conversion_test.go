package photom

import (
	"errors"
	"math"
	"testing"

	"photom-core/phototab"
)

func TestBuildScalar(t *testing.T) {
	c, err := Build(phototab.Row{PhotMJSR: 2.0e-15, Uncertainty: 1.0e-17})
	if err != nil {
		t.Fatal(err)
	}
	if c.IsCurve() {
		t.Fatal("scalar row produced a curve")
	}
	if c.Factor != 2.0e-15 || c.Uncertainty != 1.0e-17 {
		t.Errorf("payload = %g ± %g", c.Factor, c.Uncertainty)
	}
}

func curveRow() phototab.Row {
	return phototab.Row{
		PhotMJSR:       1.0,
		Uncertainty:    0.01,
		Nelem:          3,
		Wavelength:     []float64{1.0, 2.0, 3.0},
		RelResponse:    []float64{1.0, 2.0, 3.0},
		RelUncertainty: []float64{0.1, 0.1, 0.1},
	}
}

func TestBuildCurveInterpolation(t *testing.T) {
	c, err := Build(curveRow())
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsCurve() || c.Nelem() != 3 {
		t.Fatalf("expected 3-sample curve, got %+v", c)
	}

	f, _, ok := c.FactorAt(2.5)
	if !ok || f != 2.5 {
		t.Errorf("FactorAt(2.5) = %g ok=%v, want 2.5", f, ok)
	}
	// Exact sample hit.
	f, _, ok = c.FactorAt(2.0)
	if !ok || f != 2.0 {
		t.Errorf("FactorAt(2.0) = %g ok=%v", f, ok)
	}
	// Range endpoints are in range.
	if _, _, ok := c.FactorAt(1.0); !ok {
		t.Error("lower endpoint rejected")
	}
	if _, _, ok := c.FactorAt(3.0); !ok {
		t.Error("upper endpoint rejected")
	}
	// Outside the tabulated range: never extrapolated.
	if _, _, ok := c.FactorAt(4.0); ok {
		t.Error("FactorAt(4.0) extrapolated")
	}
	if _, _, ok := c.FactorAt(0.5); ok {
		t.Error("FactorAt(0.5) extrapolated")
	}
}

func TestBuildCurveScalesByPhotMJSR(t *testing.T) {
	r := curveRow()
	r.PhotMJSR = 2.0e-15
	c, err := Build(r)
	if err != nil {
		t.Fatal(err)
	}
	f, u, ok := c.FactorAt(1.5)
	if !ok {
		t.Fatal("in-range wavelength rejected")
	}
	// Interpolated values pick up a rounding step the folded constants do
	// not, so compare with a tolerance.
	if math.Abs(f-2.0e-15*1.5) > 1e-28 {
		t.Errorf("factor = %g", f)
	}
	if math.Abs(u-2.0e-15*0.1) > 1e-28 {
		t.Errorf("uncertainty = %g", u)
	}
}

// Only the first nelem entries are valid; trailing entries are padding.
func TestBuildTruncatesToNelem(t *testing.T) {
	r := curveRow()
	r.Wavelength = append(r.Wavelength, 0) // trailing pad breaks monotonicity if not truncated
	r.RelResponse = append(r.RelResponse, 0)
	r.RelUncertainty = append(r.RelUncertainty, 0)
	c, err := Build(r)
	if err != nil {
		t.Fatal(err)
	}
	if c.Nelem() != 3 {
		t.Errorf("nelem = %d, want 3", c.Nelem())
	}
	if lo, hi := c.Range(); lo != 1.0 || hi != 3.0 {
		t.Errorf("range = [%g, %g]", lo, hi)
	}
}

func TestBuildInvalidElementCount(t *testing.T) {
	r := curveRow()
	r.Nelem = 10
	r.Wavelength = []float64{1, 2, 3, 4, 5}
	_, err := Build(r)
	if !errors.Is(err, ErrInvalidElementCount) {
		t.Fatalf("expected ErrInvalidElementCount, got %v", err)
	}
}

func TestBuildNonMonotonicWavelength(t *testing.T) {
	r := curveRow()
	r.Wavelength = []float64{1.0, 3.0, 2.0}
	_, err := Build(r)
	if !errors.Is(err, ErrNonMonotonicWavelength) {
		t.Fatalf("expected ErrNonMonotonicWavelength, got %v", err)
	}
	// Equal neighbours are not strictly ascending either.
	r.Wavelength = []float64{1.0, 2.0, 2.0}
	_, err = Build(r)
	if !errors.Is(err, ErrNonMonotonicWavelength) {
		t.Fatalf("expected ErrNonMonotonicWavelength for ties, got %v", err)
	}
}

// core/phototab/types.go
package phototab

// Selector field names. A mode schema is an ordered list of these; rows and
// keys are compared field-by-field over exactly the fields the active mode
// requires.
const (
	FieldFilter   = "filter"
	FieldPupil    = "pupil"
	FieldGrating  = "grating"
	FieldSlit     = "slit"
	FieldSubarray = "subarray"
	FieldOrder    = "order"
)

// Row is one calibration table row: selector fields identifying an instrument
// configuration plus the conversion payload. Wavelength, RelResponse and
// RelUncertainty are parallel sequences of which only the first Nelem entries
// are semantically valid; trailing entries are padding, not data.
type Row struct {
	Filter   string `yaml:"filter"`
	Pupil    string `yaml:"pupil,omitempty"`
	Grating  string `yaml:"grating,omitempty"`
	Slit     string `yaml:"slit,omitempty"`
	Subarray string `yaml:"subarray,omitempty"`
	Order    int    `yaml:"order,omitempty"`

	PhotMJSR    float64 `yaml:"photmjsr"`
	Uncertainty float64 `yaml:"uncertainty"`

	Nelem          int       `yaml:"nelem,omitempty"`
	Wavelength     []float64 `yaml:"wavelength,omitempty"`
	RelResponse    []float64 `yaml:"relresponse,omitempty"`
	RelUncertainty []float64 `yaml:"reluncertainty,omitempty"`
}

// TimeCoeff is one row of the optional per-channel time-dependent correction
// table. The correction is a relative amplitude decaying exponentially from
// epoch T0 with timescale Tau (days).
type TimeCoeff struct {
	Channel   string  `yaml:"channel"`
	Amplitude float64 `yaml:"amplitude"`
	Tau       float64 `yaml:"tau"`
	T0        float64 `yaml:"t0"`
}

// Table is an immutable, fully loaded photom reference table. It is loaded
// once per run and read-only afterwards; concurrent lookups are safe.
//
// PixelAreaSR and PixelAreaA2 are header-level scalars (average pixel solid
// angle in steradians and square arcseconds) passed through verbatim into
// output products. AreaMap, when present, is the per-pixel solid-angle image
// of the image-based reference variant; TimeCoeffs, when present, enable the
// time-dependent correction stage.
type Table struct {
	Instrument string `yaml:"instrument,omitempty"`
	Rows       []Row  `yaml:"rows"`

	PixelAreaSR float64 `yaml:"pixar_sr,omitempty"`
	PixelAreaA2 float64 `yaml:"pixar_a2,omitempty"`

	AreaMap    []float64   `yaml:"areamap,omitempty"`
	TimeCoeffs []TimeCoeff `yaml:"timecoeff,omitempty"`
}

// Key holds the selector values drawn from an exposure's metadata. Only the
// fields named by the active mode schema participate in matching.
type Key struct {
	Filter   string
	Pupil    string
	Grating  string
	Slit     string
	Subarray string
	Order    int
}

// KeyFromRow builds the key a science exposure with this row's configuration
// would present. Useful for round-trip checks and for the lookup tool.
func KeyFromRow(r Row) Key {
	return Key{
		Filter:   r.Filter,
		Pupil:    r.Pupil,
		Grating:  r.Grating,
		Slit:     r.Slit,
		Subarray: r.Subarray,
		Order:    r.Order,
	}
}

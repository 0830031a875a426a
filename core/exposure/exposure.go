// core/exposure/exposure.go
package exposure

import (
	"fmt"

	"photom-core/phototab"
)

// Exposure is one science exposure ready for flux calibration: selector
// metadata, the pixel arrays, and (for spectroscopic modes) the per-pixel
// wavelength map produced by the WCS assignment step upstream.
//
// Data, Err, DQ and Wavelength are row-major Width×Height arrays. Err and DQ
// may be empty; Wavelength is required only when the selected calibration row
// is wavelength-dependent.
type Exposure struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`

	Filter   string `json:"filter,omitempty"`
	Pupil    string `json:"pupil,omitempty"`
	Grating  string `json:"grating,omitempty"`
	Slit     string `json:"slit,omitempty"`
	Subarray string `json:"subarray,omitempty"`
	Order    int    `json:"order,omitempty"`

	// Channel and MidTime feed the optional time-dependent correction.
	// MidTime is the exposure mid-point as an MJD.
	Channel string  `json:"channel,omitempty"`
	MidTime float64 `json:"mid_time,omitempty"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Data       []float64 `json:"data"`
	Err        []float64 `json:"err,omitempty"`
	DQ         []uint32  `json:"dq,omitempty"`
	Wavelength []float64 `json:"wavelength,omitempty"`
}

// Key extracts the selector key the calibration lookup matches against.
func (e *Exposure) Key() phototab.Key {
	return phototab.Key{
		Filter:   e.Filter,
		Pupil:    e.Pupil,
		Grating:  e.Grating,
		Slit:     e.Slit,
		Subarray: e.Subarray,
		Order:    e.Order,
	}
}

// Validate checks array shapes against the declared Width×Height.
func (e *Exposure) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("exposure: missing id")
	}
	n := e.Width * e.Height
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("exposure %s: bad shape %dx%d", e.ID, e.Width, e.Height)
	}
	if len(e.Data) != n {
		return fmt.Errorf("exposure %s: data length %d, want %d", e.ID, len(e.Data), n)
	}
	if len(e.Err) != 0 && len(e.Err) != n {
		return fmt.Errorf("exposure %s: err length %d, want %d", e.ID, len(e.Err), n)
	}
	if len(e.DQ) != 0 && len(e.DQ) != n {
		return fmt.Errorf("exposure %s: dq length %d, want %d", e.ID, len(e.DQ), n)
	}
	if len(e.Wavelength) != 0 && len(e.Wavelength) != n {
		return fmt.Errorf("exposure %s: wavelength map length %d, want %d", e.ID, len(e.Wavelength), n)
	}
	return nil
}

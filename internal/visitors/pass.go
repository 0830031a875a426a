package visitors

import "photom-core/photom"

// PassThrough returns the calibrated exposure unchanged.
type PassThrough struct{}

func (PassThrough) Visit(r photom.Result) (keep bool, out photom.Result, err error) {
	return true, r, nil
}

// core/dq/flags.go
package dq

// Flag is a per-pixel bit-encoded data-quality marker. Bits are OR-merged:
// downstream steps must never clear a bit set upstream.
type Flag uint32

const (
	// DoNotUse marks a pixel that must be excluded from science measurements.
	DoNotUse Flag = 1 << iota
	// NoFluxCal marks a pixel for which no flux calibration is available,
	// e.g. its wavelength falls outside the tabulated response curve.
	NoFluxCal
)

// Merge ORs additional flags into an existing DQ word.
func Merge(cur uint32, f Flag) uint32 { return cur | uint32(f) }

// Has reports whether all bits of f are set in cur.
func Has(cur uint32, f Flag) bool { return cur&uint32(f) == uint32(f) }

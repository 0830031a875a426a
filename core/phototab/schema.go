// core/phototab/schema.go
package phototab

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema maps a mode identifier to the ordered list of selector fields that
// mode requires. It is resolved once at load time; row selection only ever
// compares the fields the schema names.
type Schema map[string][]string

// Built-in mode identifiers.
const (
	ModeImagingSingle = "imaging-single"
	ModeImaging       = "imaging"
	ModeImagingPupil  = "imaging-pupil"
	ModeSlitless      = "slitless"
	ModeFixedSlit     = "fixed-slit"
	ModeIFU           = "ifu"
	ModeMOS           = "mos"
)

// DefaultSchema returns the documented per-mode selector requirements.
func DefaultSchema() Schema {
	return Schema{
		ModeImagingSingle: {},
		ModeImaging:       {FieldFilter, FieldSubarray},
		ModeImagingPupil:  {FieldFilter, FieldPupil},
		ModeSlitless:      {FieldFilter, FieldPupil, FieldOrder},
		ModeFixedSlit:     {FieldFilter, FieldGrating, FieldSlit},
		ModeIFU:           {FieldFilter, FieldGrating},
		ModeMOS:           {FieldFilter, FieldGrating},
	}
}

var validFields = map[string]struct{}{
	FieldFilter:   {},
	FieldPupil:    {},
	FieldGrating:  {},
	FieldSlit:     {},
	FieldSubarray: {},
	FieldOrder:    {},
}

// ParseSchemaYAML decodes a mode→fields mapping and validates field names.
// Entries replace the built-in defaults for the modes they name; unnamed
// modes keep their defaults.
func ParseSchemaYAML(data []byte) (Schema, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	s := DefaultSchema()
	for mode, fields := range raw {
		m := strings.ToLower(strings.TrimSpace(mode))
		if m == "" {
			return nil, fmt.Errorf("schema: empty mode name")
		}
		norm := make([]string, 0, len(fields))
		for _, f := range fields {
			ff := strings.ToLower(strings.TrimSpace(f))
			if _, ok := validFields[ff]; !ok {
				return nil, fmt.Errorf("schema: mode %q: unknown selector field %q", m, f)
			}
			norm = append(norm, ff)
		}
		s[m] = norm
	}
	return s, nil
}

// Fields returns the required selector fields for mode.
func (s Schema) Fields(mode string) ([]string, error) {
	f, ok := s[strings.ToLower(strings.TrimSpace(mode))]
	if !ok {
		return nil, fmt.Errorf("schema: unknown mode %q", mode)
	}
	return f, nil
}

// Modes lists the known mode identifiers in sorted order.
func (s Schema) Modes() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

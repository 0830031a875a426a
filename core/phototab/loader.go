// core/phototab/loader.go
package phototab

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a photom reference table from its YAML form. The binary
// container the archive delivers is unpacked by an upstream tool; this loader
// consumes the already-parsed table structure.
func ParseYAML(data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("phototab: empty reference table")
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("phototab: decode table: %w", err)
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("phototab: reference table has no rows")
	}
	for i, tc := range t.TimeCoeffs {
		if tc.Tau <= 0 {
			return nil, fmt.Errorf("phototab: timecoeff[%d]: tau must be > 0", i)
		}
	}
	return &t, nil
}

// LoadFile reads a YAML reference table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("phototab: read %s: %w", path, err)
	}
	t, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("phototab: %s: %w", path, err)
	}
	return t, nil
}

// LoadSchemaFile reads a mode-schema override from disk.
func LoadSchemaFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("phototab: read %s: %w", path, err)
	}
	s, err := ParseSchemaYAML(data)
	if err != nil {
		return nil, fmt.Errorf("phototab: %s: %w", path, err)
	}
	return s, nil
}

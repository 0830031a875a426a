// core/exposure/loader.go
package exposure

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseJSON decodes a single exposure document and validates its shape.
func ParseJSON(data []byte) (*Exposure, error) {
	var e Exposure
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("exposure: decode: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// LoadFile reads one exposure JSON file from disk.
func LoadFile(path string) (*Exposure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("exposure: read %s: %w", path, err)
	}
	e, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("exposure: %s: %w", path, err)
	}
	return e, nil
}

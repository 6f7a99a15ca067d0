package openapi

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal serialises the assembled document as YAML with two-space
// indentation.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("openapi marshal: encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("openapi marshal: close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

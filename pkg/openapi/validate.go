package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate round-trips the emitted document through kin-openapi to ensure
// the output is a loadable OpenAPI 3 document with resolvable internal
// references. Example validation is disabled since the generated schemas
// carry none.
func Validate(ctx context.Context, raw []byte) error {
	if len(raw) == 0 {
		return fmt.Errorf("openapi validate: document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return fmt.Errorf("openapi validate: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi validate: %w", err)
	}
	return nil
}

// Package tablegen converts semi-structured documentation tables into OpenAPI
// component schemas. It reconstructs nested object shapes from the
// indentation of table rows, infers a structured type system from free-text
// type phrases, and resolves cross-references between the named schemas it
// finds.
package tablegen

import (
	"context"

	"github.com/docfold/tablegen/pkg/doctable"
	"github.com/docfold/tablegen/pkg/orchestrator"
	"github.com/docfold/tablegen/pkg/schema"
)

// SourceFromFile references a documentation page on the local filesystem.
func SourceFromFile(path string) doctable.Source { return doctable.SourceFromFile(path) }

// SourceFromURL references a documentation page fetched over HTTP(S).
func SourceFromURL(url string) doctable.Source { return doctable.SourceFromURL(url) }

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to run the pipeline in stages.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the documentation page, extracts its component schemas, and
// returns the serialised OpenAPI document. It is the simplest entry point for
// callers that just want YAML output.
func Generate(ctx context.Context, source doctable.Source, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Source: source})
}

// GenerateFromRegions renders a document from pre-extracted table regions,
// bypassing the loader and markup parser while still delegating to the
// orchestrator.
func GenerateFromRegions(ctx context.Context, regions []doctable.Region, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Regions: regions})
}

// Schemas runs the pipeline up to reference resolution and returns the
// component name → schema mapping for callers that embed the schemas into
// their own document shape.
func Schemas(ctx context.Context, source doctable.Source, options ...orchestrator.Option) (*schema.Set, error) {
	gen := orchestrator.New(options...)
	return gen.Schemas(ctx, orchestrator.Request{Source: source})
}

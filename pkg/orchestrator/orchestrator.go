// Package orchestrator coordinates the full pipeline from documentation page
// to emitted OpenAPI document: loader → region parser → component extractor →
// reference resolver → assembler → serialiser.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/docfold/tablegen/internal/extract"
	"github.com/docfold/tablegen/internal/htmldoc"
	"github.com/docfold/tablegen/internal/infer"
	"github.com/docfold/tablegen/pkg/doctable"
	"github.com/docfold/tablegen/pkg/openapi"
	"github.com/docfold/tablegen/pkg/schema"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom documentation loader.
func WithLoader(loader doctable.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom region parser.
func WithParser(parser doctable.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithLoaderOptions configures the built-in loader. Ignored when WithLoader
// supplies a custom implementation.
func WithLoaderOptions(options doctable.LoaderOptions) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = options
	}
}

// WithInferConfig overrides the inference heuristics (keyword tables and the
// array-name allowlist).
func WithInferConfig(cfg infer.Config) Option {
	return func(o *Orchestrator) {
		o.inferConfig = &cfg
	}
}

// WithSkipTitles replaces the set of section titles that never describe
// component schemas.
func WithSkipTitles(titles ...string) Option {
	return func(o *Orchestrator) {
		o.skipTitles = make(map[string]struct{}, len(titles))
		for _, title := range titles {
			o.skipTitles[title] = struct{}{}
		}
	}
}

// WithInfo overrides the emitted document metadata.
func WithInfo(info openapi.Info) Option {
	return func(o *Orchestrator) {
		o.info = &info
	}
}

// WithPatches replaces the cross-reference patch set applied during
// assembly.
func WithPatches(patches ...openapi.Patch) Option {
	return func(o *Orchestrator) {
		o.patches = patches
		o.patchesSpecified = true
	}
}

// WithValidation round-trips the emitted YAML through an OpenAPI loader
// before returning it.
func WithValidation() Option {
	return func(o *Orchestrator) {
		o.validate = true
	}
}

// Orchestrator coordinates the pipeline. It applies sensible defaults (HTML
// parser, Twitch reference heuristics) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	loader           doctable.Loader
	parser           doctable.Parser
	loaderOptions    doctable.LoaderOptions
	inferConfig      *infer.Config
	skipTitles       map[string]struct{}
	info             *openapi.Info
	patches          []openapi.Patch
	patchesSpecified bool
	validate         bool

	extractor *extract.Extractor
	assembler *openapi.Assembler
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = htmldoc.NewLoader(o.loaderOptions)
	}
	if o.parser == nil {
		o.parser = htmldoc.NewParser()
	}

	cfg := infer.DefaultConfig()
	if o.inferConfig != nil {
		cfg = *o.inferConfig
	}
	o.extractor = extract.NewExtractor(infer.New(cfg), o.skipTitles)

	info := openapi.DefaultInfo()
	if o.info != nil {
		info = *o.info
	}
	patches := o.patches
	if !o.patchesSpecified {
		patches = openapi.DefaultPatches()
	}
	o.assembler = openapi.NewAssembler(info, patches)
}

// Request describes the inputs required to generate a schema document.
type Request struct {
	// Source identifies where the documentation page lives. Optional when
	// Document or Regions is supplied.
	Source doctable.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *doctable.Document

	// Regions allows callers to bypass loading and markup parsing entirely
	// and feed pre-extracted table regions.
	Regions []doctable.Region
}

// Schemas runs the pipeline up to and including reference resolution and
// returns the component mapping. This is the stable core boundary; Generate
// layers serialisation on top of it.
func (o *Orchestrator) Schemas(ctx context.Context, req Request) (*schema.Set, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	regions, err := o.resolveRegions(ctx, req)
	if err != nil {
		return nil, err
	}

	set := o.extractor.Extract(regions)
	return set.Resolve(), nil
}

// Generate executes the full pipeline and returns the serialised OpenAPI
// document.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := o.Schemas(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := openapi.Marshal(o.assembler.Assemble(set))
	if err != nil {
		return nil, err
	}

	if o.validate {
		if err := openapi.Validate(ctx, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (o *Orchestrator) resolveRegions(ctx context.Context, req Request) ([]doctable.Region, error) {
	if req.Regions != nil {
		return req.Regions, nil
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	regions, err := o.parser.Regions(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse regions: %w", err)
	}
	return regions, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (doctable.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return doctable.Document{}, errors.New("orchestrator: request requires a source, document, or regions")
	}

	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return doctable.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

package openapi

import (
	"context"
	"testing"

	"github.com/docfold/tablegen/pkg/schema"
)

func TestValidateAcceptsAssembledDocument(t *testing.T) {
	t.Parallel()

	set := schema.NewSet()

	event := schema.NewObject()
	event.Properties["transport"] = schema.NewReference("Transport")
	event.Properties["count"] = &schema.Node{Kind: schema.Integer}
	set.Register("Event", event)

	transport := schema.NewObject()
	transport.Properties["method"] = &schema.Node{Kind: schema.String}
	set.Register("Transport", transport)

	out, err := Marshal(NewAssembler(DefaultInfo(), nil).Assemble(set))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if err := Validate(context.Background(), out); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	if err := Validate(context.Background(), []byte("openapi: [")); err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestValidateRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	if err := Validate(context.Background(), nil); err == nil {
		t.Fatalf("expected an error for empty input")
	}
}

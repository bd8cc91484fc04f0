package parser_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listingwizard/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
)

const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Listings", "version": "1.0.0" },
  "paths": {
    "/listings": {
      "post": {
        "operationId": "createListing",
        "x-wizard-steps": [{ "id": "property" }],
        "x-internal": true,
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["resourceType"],
                "properties": {
                  "resourceType": { "type": "string", "x-wizard-step": "property" }
                }
              }
            }
          }
        },
        "responses": { "201": { "description": "Created" } }
      },
      "get": {
        "responses": { "200": { "description": "OK" } }
      }
    }
  }
}`

func parse(t *testing.T, raw string) map[string]pkgopenapi.Operation {
	t.Helper()
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("listing.json"), []byte(raw))
	ops, err := parser.New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	return ops
}

func TestOperations_KeepsWizardExtensions(t *testing.T) {
	ops := parse(t, document)

	create, ok := ops["createListing"]
	if !ok {
		t.Fatalf("createListing missing from %v", ops)
	}
	if create.Method != "POST" || create.Path != "/listings" {
		t.Fatalf("unexpected operation %s %s", create.Method, create.Path)
	}
	if _, ok := create.Extensions["x-internal"]; ok {
		t.Fatalf("non-wizard extensions must be dropped")
	}
	want := []any{map[string]any{"id": "property"}}
	if diff := cmp.Diff(want, create.Extensions[pkgopenapi.StepsExtension]); diff != "" {
		t.Fatalf("steps extension mismatch (-want +got):\n%s", diff)
	}

	property := create.RequestBody.Properties["resourceType"]
	if property.Extensions[pkgopenapi.StepExtension] != "property" {
		t.Fatalf("property extension lost: %+v", property)
	}
	if !create.RequestBody.IsRequired("resourceType") {
		t.Fatalf("required list lost")
	}
}

func TestOperations_SynthesisesMissingIDs(t *testing.T) {
	ops := parse(t, document)
	if _, ok := ops["get:/listings"]; !ok {
		t.Fatalf("expected synthesised id, got %v", keys(ops))
	}
}

func TestOperations_RejectsInvalidDocuments(t *testing.T) {
	p := parser.New(pkgopenapi.NewParserOptions())
	for name, raw := range map[string]string{
		"not openapi": `{"hello": "world"`,
		"no paths":    `{"openapi": "3.0.0", "info": {"title": "x", "version": "1"}, "paths": {}}`,
	} {
		doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS(name), []byte(raw))
		if _, err := p.Operations(context.Background(), doc); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func keys(ops map[string]pkgopenapi.Operation) []string {
	out := make([]string, 0, len(ops))
	for key := range ops {
		out = append(out, key)
	}
	return out
}

package openapi

import (
	"errors"
	"slices"
	"strings"
)

// Document is a raw OpenAPI payload tagged with where it was read from.
// The zero value has no source and no payload.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument copies raw and pairs it with src. Both are required.
func NewDocument(src Source, raw []byte) (Document, error) {
	switch {
	case src == nil:
		return Document{}, errors.New("openapi: document needs a source")
	case len(raw) == 0:
		return Document{}, errors.New("openapi: document payload is empty")
	}
	return Document{source: src, raw: slices.Clone(raw)}, nil
}

// MustNewDocument is NewDocument for fixtures; it panics on error.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source { return d.source }

// Raw returns a private copy of the payload.
func (d Document) Raw() []byte { return slices.Clone(d.raw) }

// Location is the source location, or "" for the zero Document.
func (d Document) Location() string {
	if d.source != nil {
		return d.source.Location()
	}
	return ""
}

// Operation carries what step extraction reads from one OpenAPI operation:
// its identity, its request body schema and its wizard extensions.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
	Extensions  map[string]any
}

// NewOperation builds an Operation, rejecting a blank id, method or path.
func NewOperation(id, method, path string, request Schema) (Operation, error) {
	op := Operation{
		ID:          strings.TrimSpace(id),
		Method:      strings.TrimSpace(method),
		Path:        strings.TrimSpace(path),
		RequestBody: request,
	}
	var missing []string
	for name, value := range map[string]string{"id": op.ID, "method": op.Method, "path": op.Path} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Operation{}, errors.New("openapi: operation needs " + strings.Join(missing, ", "))
	}
	return op, nil
}

// Schema is a flattened request body schema. Properties nest.
type Schema struct {
	Ref         string
	Type        string
	Description string
	Required    []string
	Properties  map[string]Schema
	Extensions  map[string]any
}

func (s Schema) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

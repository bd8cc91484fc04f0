package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) *Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId. Operations
// without an id are keyed "method:path".
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if p.options.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}

	operations := make(map[string]pkgopenapi.Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if op, ok := convertOperation(method, path, operation); ok {
				operations[op.ID] = op
			}
		}
	}

	if len(operations) == 0 {
		return nil, errors.New("openapi parser: no operations extracted")
	}
	return operations, nil
}

func convertOperation(method, path string, operation *openapi3.Operation) (pkgopenapi.Operation, bool) {
	if operation == nil {
		return pkgopenapi.Operation{}, false
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}
	op, err := pkgopenapi.NewOperation(opID, strings.ToUpper(method), path, requestSchema(operation.RequestBody))
	if err != nil {
		return pkgopenapi.Operation{}, false
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Extensions = wizardExtensions(operation.Extensions)
	return op, true
}

func requestSchema(requestBody *openapi3.RequestBodyRef) pkgopenapi.Schema {
	if requestBody == nil {
		return pkgopenapi.Schema{}
	}
	if requestBody.Value == nil {
		return pkgopenapi.Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return convertSchema(mt.Schema, 0)
		}
	}
	for _, mt := range content {
		return convertSchema(mt.Schema, 0)
	}
	return pkgopenapi.Schema{}
}

// maxDepth stops recursion through cyclic $refs.
const maxDepth = 8

func convertSchema(ref *openapi3.SchemaRef, depth int) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil || depth > maxDepth {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Description: src.Description,
		Extensions:  wizardExtensions(src.Extensions),
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property, depth+1)
		}
	}
	for _, part := range src.AllOf {
		mergeAllOf(&schema, convertSchema(part, depth+1))
	}
	return schema
}

// mergeAllOf folds an allOf member into target: required fields, properties
// and extensions are unioned.
func mergeAllOf(target *pkgopenapi.Schema, part pkgopenapi.Schema) {
	for _, name := range part.Required {
		if !target.IsRequired(name) {
			target.Required = append(target.Required, name)
		}
	}
	if len(part.Properties) > 0 {
		if target.Properties == nil {
			target.Properties = make(map[string]pkgopenapi.Schema, len(part.Properties))
		}
		for name, property := range part.Properties {
			if _, exists := target.Properties[name]; !exists {
				target.Properties[name] = property
			}
		}
	}
	for key, value := range part.Extensions {
		if target.Extensions == nil {
			target.Extensions = make(map[string]any)
		}
		if _, exists := target.Extensions[key]; !exists {
			target.Extensions[key] = value
		}
	}
	if target.Type == "" {
		target.Type = part.Type
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

const extensionNamespace = "x-wizard-"

func wizardExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	result := make(map[string]any)
	for key, value := range raw {
		if strings.HasPrefix(key, extensionNamespace) && value != nil {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

package openapi

import "context"

// Parser normalises OpenAPI documents into operation wrappers keyed by
// operationId.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// Validate runs kin-openapi document validation after loading. Defaults to
	// true.
	Validate bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithValidation toggles document validation.
func WithValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.Validate = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{Validate: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

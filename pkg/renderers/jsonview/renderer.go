// Package jsonview renders the tracker state as JSON for client-side headers
// and API responses.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

// Document is the JSON payload. Theme data is included when a theme was
// resolved for the request.
type Document struct {
	wizard.State
	Locale string    `json:"locale,omitempty"`
	Theme  *ThemeRef `json:"theme,omitempty"`
}

// ThemeRef identifies the active theme and its CSS variables.
type ThemeRef struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent pretty-prints the output using indent.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, state wizard.State, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := Document{State: state, Locale: opts.Locale}
	if cfg := opts.Theme; cfg != nil {
		doc.Theme = &ThemeRef{Name: cfg.Theme, Variant: cfg.Variant, CSSVars: cfg.CSSVars}
	}

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(doc, "", r.indent)
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview: encode: %w", err)
	}
	return out, nil
}

// Package listingwizard renders the header of a multi-step rental listing
// wizard: title, "current/total" counter, progress bar, and back/cancel
// controls that stay inert while a save is in flight.
//
// The tracker itself lives in pkg/wizard and is a pure function of its input.
// This package re-exports the common entry points and wires the default
// renderers, profile catalog, translations and OpenAPI step discovery.
package listingwizard

import (
	"context"
	"errors"

	internalLoader "github.com/goliatone/go-listingwizard/internal/openapi/loader"
	internalParser "github.com/goliatone/go-listingwizard/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
	"github.com/goliatone/go-listingwizard/pkg/orchestrator"
	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

// Step is one wizard step.
type Step = wizard.Step

// Input carries the tracker construction parameters.
type Input = wizard.Input

// State is the tracker render description.
type State = wizard.State

// Session holds the mutable position of a wizard.
type Session = wizard.Session

// Generator renders wizard headers through the renderer registry.
type Generator = orchestrator.Orchestrator

// Request describes one header render.
type Request = orchestrator.Request

// RenderOptions describes per-request renderer inputs.
type RenderOptions = render.RenderOptions

// Track computes the header state for in.
func Track(in Input) State {
	return wizard.Track(in)
}

// NewSession starts a session over steps.
func NewSession(steps []Step, options ...wizard.SessionOption) *Session {
	return wizard.NewSession(steps, options...)
}

// New constructs a Generator with the built-in renderers and profiles unless
// options override them.
func New(options ...orchestrator.Option) *Generator {
	return orchestrator.New(options...)
}

// Generate is a one-shot helper around New(options...).Generate(ctx, req).
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, req)
}

// NewLoader constructs an OpenAPI loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs an OpenAPI parser backed by kin-openapi.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// StepsFromOpenAPI reads the wizard steps declared by operationID in an
// OpenAPI document (JSON or YAML).
func StepsFromOpenAPI(ctx context.Context, data []byte, operationID string) ([]Step, error) {
	if len(data) == 0 {
		return nil, errors.New("listingwizard: openapi document is empty")
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS("inline"), data)
	if err != nil {
		return nil, err
	}
	return pkgopenapi.StepsFromOperation(ctx, NewParser(), doc, operationID)
}

// Package vanilla renders the wizard header as server-side HTML using the
// embedded templates and the pongo2-backed engine.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-listingwizard/pkg/render"
	rendertemplate "github.com/goliatone/go-listingwizard/pkg/render/template"
	gotemplate "github.com/goliatone/go-listingwizard/pkg/render/template/gotemplate"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithPostHooks(dropBlankLines),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the header markup for state. Labels are expected to be
// localized already (render.Registry does this); the counter caption is
// translated here through the template helpers.
func (r *Renderer) Render(ctx context.Context, state wizard.State, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]any{
		"wizard": buildView(state, opts),
	}
	for name, fn := range render.TemplateI18nFuncs(opts.Translator, render.TemplateI18nConfig{OnMissing: opts.OnMissing}) {
		data[name] = fn
	}

	if state.Progress.Visible {
		progress, err := r.partial(opts, partialProgress, data)
		if err != nil {
			return nil, err
		}
		data["progress_html"] = progress
	}
	if state.Back.Visible || state.Cancel.Visible {
		actions, err := r.partial(opts, partialActions, data)
		if err != nil {
			return nil, err
		}
		data["actions_html"] = actions
	}

	result, err := r.partial(opts, partialHeader, data)
	if err != nil {
		return nil, err
	}
	return []byte(result), nil
}

// dropBlankLines removes the whitespace-only lines that block tags leave
// behind in the rendered markup.
func dropBlankLines(ctx *gotemplatepkg.HookContext) (string, error) {
	lines := strings.Split(ctx.Output, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return "", nil
	}
	return strings.Join(kept, "\n") + "\n", nil
}

func (r *Renderer) partial(opts render.RenderOptions, key string, data map[string]any) (string, error) {
	out, err := r.templates.RenderTemplate(partialPath(opts, key), data)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render %s: %w", key, err)
	}
	return out, nil
}

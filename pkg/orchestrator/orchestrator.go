package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	gotheme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-listingwizard/internal/openapi/loader"
	internalParser "github.com/goliatone/go-listingwizard/internal/openapi/parser"
	"github.com/goliatone/go-listingwizard/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/renderers/jsonview"
	"github.com/goliatone/go-listingwizard/pkg/renderers/tui"
	"github.com/goliatone/go-listingwizard/pkg/renderers/vanilla"
	"github.com/goliatone/go-listingwizard/pkg/theme"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithProfiles replaces the built-in listing profiles.
func WithProfiles(profiles *catalog.Profiles) Option {
	return func(o *Orchestrator) {
		o.profiles = profiles
	}
}

// WithTranslator sets the translator used for labels and titles.
func WithTranslator(t render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = t
	}
}

// WithMissingTranslationHandler decides what renders for untranslated keys.
func WithMissingTranslationHandler(fn render.MissingTranslationHandler) Option {
	return func(o *Orchestrator) {
		o.onMissing = fn
	}
}

// WithThemeSelector resolves request theme/variant names through selector.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithLogger routes orchestration logs to logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *Orchestrator) {
		o.log = logger
	}
}

// Orchestrator renders wizard headers. It applies defaults (vanilla, tui and
// json renderers, embedded profiles) while remaining open to dependency
// injection.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	registry        *render.Registry
	defaultRenderer string
	profiles        *catalog.Profiles
	translator      render.Translator
	onMissing       render.MissingTranslationHandler
	themeSelector   gotheme.ThemeSelector
	log             logr.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		log:             logr.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one header render. Steps are taken from the first
// non-empty source: Session, Steps, OpenAPI (Document or Source plus
// OperationID), then Profile.
type Request struct {
	Session *wizard.Session
	Steps   []wizard.Step

	Source      pkgopenapi.Source
	Document    *pkgopenapi.Document
	OperationID string

	Profile catalog.ProfileType

	// Title overrides the profile title.
	Title        string
	CurrentIndex int
	Busy         bool

	// WithBack and WithCancel decide whether the controls are present. OnBack
	// and OnCancel, when set, imply them.
	WithBack   bool
	WithCancel bool
	OnBack     func()
	OnCancel   func()

	Renderer      string
	Locale        string
	ThemeName     string
	ThemeVariant  string
	ChromeClasses *render.ChromeClasses
}

// Result carries the rendered bytes and the state they were rendered from.
type Result struct {
	Renderer    string
	ContentType string
	Body        []byte
	State       wizard.State
}

// Generate resolves steps, theme and translator and returns rendered output.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	res, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// Render is Generate with renderer metadata and the tracker state.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	input, err := o.Input(ctx, req)
	if err != nil {
		return Result{}, err
	}

	opts, err := o.RenderOptions(req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	state := wizard.Track(input)
	body, err := o.registry.Render(ctx, renderer.Name(), state, opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.log.V(1).Info("rendered wizard header",
		"renderer", renderer.Name(),
		"total", state.Total,
		"display", state.DisplayStep,
		"busy", state.Busy,
		"theme", req.ThemeName,
	)

	return Result{
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Body:        body,
		State:       state,
	}, nil
}

// Input resolves the tracker input for req without rendering.
func (o *Orchestrator) Input(ctx context.Context, req Request) (wizard.Input, error) {
	onBack := req.OnBack
	if onBack == nil && req.WithBack {
		onBack = func() {}
	}
	onCancel := req.OnCancel
	if onCancel == nil && req.WithCancel {
		onCancel = func() {}
	}

	title := req.Title
	if session := req.Session; session != nil {
		in := session.Input(title, onBack, onCancel)
		if strings.TrimSpace(title) == "" {
			in.Title = o.profileTitle(req)
		}
		return in, nil
	}

	steps, err := o.resolveSteps(ctx, req)
	if err != nil {
		return wizard.Input{}, err
	}
	if strings.TrimSpace(title) == "" {
		title = o.profileTitle(req)
	}

	return wizard.Input{
		Title:        title,
		Steps:        steps,
		CurrentIndex: req.CurrentIndex,
		Busy:         req.Busy,
		OnBack:       onBack,
		OnCancel:     onCancel,
	}, nil
}

// RenderOptions builds the per-request render options: locale, translator and
// the resolved theme.
func (o *Orchestrator) RenderOptions(req Request) (render.RenderOptions, error) {
	cfg, err := theme.Resolve(o.themeSelector, req.ThemeName, req.ThemeVariant)
	if err != nil {
		return render.RenderOptions{}, fmt.Errorf("orchestrator: %w", err)
	}
	return render.RenderOptions{
		Locale:        req.Locale,
		Translator:    o.translator,
		OnMissing:     o.onMissing,
		Theme:         cfg,
		ChromeClasses: req.ChromeClasses,
	}, nil
}

// Profiles exposes the configured listing profiles.
func (o *Orchestrator) Profiles() *catalog.Profiles {
	return o.profiles
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveSteps(ctx context.Context, req Request) ([]wizard.Step, error) {
	if len(req.Steps) > 0 {
		return req.Steps, nil
	}

	if req.OperationID != "" {
		doc, err := o.resolveDocument(ctx, req)
		if err != nil {
			return nil, err
		}
		steps, err := pkgopenapi.StepsFromOperation(ctx, o.parser, doc, req.OperationID)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: openapi steps: %w", err)
		}
		return steps, nil
	}

	if req.Profile != "" {
		steps, err := o.profiles.Steps(req.Profile)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		return steps, nil
	}

	return nil, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) profileTitle(req Request) string {
	if req.Profile == "" {
		return ""
	}
	profile, err := o.profiles.Profile(req.Profile)
	if err != nil {
		return ""
	}
	return render.LocalizeText(profile.TitleKey, profile.Title, render.RenderOptions{
		Locale:     req.Locale,
		Translator: o.translator,
		OnMissing:  o.onMissing,
	})
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.profiles == nil {
		o.profiles = catalog.DefaultProfiles()
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry returns a registry holding the vanilla, tui and json
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, tui.New(), jsonview.New()), nil
}

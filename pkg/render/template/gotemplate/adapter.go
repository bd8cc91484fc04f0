package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-listingwizard/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	templateFn map[string]any
	globalData map[string]any
	hooks      []gotemplatepkg.HookChainOption
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the template extension appended to names passed to
// RenderTemplate (default ".tpl").
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithTemplateFunc exposes helper functions to every template as globals.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		if cfg.templateFn == nil {
			cfg.templateFn = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFn[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithPreHooks runs hooks before each render. A hook may replace
// HookContext.Data; an error aborts the render.
func WithPreHooks(hooks ...gotemplatepkg.PreHook) Option {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, gotemplatepkg.WithPreHooksChain(hooks...))
	}
}

// WithPostHooks runs hooks over the rendered output, in registration order.
func WithPostHooks(hooks ...gotemplatepkg.PostHook) Option {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, gotemplatepkg.WithPostHooksChain(hooks...))
	}
}

// Engine implements template.TemplateRenderer on top of a pongo2 template set.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
	hooks     *gotemplatepkg.HookChain
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Either WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		set:       pongo2.NewSet("listingwizard", loaders...),
		templates: make(map[string]*pongo2.Template),
		ext:       cfg.extension,
		hooks:     gotemplatepkg.NewHookChain(cfg.hooks...),
	}
	registerDefaultFilters()

	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}
	if engine.set.Globals == nil {
		engine.set.Globals = make(pongo2.Context)
	}
	for name, fn := range cfg.templateFn {
		if name == "" || fn == nil {
			continue
		}
		if reflect.ValueOf(fn).Kind() != reflect.Func {
			return nil, fmt.Errorf("gotemplate: template func %q is not callable", name)
		}
		engine.set.Globals[name] = fn
	}

	return engine, nil
}

// RenderTemplate executes the named template file.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, name, data, out)
}

// RenderString parses and executes templateContent.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tmpl, "", data, out)
}

// RegisterFilter registers a pongo2 filter. Filters are process-global in
// pongo2, so registering an existing name fails.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	filtersMu.Lock()
	defer filtersMu.Unlock()
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the globals visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}
	ctx, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(ctx)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, name string, data any, out []io.Writer) (string, error) {
	label := name
	if label == "" {
		label = "string"
	}

	hc := &gotemplatepkg.HookContext{
		TemplateName: name,
		Data:         data,
		Metadata:     map[string]any{},
		IsPreHook:    true,
	}
	if err := e.hooks.ExecutePreHooks(hc); err != nil {
		return "", fmt.Errorf("gotemplate: pre hook %q: %w", label, err)
	}

	ctx, err := toContext(hc.Data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", label, err)
	}

	hc.Output = buf.String()
	hc.IsPreHook = false
	rendered, err := e.hooks.ExecutePostHooks(hc)
	if err != nil {
		return "", fmt.Errorf("gotemplate: post hook %q: %w", label, err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

// toContext normalises template data into plain maps, slices and scalars by
// round-tripping values through JSON. Functions are passed through untouched.
func toContext(data any) (pongo2.Context, error) {
	ctx := pongo2.Context{}
	switch v := data.(type) {
	case nil:
		return ctx, nil
	case pongo2.Context:
		return toContext(map[string]any(v))
	case map[string]any:
		for key, value := range v {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
				ctx[key] = value
				continue
			}
			plain, err := toPlain(value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			ctx[key] = plain
		}
		return ctx, nil
	default:
		plain, err := toPlain(v)
		if err != nil {
			return nil, err
		}
		m, ok := plain.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("template data must encode to an object, got %T", data)
		}
		return toContext(m)
	}
}

func toPlain(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// pongo2 keeps filters in a process-global map without locking, so every
// registration goes through filtersMu.
var (
	filtersMu      sync.Mutex
	defaultFilters sync.Once
)

func registerDefaultFilters() {
	defaultFilters.Do(func() {
		filtersMu.Lock()
		defer filtersMu.Unlock()
		if !pongo2.FilterExists("trim") {
			_ = pongo2.RegisterFilter("trim", filterTrim)
		}
		if !pongo2.FilterExists("percent") {
			_ = pongo2.RegisterFilter("percent", filterPercent)
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterPercent renders an integer as a CSS percentage ("50%").
func filterPercent(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(fmt.Sprintf("%d%%", in.Integer())), nil
}

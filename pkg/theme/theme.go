// Package theme resolves go-theme manifests into the renderer configuration
// consumed by the wizard renderers: merged design tokens, derived CSS custom
// properties, template partial overrides and an asset URL resolver.
package theme

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is returned when a selector has no manifest for the
// requested theme.
var ErrThemeNotFound = errors.New("theme: not found")

// DefaultPartials are the header template partials used when a theme does not
// override them.
func DefaultPartials() map[string]string {
	return map[string]string{
		"wizard.header":   "templates/header.tmpl",
		"wizard.progress": "templates/progress.tmpl",
		"wizard.actions":  "templates/actions.tmpl",
	}
}

// ManifestSelector is an in-memory gotheme.ThemeSelector over registered
// manifests. Empty names fall back to the selector defaults.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector creates a selector using defaultTheme/defaultVariant when
// Select receives empty values.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*gotheme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{
		manifests:      make(map[string]*gotheme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds manifest keyed by its Name.
func (s *ManifestSelector) Register(manifest *gotheme.Manifest) error {
	if manifest == nil {
		return errors.New("theme: manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("theme: manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("theme: manifest %q already registered", name)
	}
	s.manifests[name] = manifest
	return nil
}

// Select implements gotheme.ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: variant %q of %q", ErrThemeNotFound, variant, name)
		}
	}
	return &gotheme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Resolve asks selector for name/variant and converts the selection into a
// renderer configuration. A nil selector yields a nil configuration.
func Resolve(selector gotheme.ThemeSelector, name, variant string) (*gotheme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return RendererConfig(selection), nil
}

// RendererConfig merges the base manifest with the selected variant.
func RendererConfig(selection *gotheme.Selection) *gotheme.RendererConfig {
	manifest := selection.Manifest

	tokens := mergeMaps(nil, manifest.Tokens)
	partials := mergeMaps(DefaultPartials(), manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := mergeMaps(nil, manifest.Assets.Files)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeMaps(tokens, variant.Tokens)
		partials = mergeMaps(partials, variant.Templates)
		files = mergeMaps(files, variant.Assets.Files)
		if strings.TrimSpace(variant.Assets.Prefix) != "" {
			prefix = variant.Assets.Prefix
		}
	}

	return &gotheme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  CSSVars(tokens),
		Partials: partials,
		AssetURL: assetResolver(prefix, files),
	}
}

// CSSVars maps design tokens to CSS custom properties ("brand" -> "--brand").
// Dots in token names become dashes.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.ReplaceAll(strings.TrimSpace(key), ".", "-")
		if name == "" {
			continue
		}
		out["--"+name] = value
	}
	return out
}

// InlineStyle renders CSS variables as a deterministic style attribute value.
func InlineStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
			return file
		}
		if strings.Contains(prefix, "://") {
			return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
		}
		return path.Join(prefix, file)
	}
}

func mergeMaps(base, overrides map[string]string) map[string]string {
	if len(base) == 0 && len(overrides) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overrides {
		if strings.TrimSpace(value) == "" {
			continue
		}
		out[key] = value
	}
	return out
}

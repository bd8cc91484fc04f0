package render

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

// Registry stores renderers by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates a registry, optionally pre-populated with renderers.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer, len(renderers)),
	}
	for _, renderer := range renderers {
		r.MustRegister(renderer)
	}
	return r
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}

// Render localizes state and hands it to the renderer registered as name.
// The caller's state is left untouched.
func (r *Registry) Render(ctx context.Context, name string, state wizard.State, opts RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderer, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	Localize(&state, opts)
	out, err := renderer.Render(ctx, state, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", name, err)
	}
	return out, nil
}

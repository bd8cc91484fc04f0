package render

import (
	"context"

	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

// Renderer converts a wizard render description into a byte representation
// (HTML, terminal text, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, state wizard.State, options RenderOptions) ([]byte, error)
}

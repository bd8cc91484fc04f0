package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/goliatone/go-listingwizard/pkg/render"
)

// Glyphs are the characters used to draw the progress bar and controls.
type Glyphs struct {
	Filled string
	Empty  string
	Back   string
	Cancel string
}

// DefaultGlyphs draws a block progress bar.
func DefaultGlyphs() Glyphs {
	return Glyphs{Filled: "█", Empty: "░", Back: "←", Cancel: "✕"}
}

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithStyleRenderer binds styles to a specific lipgloss renderer, which
// decides the color profile. Defaults to lipgloss.DefaultRenderer().
func WithStyleRenderer(r *lipgloss.Renderer) Option {
	return func(tr *Renderer) {
		if r != nil {
			tr.styles = r
		}
	}
}

// WithBarWidth sets the number of cells used by the progress bar.
func WithBarWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.barWidth = width
		}
	}
}

// WithGlyphs overrides the drawing characters.
func WithGlyphs(glyphs Glyphs) Option {
	return func(r *Renderer) {
		r.glyphs = glyphs
	}
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithPromptDriver overrides the prompt driver used by the navigator.
func WithPromptDriver(driver PromptDriver) NavigatorOption {
	return func(n *Navigator) {
		if driver != nil {
			n.driver = driver
		}
	}
}

// WithRenderer overrides the header renderer.
func WithRenderer(renderer *Renderer) NavigatorOption {
	return func(n *Navigator) {
		if renderer != nil {
			n.renderer = renderer
		}
	}
}

// WithRenderOptions supplies locale, translator and theme for headers and
// prompt labels.
func WithRenderOptions(opts render.RenderOptions) NavigatorOption {
	return func(n *Navigator) {
		n.renderOpts = opts
	}
}

// WithSaver installs a hook that persists step values before advancing. The
// session is busy while it runs.
func WithSaver(fn Saver) NavigatorOption {
	return func(n *Navigator) {
		n.saver = fn
	}
}

// WithLogger routes navigation logs to logger.
func WithLogger(logger logr.Logger) NavigatorOption {
	return func(n *Navigator) {
		n.log = logger
	}
}

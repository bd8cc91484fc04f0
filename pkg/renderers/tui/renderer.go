// Package tui renders the wizard header for terminals and drives a wizard
// session interactively through a PromptDriver.
package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

const (
	defaultBarWidth = 20

	savingLabelKey     = "wizard.saving"
	defaultSavingLabel = "Saving…"

	defaultBrand = "#2563eb"
	defaultMuted = "#6b7280"
)

// Renderer implements render.Renderer for terminals using lipgloss styles.
// Theme tokens "brand" and "text.muted" recolor the output.
type Renderer struct {
	styles   *lipgloss.Renderer
	barWidth int
	glyphs   Glyphs
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer with defaults.
func New(options ...Option) *Renderer {
	r := &Renderer{
		styles:   lipgloss.DefaultRenderer(),
		barWidth: defaultBarWidth,
		glyphs:   DefaultGlyphs(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws the title line, progress bar and control hints.
func (r *Renderer) Render(ctx context.Context, state wizard.State, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(r.View(state, opts)), nil
}

// View returns the rendered header as a string.
func (r *Renderer) View(state wizard.State, opts render.RenderOptions) string {
	brand, muted := r.palette(opts)
	title := r.styles.NewStyle().Bold(true)
	counter := r.styles.NewStyle().Foreground(muted)

	var lines []string

	head := title.Render(strings.TrimSpace(state.Title))
	if state.Counter.Visible {
		head += "  " + counter.Render(state.Counter.Text)
	}
	lines = append(lines, head)

	if state.Step != nil && strings.TrimSpace(state.Step.Title) != "" {
		lines = append(lines, counter.Render(strings.TrimSpace(state.Step.Title)))
	}

	if state.Progress.Visible {
		lines = append(lines, r.bar(state.Progress.Percent, brand, muted))
	}

	if actions := r.actions(state, opts, muted); actions != "" {
		lines = append(lines, actions)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (r *Renderer) bar(percent int, brand, muted lipgloss.TerminalColor) string {
	percent = min(max(percent, 0), 100)
	filled := int(math.Round(float64(percent) * float64(r.barWidth) / 100))
	fill := r.styles.NewStyle().Foreground(brand).Render(strings.Repeat(r.glyphs.Filled, filled))
	rest := r.styles.NewStyle().Foreground(muted).Render(strings.Repeat(r.glyphs.Empty, r.barWidth-filled))
	return fmt.Sprintf("%s%s %3d%%", fill, rest, percent)
}

func (r *Renderer) actions(state wizard.State, opts render.RenderOptions, muted lipgloss.TerminalColor) string {
	enabled := r.styles.NewStyle().Underline(true)
	disabled := r.styles.NewStyle().Faint(true).Foreground(muted)

	var parts []string
	for _, item := range []struct {
		control wizard.Control
		glyph   string
	}{
		{state.Back, r.glyphs.Back},
		{state.Cancel, r.glyphs.Cancel},
	} {
		if !item.control.Visible {
			continue
		}
		label := item.glyph + " " + item.control.Label
		if item.control.Disabled {
			parts = append(parts, disabled.Render(label))
			continue
		}
		parts = append(parts, enabled.Render(label))
	}
	if state.Busy {
		parts = append(parts, disabled.Render(render.LocalizeText(savingLabelKey, defaultSavingLabel, opts)))
	}
	return strings.Join(parts, "   ")
}

func (r *Renderer) palette(opts render.RenderOptions) (lipgloss.TerminalColor, lipgloss.TerminalColor) {
	brand, muted := defaultBrand, defaultMuted
	if opts.Theme != nil {
		if v := strings.TrimSpace(opts.Theme.Tokens["brand"]); v != "" {
			brand = v
		}
		if v := strings.TrimSpace(opts.Theme.Tokens["text.muted"]); v != "" {
			muted = v
		}
	}
	return lipgloss.Color(brand), lipgloss.Color(muted)
}

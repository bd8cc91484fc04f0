package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-listingwizard/pkg/i18n"
	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/renderers/tui"
	"github.com/goliatone/go-listingwizard/pkg/testsupport"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

func plainRenderer(opts ...tui.Option) *tui.Renderer {
	base := []tui.Option{tui.WithStyleRenderer(lipgloss.NewRenderer(io.Discard))}
	return tui.New(append(base, opts...)...)
}

func TestRenderer_Metadata(t *testing.T) {
	r := plainRenderer()
	if r.Name() != "tui" {
		t.Fatalf("unexpected name %q", r.Name())
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderer_HeaderLines(t *testing.T) {
	state := wizard.Track(wizard.Input{
		Title:        "Create listing",
		Steps:        testsupport.SampleSteps(),
		CurrentIndex: 1,
		OnBack:       func() {},
		OnCancel:     func() {},
	})

	out, err := plainRenderer(tui.WithBarWidth(10)).Render(testsupport.Context(), state, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)

	for _, fragment := range []string{
		"Create listing  2/4",
		"Details",
		"█████░░░░░  50%",
		"← Back",
		"✕ Cancel",
	} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, text)
		}
	}
	if strings.Contains(text, "Saving") {
		t.Fatalf("idle header must not show saving:\n%s", text)
	}
}

func TestRenderer_SingleStepAndEmpty(t *testing.T) {
	r := plainRenderer()

	single := r.View(wizard.Track(wizard.Input{Title: "Edit", Steps: testsupport.SampleSteps()[:1]}), render.RenderOptions{})
	if !strings.Contains(single, "Edit  1/1") {
		t.Fatalf("expected counter for single step:\n%s", single)
	}
	if strings.Contains(single, "%") {
		t.Fatalf("single step must not draw progress:\n%s", single)
	}

	empty := r.View(wizard.Track(wizard.Input{Title: "Edit"}), render.RenderOptions{})
	if strings.Contains(empty, "/") {
		t.Fatalf("empty wizard must not draw a counter:\n%s", empty)
	}
}

func TestRenderer_BusyShowsSaving(t *testing.T) {
	state := wizard.Track(wizard.Input{
		Title:    "Crear anuncio",
		Steps:    testsupport.SampleSteps(),
		Busy:     true,
		OnCancel: func() {},
	})
	opts := render.RenderOptions{Locale: "es", Translator: i18n.Default()}
	render.Localize(&state, opts)

	text := plainRenderer().View(state, opts)
	if !strings.Contains(text, "✕ Cancelar") || !strings.Contains(text, "Guardando…") {
		t.Fatalf("expected disabled cancel and saving hint:\n%s", text)
	}
	if strings.Contains(text, "←") {
		t.Fatalf("back control must be absent without callback:\n%s", text)
	}
}

func TestRenderer_ThemeTokensAccepted(t *testing.T) {
	cfg := &gotheme.RendererConfig{Tokens: map[string]string{"brand": "#ff0000", "text.muted": "#00ff00"}}
	state := wizard.Track(wizard.Input{Title: "Create listing", Steps: testsupport.SampleSteps()})

	text := plainRenderer(tui.WithGlyphs(tui.Glyphs{Filled: "#", Empty: "."})).View(state, render.RenderOptions{Theme: cfg})
	if !strings.Contains(text, "#####...............  25%") {
		t.Fatalf("unexpected bar:\n%s", text)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := plainRenderer().Render(ctx, wizard.State{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

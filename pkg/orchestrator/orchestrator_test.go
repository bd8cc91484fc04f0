package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	gotheme "github.com/goliatone/go-theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-listingwizard/pkg/catalog"
	"github.com/goliatone/go-listingwizard/pkg/i18n"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
	"github.com/goliatone/go-listingwizard/pkg/orchestrator"
	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/testsupport"
	"github.com/goliatone/go-listingwizard/pkg/theme"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

type captureRenderer struct {
	state   wizard.State
	options render.RenderOptions
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }
func (c *captureRenderer) Render(_ context.Context, state wizard.State, opts render.RenderOptions) ([]byte, error) {
	c.state = state
	c.options = opts
	return []byte("ok"), nil
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc
}

func TestGenerate_ProfileSteps(t *testing.T) {
	orch := orchestrator.New()

	body, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Profile:      catalog.ProfileIndividual,
		CurrentIndex: 1,
		WithBack:     true,
		Renderer:     "json",
	})
	require.NoError(t, err)

	doc := decode(t, body)
	assert.Equal(t, "Create listing", doc["title"])
	assert.EqualValues(t, 5, doc["total"])
	assert.Equal(t, "2/5", doc["counter"].(map[string]any)["text"])
	assert.Equal(t, true, doc["back"].(map[string]any)["visible"])
	assert.Equal(t, false, doc["cancel"].(map[string]any)["visible"])
}

func TestGenerate_LocalizesProfileTitleAndControls(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithTranslator(i18n.Default()))

	res, err := orch.Render(testsupport.Context(), orchestrator.Request{
		Profile:    catalog.ProfileIndividual,
		WithBack:   true,
		WithCancel: true,
		Locale:     "es-MX",
		Renderer:   "json",
	})
	require.NoError(t, err)

	doc := decode(t, res.Body)
	assert.Equal(t, "Crear anuncio", doc["title"])
	assert.Equal(t, "Atrás", doc["back"].(map[string]any)["label"])
	assert.Equal(t, "Cancelar", doc["cancel"].(map[string]any)["label"])
	assert.Equal(t, "Inmueble", doc["step"].(map[string]any)["title"])
	assert.Equal(t, "application/json", res.ContentType)
	assert.Equal(t, "Back", res.State.Back.Label, "result state is the tracker output before localization")
}

func TestGenerate_DefaultRendererIsHTML(t *testing.T) {
	res, err := orchestrator.New().Render(testsupport.Context(), orchestrator.Request{
		Title: "Quick listing",
		Steps: testsupport.SampleSteps(),
	})
	require.NoError(t, err)

	assert.Equal(t, "vanilla", res.Renderer)
	assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
	assert.Contains(t, string(res.Body), "<h1>Quick listing</h1>")
}

func TestGenerate_PassesThemeConfigToRenderer(t *testing.T) {
	selector, err := theme.NewManifestSelector("acme", "", &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Variants: map[string]gotheme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#654321"}},
		},
	})
	require.NoError(t, err)

	capture := &captureRenderer{}
	orch := orchestrator.New(
		orchestrator.WithRegistry(render.NewRegistry(capture)),
		orchestrator.WithDefaultRenderer(capture.Name()),
		orchestrator.WithThemeSelector(selector),
	)

	_, err = orch.Generate(testsupport.Context(), orchestrator.Request{
		Steps:        testsupport.SampleSteps(),
		ThemeVariant: "dark",
	})
	require.NoError(t, err)

	cfg := capture.options.Theme
	require.NotNil(t, cfg)
	assert.Equal(t, "acme", cfg.Theme)
	assert.Equal(t, "dark", cfg.Variant)
	assert.Equal(t, "#654321", cfg.CSSVars["--brand"])
	assert.NotNil(t, cfg.AssetURL)

	_, err = orch.Generate(testsupport.Context(), orchestrator.Request{ThemeName: "missing"})
	assert.True(t, errors.Is(err, theme.ErrThemeNotFound))
}

func TestGenerate_StepsFromOpenAPI(t *testing.T) {
	orch := orchestrator.New()

	body, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Source:       pkgopenapi.SourceFromFile(filepath.Join("testdata", "listing.yaml")),
		OperationID:  "createListing",
		Title:        "New listing",
		CurrentIndex: 2,
		Renderer:     "json",
	})
	require.NoError(t, err)

	doc := decode(t, body)
	assert.Equal(t, "3/3", doc["counter"].(map[string]any)["text"])
	assert.Equal(t, "pricing", doc["step"].(map[string]any)["id"])
	assert.Equal(t, []any{"price", "currency"}, doc["step"].(map[string]any)["required"])
}

func TestGenerate_FromSession(t *testing.T) {
	session := wizard.NewSession(testsupport.SampleSteps(), wizard.WithStartIndex(2))
	session.SetBusy(true)

	capture := &captureRenderer{}
	orch := orchestrator.New(orchestrator.WithRegistry(render.NewRegistry(capture)))

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Session:  session,
		Title:    "Create listing",
		OnCancel: func() {},
		Renderer: capture.Name(),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, capture.state.DisplayStep)
	assert.True(t, capture.state.Busy)
	assert.True(t, capture.state.Cancel.Disabled)
	assert.False(t, capture.state.Back.Visible)
}

func TestGenerate_Errors(t *testing.T) {
	orch := orchestrator.New()
	ctx := testsupport.Context()

	_, err := orch.Generate(ctx, orchestrator.Request{Profile: "landlord"})
	assert.True(t, errors.Is(err, catalog.ErrUnknownProfile))

	_, err = orch.Generate(ctx, orchestrator.Request{Steps: testsupport.SampleSteps(), Renderer: "pdf"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `renderer "pdf"`))

	_, err = orch.Generate(ctx, orchestrator.Request{OperationID: "createListing"})
	require.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = orch.Generate(cancelled, orchestrator.Request{Steps: testsupport.SampleSteps()})
	assert.True(t, errors.Is(err, context.Canceled))
}

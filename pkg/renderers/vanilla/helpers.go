package vanilla

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/theme"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

const (
	partialHeader   = "wizard.header"
	partialProgress = "wizard.progress"
	partialActions  = "wizard.actions"

	progressLabelKey     = "wizard.progress"
	defaultProgressLabel = "Step %d of %d"
)

// textPolicy strips every tag; titles are plain text.
var textPolicy = bluemonday.StrictPolicy()

type view struct {
	Title     string        `json:"title"`
	StepTitle string        `json:"step_title"`
	StepID    string        `json:"step_id"`
	Locale    string        `json:"locale"`
	Busy      bool          `json:"busy"`
	Style     string        `json:"style"`
	Theme     string        `json:"theme"`
	Variant   string        `json:"variant"`
	Sheet     string        `json:"stylesheet"`
	Classes   chromeClasses `json:"classes"`
	Counter   counterView   `json:"counter"`
	Progress  progressView  `json:"progress"`
	Back      controlView   `json:"back"`
	Cancel    controlView   `json:"cancel"`
}

type counterView struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
}

type progressView struct {
	Visible bool   `json:"visible"`
	Value   string `json:"value"`
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

type controlView struct {
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	Label    string `json:"label"`
}

func buildView(state wizard.State, opts render.RenderOptions) view {
	v := view{
		Title:   textPolicy.Sanitize(strings.TrimSpace(state.Title)),
		Locale:  opts.Locale,
		Busy:    state.Busy,
		Classes: resolveChromeClasses(opts.ChromeClasses),
		Counter: counterView{Visible: state.Counter.Visible, Text: state.Counter.Text},
		Back:    newControlView(state.Back),
		Cancel:  newControlView(state.Cancel),
	}

	if state.Step != nil {
		v.StepID = state.Step.ID
		v.StepTitle = textPolicy.Sanitize(strings.TrimSpace(state.Step.Title))
	}

	if state.Progress.Visible {
		v.Progress = progressView{
			Visible: true,
			Value:   strconv.Itoa(state.Progress.Percent),
			Percent: state.Progress.Percent,
			Label:   progressLabel(state, opts),
		}
	}

	if cfg := opts.Theme; cfg != nil {
		v.Theme = cfg.Theme
		v.Variant = cfg.Variant
		v.Style = theme.InlineStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			v.Sheet = cfg.AssetURL(StylesheetAssetKey)
		}
	}
	return v
}

func newControlView(control wizard.Control) controlView {
	if !control.Visible {
		return controlView{}
	}
	return controlView{
		Visible:  true,
		Disabled: control.Disabled,
		Label:    textPolicy.Sanitize(control.Label),
	}
}

func progressLabel(state wizard.State, opts render.RenderOptions) string {
	if opts.Translator != nil {
		if msg, err := opts.Translator.Translate(opts.Locale, progressLabelKey, state.DisplayStep, state.Total); err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return fmt.Sprintf(defaultProgressLabel, state.DisplayStep, state.Total)
}

func partialPath(opts render.RenderOptions, key string) string {
	if opts.Theme != nil {
		if path := strings.TrimSpace(opts.Theme.Partials[key]); path != "" {
			return path
		}
	}
	return theme.DefaultPartials()[key]
}

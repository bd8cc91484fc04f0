package render

import (
	"strings"

	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

// Localize mutates state in place, translating control labels and the current
// step title through opts.Translator.
//
// This is best-effort: translation failures are routed through opts.OnMissing
// and the labels already on the state act as fallbacks.
func Localize(state *wizard.State, opts RenderOptions) {
	if state == nil {
		return
	}
	if opts.Translator == nil && opts.OnMissing == nil {
		return
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	localizeControl(&state.Back, opts.Locale, opts.Translator, onMissing)
	localizeControl(&state.Cancel, opts.Locale, opts.Translator, onMissing)

	if state.Step != nil {
		step := *state.Step
		if key := strings.TrimSpace(step.TitleKey); key != "" {
			step.Title = translate(opts.Locale, key, strings.TrimSpace(step.Title), opts.Translator, onMissing)
		}
		state.Step = &step
	}
}

// LocalizeText translates a single key using the options' translator and
// missing handler, returning fallback when nothing better is available.
func LocalizeText(key, fallback string, opts RenderOptions) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return translate(opts.Locale, key, fallback, opts.Translator, onMissing)
}

func localizeControl(control *wizard.Control, locale string, t Translator, onMissing MissingTranslationHandler) {
	if control == nil || !control.Visible {
		return
	}
	if key := strings.TrimSpace(control.LabelKey); key != "" {
		control.Label = translate(locale, key, strings.TrimSpace(control.Label), t, onMissing)
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

package render

import (
	"fmt"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// LocaleKey selects the key used to infer locale from template data when
	// callers pass a map instead of a raw string.
	LocaleKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers suitable for injecting into the template
// engine (see gotemplate.WithTemplateFunc).
//
// The helpers are:
//
//	translate(localeSrc, key, ...args) string
//	translate_default(localeSrc, key, fallback) string
//	current_locale(localeSrc) string
//
// Where localeSrc is either a locale string (e.g. "en-US") or a map holding
// the locale under cfg.LocaleKey.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}

	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	return map[string]any{
		translateName: func(localeSrc any, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			locale := resolveLocale(localeSrc, localeKey)
			if t == nil {
				return onMissing(locale, key, params, ErrMissingTranslator)
			}
			msg, err := t.Translate(locale, key, params...)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(locale, key, params, err)
			}
			return msg
		},
		translateName + "_default": func(localeSrc any, key, fallback string) string {
			return translate(resolveLocale(localeSrc, localeKey), key, fallback, t, onMissing)
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return data
	case map[string]string:
		return data[key]
	case map[string]any:
		v, ok := data[key]
		if !ok || v == nil {
			return ""
		}
		if str, ok := v.(string); ok {
			return str
		}
		return strings.TrimSpace(fmt.Sprint(v))
	default:
		return ""
	}
}

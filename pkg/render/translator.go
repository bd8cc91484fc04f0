package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key needs
// translating but no Translator was configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves a localization key for locale. Implementations return an
// error (or an empty string) when the key is unknown.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler returns the string to use when key could not be
// translated. args carries the translation arguments; the first element is a
// map with a "default" entry when a fallback exists.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if fallback := defaultFromArgs(args); fallback != "" {
		return fallback
	}
	return key
}

func defaultFromArgs(args []any) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return ""
}

package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the tracker state.
type RenderOptions struct {
	// Locale selects the language passed to Translator.
	Locale string
	// Translator resolves control labels and step titles. When nil the default
	// English labels carried by the state are kept.
	Translator Translator
	// OnMissing decides the string used when a key cannot be translated.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved go-theme configuration (tokens, CSS vars,
	// asset resolver) for the active theme/variant.
	Theme *theme.RendererConfig
	// ChromeClasses overrides the CSS classes emitted by HTML renderers.
	ChromeClasses *ChromeClasses
}

// ChromeClasses lists overridable CSS classes for header chrome. Empty fields
// keep the renderer defaults.
type ChromeClasses struct {
	Header   string
	Title    string
	Counter  string
	Progress string
	Actions  string
}

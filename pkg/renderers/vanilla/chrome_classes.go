package vanilla

import (
	"strings"

	"github.com/goliatone/go-listingwizard/pkg/render"
)

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassHeader   ChromeClass = "lw-header"
	ClassTitle    ChromeClass = "lw-title"
	ClassCounter  ChromeClass = "lw-counter"
	ClassProgress ChromeClass = "lw-progress"
	ClassActions  ChromeClass = "lw-actions"
)

// Default*Class values are applied when RenderOptions.ChromeClasses overrides are empty.
const (
	DefaultHeaderClass   = string(ClassHeader)
	DefaultTitleClass    = string(ClassTitle)
	DefaultCounterClass  = string(ClassCounter)
	DefaultProgressClass = string(ClassProgress)
	DefaultActionsClass  = string(ClassActions)
)

type chromeClasses struct {
	Header   string `json:"header"`
	Title    string `json:"title"`
	Counter  string `json:"counter"`
	Progress string `json:"progress"`
	Actions  string `json:"actions"`
}

func resolveChromeClasses(overrides *render.ChromeClasses) chromeClasses {
	out := chromeClasses{
		Header:   DefaultHeaderClass,
		Title:    DefaultTitleClass,
		Counter:  DefaultCounterClass,
		Progress: DefaultProgressClass,
		Actions:  DefaultActionsClass,
	}
	if overrides == nil {
		return out
	}
	out.Header = pickClass(overrides.Header, out.Header)
	out.Title = pickClass(overrides.Title, out.Title)
	out.Counter = pickClass(overrides.Counter, out.Counter)
	out.Progress = pickClass(overrides.Progress, out.Progress)
	out.Actions = pickClass(overrides.Actions, out.Actions)
	return out
}

func pickClass(override, fallback string) string {
	if cleaned := sanitizeClassList(override); cleaned != "" {
		return cleaned
	}
	return fallback
}

// sanitizeClassList drops tokens that are not valid class names so overrides
// cannot break out of the attribute.
func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsAny(token, `"'<>=`) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

package wizard

import "strings"

// Step describes one page of the wizard. ID is opaque to the tracker; the
// remaining fields are display metadata plus the optional validation
// requirement expressed as the field names that must carry a value before the
// session advances past the step.
type Step struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	TitleKey    string   `json:"titleKey,omitempty" yaml:"titleKey,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required    []string `json:"required,omitempty" yaml:"required,omitempty"`
}

// HasRequirements reports whether the step declares required fields.
func (s Step) HasRequirements() bool {
	return len(s.Required) > 0
}

// Missing returns the required field names without a usable value in values,
// preserving declaration order. Nil values, blank strings and empty slices or
// maps count as missing.
func (s Step) Missing(values map[string]any) []string {
	if len(s.Required) == 0 {
		return nil
	}
	var missing []string
	for _, name := range s.Required {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !hasValue(values[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

func hasValue(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(typed) != ""
	case []any:
		return len(typed) > 0
	case []string:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	default:
		return true
	}
}

func cloneSteps(steps []Step) []Step {
	if len(steps) == 0 {
		return nil
	}
	out := make([]Step, len(steps))
	for i, step := range steps {
		out[i] = step
		if len(step.Required) > 0 {
			out[i].Required = append([]string(nil), step.Required...)
		}
	}
	return out
}

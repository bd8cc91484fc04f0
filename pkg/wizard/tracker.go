package wizard

import (
	"math"
	"slices"
	"strconv"
)

const (
	// BackLabelKey is the localization key for the back control label.
	BackLabelKey = "wizard.back"
	// CancelLabelKey is the localization key for the cancel control label.
	CancelLabelKey = "wizard.cancel"

	defaultBackLabel   = "Back"
	defaultCancelLabel = "Cancel"
)

// Input carries the construction parameters of the step tracker. OnBack and
// OnCancel are optional; a nil callback removes the corresponding control.
type Input struct {
	Title        string
	Steps        []Step
	CurrentIndex int
	Busy         bool
	OnBack       func()
	OnCancel     func()
}

// State is the render description produced by Track.
type State struct {
	Title       string   `json:"title"`
	Total       int      `json:"total"`
	DisplayStep int      `json:"displayStep"`
	Step        *Step    `json:"step,omitempty"`
	Counter     Counter  `json:"counter"`
	Progress    Progress `json:"progress"`
	Back        Control  `json:"back"`
	Cancel      Control  `json:"cancel"`
	Busy        bool     `json:"busy"`
}

// Counter is the "current/total" step indicator.
type Counter struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text,omitempty"`
}

// Progress is the fill bar shown for wizards with more than one step.
type Progress struct {
	Visible bool `json:"visible"`
	Percent int  `json:"percent"`
}

// Control is a navigation affordance. A disabled control still renders its
// label but Invoke never dispatches.
type Control struct {
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	LabelKey string `json:"labelKey,omitempty"`
	Label    string `json:"label,omitempty"`

	action func()
}

// Invoke runs the control's callback when the control is present and enabled,
// reporting whether a callback was dispatched.
func (c Control) Invoke() bool {
	if !c.Visible || c.Disabled || c.action == nil {
		return false
	}
	c.action()
	return true
}

// Track computes the display state of the wizard header. It never fails:
// out-of-range indexes are clamped for display and a nil step list is treated
// as empty.
func Track(in Input) State {
	total := len(in.Steps)
	display := DisplayStep(in.CurrentIndex, total)

	state := State{
		Title:       in.Title,
		Total:       total,
		DisplayStep: display,
		Busy:        in.Busy,
	}

	if display > 0 {
		step := in.Steps[display-1]
		step.Required = slices.Clone(step.Required)
		state.Step = &step
	}

	if total > 0 {
		state.Counter = Counter{
			Visible: true,
			Text:    strconv.Itoa(display) + "/" + strconv.Itoa(total),
		}
	}

	if total > 1 {
		state.Progress = Progress{
			Visible: true,
			Percent: Percent(display, total),
		}
	}

	state.Back = newControl(in.OnBack, in.Busy, BackLabelKey, defaultBackLabel)
	state.Cancel = newControl(in.OnCancel, in.Busy, CancelLabelKey, defaultCancelLabel)

	return state
}

// DisplayStep returns the 1-based step number shown for index, never exceeding
// total and never dropping below zero.
func DisplayStep(index, total int) int {
	if total <= 0 {
		return 0
	}
	display := min(index+1, total)
	return max(display, 0)
}

// Percent returns round(display/total*100), or zero when total is not
// positive.
func Percent(display, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(display) / float64(total) * 100))
}

func newControl(action func(), busy bool, key, label string) Control {
	if action == nil {
		return Control{}
	}
	return Control{
		Visible:  true,
		Disabled: busy,
		LabelKey: key,
		Label:    label,
		action:   action,
	}
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/go-logr/logr"

	"github.com/goliatone/go-listingwizard/pkg/render"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

const (
	nextLabelKey          = "wizard.next"
	finishLabelKey        = "wizard.finish"
	actionLabelKey        = "wizard.action"
	cancelConfirmLabelKey = "wizard.cancel.confirm"
)

// Saver persists the values collected for step. Returning an error keeps the
// session on the step.
type Saver func(ctx context.Context, step wizard.Step, values map[string]any) error

// Result is the outcome of an interactive run.
type Result struct {
	Status wizard.Status
	Values map[string]any
}

// Navigator walks a wizard.Session in the terminal: it prints the header,
// prompts for the current step's required fields and asks which control to
// trigger next.
type Navigator struct {
	driver     PromptDriver
	renderer   *Renderer
	renderOpts render.RenderOptions
	saver      Saver
	log        logr.Logger
}

// NewNavigator builds a navigator backed by survey prompts unless
// WithPromptDriver says otherwise.
func NewNavigator(options ...NavigatorOption) *Navigator {
	n := &Navigator{log: logr.Discard()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(n)
	}
	if n.driver == nil {
		n.driver = NewSurveyDriver(nil)
	}
	if n.renderer == nil {
		n.renderer = New()
	}
	return n
}

type menuAction int

const (
	menuPrimary menuAction = iota
	menuBack
	menuCancel
)

// Run drives session until it is completed or cancelled. Prompt errors,
// including ErrAborted, end the run.
func (n *Navigator) Run(ctx context.Context, session *wizard.Session, title string) (Result, error) {
	values := make(map[string]any)
	if len(session.Steps()) == 0 {
		return Result{Status: session.Status()}, wizard.ErrNoSteps
	}

	for session.Status() == wizard.StatusActive {
		if err := ctx.Err(); err != nil {
			return n.result(session, values), err
		}

		var opErr error
		var onBack func()
		if session.Index() > 0 {
			onBack = func() { opErr = session.Back() }
		}
		onCancel := func() { opErr = session.Cancel() }

		state := session.State(title, onBack, onCancel)
		render.Localize(&state, n.renderOpts)
		if err := n.driver.Info(ctx, n.renderer.View(state, n.renderOpts)); err != nil {
			return n.result(session, values), err
		}

		step := *state.Step
		if err := n.collect(ctx, step, values); err != nil {
			return n.result(session, values), err
		}

		last := session.Index() == state.Total-1
		actions, labels := n.menu(state, last)
		choice, err := n.driver.Select(ctx, SelectConfig{
			Message: render.LocalizeText(actionLabelKey, "What next?", n.renderOpts),
			Options: labels,
		})
		if err != nil {
			return n.result(session, values), err
		}
		if choice < 0 || choice >= len(actions) {
			return n.result(session, values), fmt.Errorf("%w: %d", ErrUnknownAction, choice)
		}

		switch actions[choice] {
		case menuPrimary:
			opErr = n.advance(ctx, session, step, values, last)
		case menuBack:
			state.Back.Invoke()
		case menuCancel:
			ok, err := n.driver.Confirm(ctx, ConfirmConfig{
				Message: render.LocalizeText(cancelConfirmLabelKey, "Discard this listing?", n.renderOpts),
			})
			if err != nil {
				return n.result(session, values), err
			}
			if ok {
				state.Cancel.Invoke()
			}
		}

		if opErr != nil {
			if err := n.report(ctx, step, opErr); err != nil {
				return n.result(session, values), err
			}
		}
	}

	return n.result(session, values), nil
}

func (n *Navigator) collect(ctx context.Context, step wizard.Step, values map[string]any) error {
	for _, field := range step.Required {
		current := ""
		if v, ok := values[field]; ok && v != nil {
			current = fmt.Sprint(v)
		}
		answer, err := n.driver.Input(ctx, InputConfig{
			Message:   field,
			Default:   current,
			Validator: requireText,
		})
		if err != nil {
			return err
		}
		values[field] = strings.TrimSpace(answer)
	}
	return nil
}

func (n *Navigator) menu(state wizard.State, last bool) ([]menuAction, []string) {
	primary := render.LocalizeText(nextLabelKey, "Next", n.renderOpts)
	if last {
		primary = render.LocalizeText(finishLabelKey, "Finish", n.renderOpts)
	}
	actions := []menuAction{menuPrimary}
	labels := []string{primary}
	if state.Back.Visible {
		actions = append(actions, menuBack)
		labels = append(labels, state.Back.Label)
	}
	if state.Cancel.Visible {
		actions = append(actions, menuCancel)
		labels = append(labels, state.Cancel.Label)
	}
	return actions, labels
}

func (n *Navigator) advance(ctx context.Context, session *wizard.Session, step wizard.Step, values map[string]any, last bool) error {
	if missing := step.Missing(values); len(missing) > 0 {
		return &wizard.IncompleteStepError{StepID: step.ID, Missing: missing}
	}

	if n.saver != nil {
		session.SetBusy(true)
		_ = n.driver.Info(ctx, render.LocalizeText(savingLabelKey, defaultSavingLabel, n.renderOpts))
		err := n.saver(ctx, step, maps.Clone(values))
		session.SetBusy(false)
		if err != nil {
			return fmt.Errorf("tui: save step %q: %w", step.ID, err)
		}
		n.log.V(1).Info("step saved", "step", step.ID)
	}

	if last {
		return session.Complete(values)
	}
	return session.Next(values)
}

func (n *Navigator) report(ctx context.Context, step wizard.Step, err error) error {
	var incomplete *wizard.IncompleteStepError
	switch {
	case errors.As(err, &incomplete):
		n.log.V(1).Info("step incomplete", "step", step.ID, "missing", incomplete.Missing)
	default:
		n.log.Error(err, "navigation failed", "step", step.ID)
	}
	return n.driver.Info(ctx, err.Error())
}

func (n *Navigator) result(session *wizard.Session, values map[string]any) Result {
	return Result{Status: session.Status(), Values: maps.Clone(values)}
}

func requireText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

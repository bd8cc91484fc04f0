package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes a free-text question for one required field.
type InputConfig struct {
	Message string
	Default string
	Help    string
	// Validator rejects an answer before the prompt returns.
	Validator func(string) error
}

// ConfirmConfig describes a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
}

// SelectConfig describes a pick-one menu. Select returns the chosen index.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
}

// PromptDriver is the terminal the Navigator talks to. Tests replace it
// with a scripted fake.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

// NewSurveyDriver returns a PromptDriver that asks through survey on the
// process terminal and prints Info lines to out (os.Stdout when nil).
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return surveyDriver{out: out}
}

type surveyDriver struct {
	out io.Writer
}

func (d surveyDriver) Input(ctx context.Context, cfg InputConfig) (answer string, err error) {
	var opts []survey.AskOpt
	if check := cfg.Validator; check != nil {
		opts = append(opts, survey.WithValidator(func(v any) error {
			s, _ := v.(string)
			return check(s)
		}))
	}
	err = ask(ctx, &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, &answer, opts...)
	return answer, err
}

func (d surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (yes bool, err error) {
	err = ask(ctx, &survey.Confirm{Message: cfg.Message, Default: cfg.Default}, &yes)
	return yes, err
}

func (d surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	prompt := &survey.Select{Message: cfg.Message, Options: cfg.Options}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	var picked string
	if err := ask(ctx, prompt, &picked); err != nil {
		return -1, err
	}
	return slices.Index(cfg.Options, picked), nil
}

func (d surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// ask runs one survey prompt. Ctrl+C surfaces as ErrAborted.
func ask(ctx context.Context, prompt survey.Prompt, answer any, opts ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, answer, opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

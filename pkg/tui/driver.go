// Package tui walks a form session interactively in the terminal. Answers
// flow through the same binder events the page would dispatch (blur, change,
// submit), so the terminal session exercises exactly the validation behavior
// the browser gets.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted reports that the user aborted the prompt session.
var ErrInterrupted = errors.New("tui: interrupted")

// InputConfig configures a text prompt for one field.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// SelectConfig configures the selection-group prompt.
type SelectConfig struct {
	Message  string
	Options  []string
	PageSize int
}

// PromptDriver abstracts the terminal implementation so the walk logic can be
// tested without a live terminal.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct{}

func newSurveyDriver() PromptDriver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", mapPromptErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, mapPromptErr(err)
	}
	for i, option := range cfg.Options {
		if option == out {
			return i, nil
		}
	}
	return 0, fmt.Errorf("tui: prompt returned unknown option %q", out)
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Println(msg)
	return err
}

func mapPromptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return fmt.Errorf("tui: prompt: %w", err)
}

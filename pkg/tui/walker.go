package tui

import (
	"context"
	"fmt"

	"github.com/carebox/formgate/pkg/binder"
	"github.com/carebox/formgate/pkg/formspec"
	"github.com/carebox/formgate/pkg/surface"
)

// Option customises a Walker.
type Option func(*Walker)

// WithDriver injects a custom prompt driver. Tests use it to script answers.
func WithDriver(driver PromptDriver) Option {
	return func(w *Walker) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// Result is the outcome of one interactive session.
type Result struct {
	// Submitted reports the form gate's decision.
	Submitted bool

	// Values holds the final field values keyed by control name.
	Values map[string]string

	// Selected is the checked selection-group member, if any.
	Selected string
}

// Walker prompts for each control in a form definition and feeds the answers
// through the validation engine.
type Walker struct {
	def    formspec.Definition
	driver PromptDriver
}

// NewWalker constructs a Walker for the definition.
func NewWalker(def formspec.Definition, options ...Option) *Walker {
	w := &Walker{def: def, driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Run walks the definition: each field prompts until its value validates on
// blur, the selection group prompts once, and the session ends with the
// submit decision.
func (w *Walker) Run(ctx context.Context) (Result, error) {
	sess, err := w.def.Session()
	if err != nil {
		return Result{}, fmt.Errorf("tui: build session: %w", err)
	}

	mem := surface.NewMemory()
	for _, name := range sess.Order() {
		mem.AddControl(name)
	}
	if sess.Group != nil {
		for _, member := range sess.Group.Members {
			mem.AddControl(member)
		}
	}

	// The terminal has no typing pauses, so deferred validation runs
	// synchronously.
	b := binder.New(sess, mem, mem, binder.WithQuietPeriod(0))

	for _, d := range sess.Fields {
		if err := w.promptField(ctx, b, mem, d.Name); err != nil {
			return Result{}, err
		}
	}

	var selected string
	if sess.Group != nil {
		selected, err = w.promptGroup(ctx, b, mem, sess.Group.Members)
		if err != nil {
			return Result{}, err
		}
	}

	submitted := b.Dispatch(binder.Event{Type: binder.EventSubmit})
	if !submitted {
		if err := w.driver.Info(ctx, "Submission blocked: the form still has invalid controls."); err != nil {
			return Result{}, err
		}
	}

	values := make(map[string]string, len(sess.Fields))
	for _, name := range sess.Order() {
		values[name] = mem.Value(name)
	}

	return Result{Submitted: submitted, Values: values, Selected: selected}, nil
}

func (w *Walker) promptField(ctx context.Context, b *binder.Binder, mem *surface.Memory, name string) error {
	for {
		value, err := w.driver.Input(ctx, InputConfig{Message: name})
		if err != nil {
			return err
		}

		mem.SetValue(name, value)
		b.Dispatch(binder.Event{Type: binder.EventBlur, Control: name})

		if mem.Marker(name) != surface.MarkerInvalid {
			return nil
		}
		if msg, ok := mem.ErrorMessage(name); ok {
			if err := w.driver.Info(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func (w *Walker) promptGroup(ctx context.Context, b *binder.Binder, mem *surface.Memory, members []string) (string, error) {
	index, err := w.driver.Select(ctx, SelectConfig{
		Message: "Choose a box type",
		Options: members,
	})
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(members) {
		return "", fmt.Errorf("tui: selection index %d out of range", index)
	}

	chosen := members[index]
	for _, member := range members {
		mem.SetChecked(member, member == chosen)
	}
	b.Dispatch(binder.Event{Type: binder.EventChange, Control: chosen})
	return chosen, nil
}

// Package gate decides whether a form submission proceeds. It re-validates
// every field in the session at submit time, folds in the selection group,
// and on rejection moves focus to the first invalid control in document
// order. Allowing a submission means stepping aside: the host's native
// submit continues unmodified and the gate performs no network work.
package gate

import (
	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/presenter"
	"github.com/carebox/formgate/pkg/session"
	"github.com/carebox/formgate/pkg/surface"
)

// Gate aggregates field and group verdicts for one form.
type Gate struct {
	reader    surface.Reader
	surface   surface.Surface
	presenter *presenter.Presenter
}

// New constructs a Gate reading control state from reader and projecting
// side effects through surf and pres.
func New(reader surface.Reader, surf surface.Surface, pres *presenter.Presenter) *Gate {
	return &Gate{reader: reader, surface: surf, presenter: pres}
}

// TrySubmit validates the whole session and reports whether submission may
// proceed. Every field is evaluated even if it was never touched, so
// submitting immediately cannot bypass validation. On rejection the first
// control marked invalid receives focus and is scrolled into view; when only
// the group failed, its highlight is the signaled failure.
func (g *Gate) TrySubmit(s *session.Session) bool {
	formValid := true

	for _, d := range s.Fields {
		verdict := field.Evaluate(d, g.reader.Value(d.Name))
		g.presenter.Apply(d.Name, verdict)
		if !verdict.Valid {
			formValid = false
		}
	}

	if s.Group != nil {
		ok := s.Group.Evaluate(g.reader.Checked)
		g.surface.SetGroupHighlight(s.Group.Name, !ok)
		if !ok {
			formValid = false
		}
	}

	if formValid {
		return true
	}

	if first, ok := g.presenter.FirstInvalid(s.Order()); ok {
		g.surface.Focus(first)
		g.surface.ScrollIntoView(first)
	}
	return false
}

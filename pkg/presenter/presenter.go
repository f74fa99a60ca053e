// Package presenter synchronizes a control's visual validity markers and its
// inline error message with a validation verdict. The presenter owns the
// authoritative marker state per control; the host document is a pure
// projection updated through the surface contract.
package presenter

import (
	"sync"

	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/surface"
)

// Presenter applies verdicts to controls. Applying the same verdict twice
// produces the same final visual state: markers do not flap and error nodes
// never accumulate.
type Presenter struct {
	mu      sync.Mutex
	surface surface.Surface
	markers map[string]surface.Marker
}

// New constructs a Presenter projecting onto s.
func New(s surface.Surface) *Presenter {
	return &Presenter{
		surface: s,
		markers: make(map[string]surface.Marker),
	}
}

// Apply records the verdict as the control's marker state and projects the
// marker plus error node onto the surface. Error text is sanitized before it
// crosses into the document.
func (p *Presenter) Apply(control string, verdict field.Verdict) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if verdict.Valid {
		p.markers[control] = surface.MarkerValid
		p.surface.SetMarker(control, surface.MarkerValid)
		p.surface.ClearError(control)
		return
	}

	p.markers[control] = surface.MarkerInvalid
	p.surface.SetMarker(control, surface.MarkerInvalid)
	p.surface.ClearError(control)
	p.surface.ShowError(control, sanitizeMessage(verdict.Message))
}

// Marker returns the control's authoritative marker state. Controls that were
// never evaluated are neutral.
func (p *Presenter) Marker(control string) surface.Marker {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.markers[control]; ok {
		return m
	}
	return surface.MarkerNeutral
}

// FirstInvalid returns the first control in the supplied document order whose
// marker is currently invalid.
func (p *Presenter) FirstInvalid(order []string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, control := range order {
		if p.markers[control] == surface.MarkerInvalid {
			return control, true
		}
	}
	return "", false
}

package formgate

import (
	"fmt"

	"github.com/carebox/formgate/pkg/binder"
	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/formspec"
	"github.com/carebox/formgate/pkg/surface"
)

// Commonly used types re-exported via the root package for convenience.
type (
	// Descriptor declares one control's constraints.
	Descriptor = field.Descriptor

	// Verdict is the outcome of evaluating one control.
	Verdict = field.Verdict

	// Definition is a compiled form definition.
	Definition = formspec.Definition

	// Event is one interaction occurrence dispatched by the host.
	Event = binder.Event

	// Marker is a control's visual validity state.
	Marker = surface.Marker
)

const (
	KindText  = field.KindText
	KindPhone = field.KindPhone
	KindOther = field.KindOther
)

const (
	EventBlur   = binder.EventBlur
	EventInput  = binder.EventInput
	EventChange = binder.EventChange
	EventSubmit = binder.EventSubmit
)

// Attach builds the session for a definition and binds it to the host's
// reader and surface. The definition's quiet period is applied first, so
// explicit options still win.
func Attach(def formspec.Definition, reader surface.Reader, surf surface.Surface, options ...binder.Option) (*binder.Binder, error) {
	sess, err := def.Session()
	if err != nil {
		return nil, fmt.Errorf("formgate: attach %q: %w", def.Form, err)
	}

	opts := make([]binder.Option, 0, len(options)+1)
	if def.QuietPeriod > 0 {
		opts = append(opts, binder.WithQuietPeriod(def.QuietPeriod))
	}
	opts = append(opts, options...)

	return binder.New(sess, reader, surf, opts...), nil
}

// AttachMemory attaches a definition to a fresh in-memory document with every
// control registered in document order. Hosts without a live page, and tests,
// start here.
func AttachMemory(def formspec.Definition, options ...binder.Option) (*binder.Binder, *surface.Memory, error) {
	mem := surface.NewMemory()
	for _, d := range def.Fields {
		mem.AddControl(d.Name)
	}
	if def.Group != nil {
		for _, member := range def.Group.Members {
			mem.AddControl(member)
		}
	}

	b, err := Attach(def, mem, mem, options...)
	if err != nil {
		return nil, nil, err
	}
	return b, mem, nil
}

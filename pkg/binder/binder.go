// Package binder attaches the validation engine to interaction events. Each
// form session gets one Binder; events flow through an explicit
// (trigger, guard, action) table instead of nested callbacks: blur validates
// immediately, input re-validates already-invalid controls after the
// debounce quiet period, change on a group member clears the group highlight
// and plays the selection pulse, and submit runs the form gate.
package binder

import (
	"sync"
	"time"

	"github.com/carebox/formgate/pkg/debounce"
	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/gate"
	"github.com/carebox/formgate/pkg/presenter"
	"github.com/carebox/formgate/pkg/session"
	"github.com/carebox/formgate/pkg/surface"
)

// EventType names an interaction trigger.
type EventType string

const (
	EventBlur   EventType = "blur"
	EventInput  EventType = "input"
	EventChange EventType = "change"
	EventSubmit EventType = "submit"
)

// Event is one occurrence dispatched by the host. Control is empty for
// submit events.
type Event struct {
	Type    EventType
	Control string
}

const (
	defaultQuietPeriod   = 400 * time.Millisecond
	defaultPulseDuration = 150 * time.Millisecond
)

// Option customises a Binder.
type Option func(*Binder)

// WithQuietPeriod overrides the debounce quiet period applied to input
// events. A non-positive value makes deferred validation run synchronously.
func WithQuietPeriod(d time.Duration) Option {
	return func(b *Binder) {
		b.quiet = d
	}
}

// WithPulseDuration overrides the selection confirmation pulse length.
func WithPulseDuration(d time.Duration) Option {
	return func(b *Binder) {
		if d > 0 {
			b.pulse = d
		}
	}
}

type transition struct {
	on     EventType
	guard  func(Event) bool
	action func(Event) bool
}

// Binder dispatches interaction events for one form session.
type Binder struct {
	session   *session.Session
	reader    surface.Reader
	surface   surface.Surface
	presenter *presenter.Presenter
	gate      *gate.Gate

	quiet time.Duration
	pulse time.Duration

	mu         sync.Mutex
	schedulers map[string]*debounce.Scheduler

	table []transition
}

// New binds a session to a surface. The returned Binder owns the presenter
// and gate for the session.
func New(sess *session.Session, reader surface.Reader, surf surface.Surface, options ...Option) *Binder {
	b := &Binder{
		session:    sess,
		reader:     reader,
		surface:    surf,
		quiet:      defaultQuietPeriod,
		pulse:      defaultPulseDuration,
		schedulers: make(map[string]*debounce.Scheduler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	b.presenter = presenter.New(surf)
	b.gate = gate.New(reader, surf, b.presenter)

	b.table = []transition{
		{on: EventBlur, guard: b.isField, action: b.validateNow},
		{on: EventInput, guard: b.isInvalidField, action: b.validateAfterQuiet},
		{on: EventChange, guard: b.isGroupMember, action: b.confirmSelection},
		{on: EventSubmit, action: b.submit},
	}
	return b
}

// Presenter exposes the authoritative marker state for the session.
func (b *Binder) Presenter() *presenter.Presenter {
	return b.presenter
}

// Dispatch routes one event through the transition table. The result is the
// submit decision for EventSubmit (false blocks the native submission) and
// true for every other event. Events that match no transition, including
// events for controls the session does not know, are a no-op.
func (b *Binder) Dispatch(ev Event) bool {
	for _, tr := range b.table {
		if tr.on != ev.Type {
			continue
		}
		if tr.guard != nil && !tr.guard(ev) {
			continue
		}
		return tr.action(ev)
	}
	return true
}

// Flush runs any pending deferred validation immediately. Tests and teardown
// paths use it instead of waiting out the quiet period.
func (b *Binder) Flush() {
	b.mu.Lock()
	pending := make([]*debounce.Scheduler, 0, len(b.schedulers))
	for _, s := range b.schedulers {
		pending = append(pending, s)
	}
	b.mu.Unlock()

	for _, s := range pending {
		s.Flush()
	}
}

func (b *Binder) isField(ev Event) bool {
	_, ok := b.session.Descriptor(ev.Control)
	return ok
}

func (b *Binder) isInvalidField(ev Event) bool {
	return b.isField(ev) && b.presenter.Marker(ev.Control) == surface.MarkerInvalid
}

func (b *Binder) isGroupMember(ev Event) bool {
	return b.session.Group != nil && b.session.Group.Contains(ev.Control)
}

func (b *Binder) validateNow(ev Event) bool {
	b.scheduler(ev.Control).Cancel()
	b.evaluate(ev.Control)
	return true
}

func (b *Binder) validateAfterQuiet(ev Event) bool {
	control := ev.Control
	b.scheduler(control).Schedule(func() {
		b.evaluate(control)
	})
	return true
}

func (b *Binder) confirmSelection(ev Event) bool {
	b.surface.SetGroupHighlight(b.session.Group.Name, false)
	b.surface.PulseSelection(ev.Control, b.pulse)
	return true
}

func (b *Binder) submit(Event) bool {
	return b.gate.TrySubmit(b.session)
}

func (b *Binder) evaluate(control string) {
	d, ok := b.session.Descriptor(control)
	if !ok {
		return
	}
	b.presenter.Apply(control, field.Evaluate(d, b.reader.Value(control)))
}

func (b *Binder) scheduler(control string) *debounce.Scheduler {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.schedulers[control]
	if !ok {
		s = debounce.New(b.quiet)
		b.schedulers[control] = s
	}
	return s
}

package surface

import (
	"sync"
	"time"
)

type control struct {
	value    string
	checked  bool
	marker   Marker
	errored  bool
	errorMsg string
	pulses   int
}

// Memory is an in-memory document standing in for the host page. It
// implements both Reader and Surface, guards all state with a mutex so
// deferred debounce callbacks stay race-free, and upholds the document
// invariants: one marker per control, at most one error node per control.
type Memory struct {
	mu         sync.Mutex
	controls   map[string]*control
	highlights map[string]bool
	focused    string
	scrolled   []string
}

// NewMemory constructs an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{
		controls:   make(map[string]*control),
		highlights: make(map[string]bool),
	}
}

// AddControl registers a control in document order. Registering an existing
// name is a no-op.
func (m *Memory) AddControl(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(name)
}

func (m *Memory) ensure(name string) *control {
	c, ok := m.controls[name]
	if !ok {
		c = &control{marker: MarkerNeutral}
		m.controls[name] = c
	}
	return c
}

// SetValue stores the control's raw value, registering the control if needed.
func (m *Memory) SetValue(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(name).value = value
}

// SetChecked marks a selectable control checked or unchecked. Radio
// exclusivity is the caller's concern, matching the document's own behavior.
func (m *Memory) SetChecked(name string, checked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(name).checked = checked
}

// Value implements Reader.
func (m *Memory) Value(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		return c.value
	}
	return ""
}

// Checked implements Reader.
func (m *Memory) Checked(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		return c.checked
	}
	return false
}

// SetMarker implements Surface. Unknown controls are ignored.
func (m *Memory) SetMarker(name string, marker Marker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		c.marker = marker
	}
}

// ShowError implements Surface, replacing any existing error node.
func (m *Memory) ShowError(name, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		c.errored = true
		c.errorMsg = message
	}
}

// ClearError implements Surface.
func (m *Memory) ClearError(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		c.errored = false
		c.errorMsg = ""
	}
}

// SetGroupHighlight implements Surface.
func (m *Memory) SetGroupHighlight(group string, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highlights[group] = on
}

// PulseSelection implements Surface. The pulse duration is cosmetic; Memory
// only counts occurrences.
func (m *Memory) PulseSelection(name string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		c.pulses++
	}
}

// Focus implements Surface.
func (m *Memory) Focus(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.controls[name]; ok {
		m.focused = name
	}
}

// ScrollIntoView implements Surface.
func (m *Memory) ScrollIntoView(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.controls[name]; ok {
		m.scrolled = append(m.scrolled, name)
	}
}

// Marker returns the control's current marker, MarkerNeutral when unknown.
func (m *Memory) Marker(name string) Marker {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		return c.marker
	}
	return MarkerNeutral
}

// ErrorMessage returns the control's inline error text and whether an error
// node is present.
func (m *Memory) ErrorMessage(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok && c.errored {
		return c.errorMsg, true
	}
	return "", false
}

// Highlighted reports the group's current highlight state.
func (m *Memory) Highlighted(group string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highlights[group]
}

// Focused returns the name of the control holding focus, if any.
func (m *Memory) Focused() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focused
}

// Scrolled returns the scroll requests in order.
func (m *Memory) Scrolled() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.scrolled...)
}

// Pulses returns how many selection pulses the control received.
func (m *Memory) Pulses(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controls[name]; ok {
		return c.pulses
	}
	return 0
}

var (
	_ Reader  = (*Memory)(nil)
	_ Surface = (*Memory)(nil)
)

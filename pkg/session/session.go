// Package session models one attached form: its field descriptors in
// document order plus the optional mutually-exclusive selection group. A
// session lives for the lifetime of the page; there is no explicit teardown.
package session

import (
	"fmt"
	"strings"

	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/group"
)

// Session is the set of controls the engine validates for one form element.
type Session struct {
	Fields []field.Descriptor
	Group  *group.Group
}

// New validates the descriptors and constructs a session. Descriptor names
// must be non-empty and unique within the form.
func New(fields []field.Descriptor, g *group.Group) (*Session, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, d := range fields {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("session: field descriptor without a name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("session: duplicate field %q", name)
		}
		seen[name] = struct{}{}
	}
	if g != nil {
		normalized := g.Normalize()
		if normalized.Name == "" {
			return nil, fmt.Errorf("session: selection group without a name")
		}
		if len(normalized.Members) == 0 {
			return nil, fmt.Errorf("session: selection group %q has no members", normalized.Name)
		}
		g = &normalized
	}
	return &Session{Fields: fields, Group: g}, nil
}

// Order returns field names in document order.
func (s *Session) Order() []string {
	names := make([]string, 0, len(s.Fields))
	for _, d := range s.Fields {
		names = append(names, d.Name)
	}
	return names
}

// Descriptor looks up a field by control name.
func (s *Session) Descriptor(name string) (field.Descriptor, bool) {
	for _, d := range s.Fields {
		if d.Name == name {
			return d, true
		}
	}
	return field.Descriptor{}, false
}

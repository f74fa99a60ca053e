// Package group validates mutually-exclusive required selection groups, such
// as the box-type radio set on the intake form. The underlying controls
// guarantee at most one checked member by construction, so the group is valid
// exactly when a member is checked.
package group

import "strings"

// Group names a set of mutually-exclusive required controls.
type Group struct {
	Name    string
	Members []string
}

// Evaluate reports whether the group has a checked member. The checked
// callback answers for a single member; a nil callback means nothing is
// checked.
func (g Group) Evaluate(checked func(member string) bool) bool {
	if checked == nil {
		return false
	}
	for _, member := range g.Members {
		if checked(member) {
			return true
		}
	}
	return false
}

// Contains reports whether name is a member of the group.
func (g Group) Contains(name string) bool {
	for _, member := range g.Members {
		if member == name {
			return true
		}
	}
	return false
}

// Normalize trims the group name and drops empty members. Loaders call it
// after parsing user-supplied definitions.
func (g Group) Normalize() Group {
	out := Group{Name: strings.TrimSpace(g.Name)}
	for _, member := range g.Members {
		if trimmed := strings.TrimSpace(member); trimmed != "" {
			out.Members = append(out.Members, trimmed)
		}
	}
	return out
}

package field

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the simplified enum for control kinds the validator distinguishes.
type Kind string

const (
	KindText  Kind = "text"
	KindPhone Kind = "phone"
	KindOther Kind = "other"
)

// Code identifies a validation failure class.
type Code string

const (
	CodeMissingRequiredValue  Code = "missing-required-value"
	CodePatternMismatch       Code = "pattern-mismatch"
	CodeMaxLengthExceeded     Code = "max-length-exceeded"
	CodeGroupSelectionMissing Code = "group-selection-missing"
)

// Descriptor references one form control and its declared constraints. The
// engine reads it, never mutates it; the control's live value stays with the
// surface.
type Descriptor struct {
	Name      string
	Kind      Kind
	Required  bool
	Pattern   *regexp.Regexp
	MaxLength int

	// Messages overrides the built-in text per failure code. Entries are
	// optional; absent codes fall back to the defaults.
	Messages map[Code]string
}

// Verdict is the outcome of evaluating one control. It is derived and
// ephemeral: recomputed on every evaluation, never cached.
type Verdict struct {
	Valid   bool
	Code    Code
	Message string
}

// CompilePattern compiles a constraint expression so that it must match the
// whole value, mirroring how browsers treat the pattern attribute.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, fmt.Errorf("field: pattern expression is empty")
	}
	re, err := regexp.Compile(`\A(?:` + trimmed + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("field: compile pattern %q: %w", expr, err)
	}
	return re, nil
}

package field

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	defaultRequiredMessage = "This field is required"
	defaultPatternMessage  = "Please enter a valid phone number"
)

// Evaluate checks value against the descriptor's rules and returns a Verdict.
// Rules run in priority order and short-circuit at the first failure:
// required, then pattern (phone kind only), then max length. Leading and
// trailing whitespace is stripped before emptiness and length checks; the
// stored value is never mutated.
func Evaluate(d Descriptor, value string) Verdict {
	trimmed := strings.TrimSpace(value)

	if d.Required && trimmed == "" {
		return invalid(d, CodeMissingRequiredValue, defaultRequiredMessage)
	}

	if d.Kind == KindPhone && d.Pattern != nil && trimmed != "" {
		if !d.Pattern.MatchString(trimmed) {
			return invalid(d, CodePatternMismatch, defaultPatternMessage)
		}
	}

	if d.MaxLength > 0 && utf8.RuneCountInString(trimmed) > d.MaxLength {
		return invalid(d, CodeMaxLengthExceeded, fmt.Sprintf("Maximum %d characters allowed", d.MaxLength))
	}

	return Verdict{Valid: true}
}

func invalid(d Descriptor, code Code, fallback string) Verdict {
	message := fallback
	if override, ok := d.Messages[code]; ok && strings.TrimSpace(override) != "" {
		message = override
	}
	return Verdict{Code: code, Message: message}
}

package surface

import "time"

// Marker is the visual validity state of a control. At most one of
// MarkerValid and MarkerInvalid is set at any time; MarkerNeutral is the
// state before the first evaluation.
type Marker string

const (
	MarkerNeutral Marker = "neutral"
	MarkerValid   Marker = "valid"
	MarkerInvalid Marker = "invalid"
)

// Reader exposes the live state of form controls.
type Reader interface {
	// Value returns the control's current raw value, untrimmed.
	Value(control string) string

	// Checked reports whether a selectable control is currently checked.
	Checked(control string) bool
}

// Surface receives the engine's visual side effects. Implementations must
// treat unknown control names as a no-op rather than an error; a missing node
// never aborts validation.
type Surface interface {
	// SetMarker replaces the control's validity marker.
	SetMarker(control string, marker Marker)

	// ShowError attaches message as the control's inline error, replacing
	// any existing error for the same control.
	ShowError(control, message string)

	// ClearError removes the control's inline error, if any.
	ClearError(control string)

	// SetGroupHighlight toggles the failure outline on a selection group's
	// visual container.
	SetGroupHighlight(group string, on bool)

	// PulseSelection plays the transient scale-up confirmation on a group
	// member's visual card. Purely cosmetic.
	PulseSelection(control string, duration time.Duration)

	// Focus moves input focus to the control.
	Focus(control string)

	// ScrollIntoView scrolls the control to the viewport center with
	// smoothed motion.
	ScrollIntoView(control string)
}

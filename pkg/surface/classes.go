package surface

// ChromeClass is a typed identifier for the semantic CSS classes a document
// projection writes when bridging the engine to a live page.
type ChromeClass string

const (
	ClassForm      ChromeClass = "order-form"
	ClassValid     ChromeClass = "formgate-valid"
	ClassInvalid   ChromeClass = "formgate-invalid"
	ClassErrorNode ChromeClass = "formgate-error"
	ClassHighlight ChromeClass = "formgate-highlight"
)

// MarkerClass maps a marker to its projection class. Neutral controls carry
// no marker class; the valid and invalid classes are mutually exclusive, so
// projections replace one with the other.
func MarkerClass(m Marker) (ChromeClass, bool) {
	switch m {
	case MarkerValid:
		return ClassValid, true
	case MarkerInvalid:
		return ClassInvalid, true
	default:
		return "", false
	}
}

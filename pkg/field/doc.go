// Package field evaluates individual form controls against their declared
// constraints. Evaluation is pure: a Descriptor plus the control's current
// value yields a Verdict, and rule failures are ordinary return values rather
// than errors. Rules run in a fixed priority order (required, pattern, max
// length) and stop at the first failure.
package field

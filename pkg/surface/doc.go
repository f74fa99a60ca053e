// Package surface defines the UI contract the validation engine consumes and
// produces. The engine never touches a live document; it reads control state
// through Reader and projects validity markers, error nodes, highlights,
// focus, and scrolling through Surface. Host environments bridge these
// interfaces to their real document; Memory provides a complete in-memory
// implementation used by tests and the CLI.
package surface

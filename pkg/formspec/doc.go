// Package formspec loads form definitions from JSON or YAML documents and
// compiles them into the descriptors and selection group the engine
// validates. Definitions declare each control's constraints, optional
// per-code message overrides, the box-type style selection group, and the
// debounce quiet period the interaction layer should use.
package formspec

// Package formgate is the client-interaction validation engine for intake
// forms: per-field rule evaluation, derived validity state, error-message
// lifecycle, a mutually-exclusive required selection group, and the
// submission gate that ties field-level and group-level validity together.
//
// The engine owns no document. Hosts bridge their page to the surface
// contract and dispatch interaction events through a binder; the engine
// answers with markers, inline error nodes, and a submit decision. Validation
// failures are verdicts, never errors, and nothing in the engine performs
// network or storage work.
//
// Form definitions come from three places: hand-built descriptors, formspec
// documents (JSON or YAML), or an OpenAPI 3 operation via pkg/openapi.
package formgate

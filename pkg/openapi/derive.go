// Package openapi derives a form definition from an OpenAPI 3 operation, so
// the same document that describes the intake endpoint also drives the
// client-side validation rules. Request-body string properties become field
// descriptors (required list, pattern, maxLength, phone format) and the
// first enumerated string property becomes the mutually-exclusive selection
// group.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/formspec"
	"github.com/carebox/formgate/pkg/group"
)

var errOperationNotFound = errors.New("openapi: operation not found")

// Derive loads an OpenAPI document and builds the form definition for the
// operation with the given id. Properties are ordered by name; hosts that
// need a different document order should load a formspec definition instead.
func Derive(ctx context.Context, raw []byte, operationID string) (formspec.Definition, error) {
	if err := ctx.Err(); err != nil {
		return formspec.Definition{}, err
	}
	if len(raw) == 0 {
		return formspec.Definition{}, errors.New("openapi: document payload is empty")
	}
	if operationID == "" {
		return formspec.Definition{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return formspec.Definition{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return formspec.Definition{}, fmt.Errorf("%w: %q", errOperationNotFound, operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return formspec.Definition{}, fmt.Errorf("openapi: operation %q has no request body properties", operationID)
	}

	return buildDefinition(operationID, schema)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "application/json", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildDefinition(operationID string, schema *openapi3.Schema) (formspec.Definition, error) {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	def := formspec.Definition{Form: operationID}

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value

		if def.Group == nil && isSelectionGroup(prop) {
			def.Group = &group.Group{Name: name, Members: enumMembers(prop.Enum)}
			continue
		}

		desc, err := buildDescriptor(name, prop, required[name])
		if err != nil {
			return formspec.Definition{}, err
		}
		def.Fields = append(def.Fields, desc)
	}

	if len(def.Fields) == 0 && def.Group == nil {
		return formspec.Definition{}, fmt.Errorf("openapi: operation %q yields no controls", operationID)
	}

	return def, nil
}

func buildDescriptor(name string, prop *openapi3.Schema, required bool) (field.Descriptor, error) {
	desc := field.Descriptor{
		Name:     name,
		Kind:     kindFor(prop),
		Required: required,
	}

	if prop.MaxLength != nil {
		desc.MaxLength = int(*prop.MaxLength)
	}

	if prop.Pattern != "" {
		re, err := field.CompilePattern(prop.Pattern)
		if err != nil {
			return field.Descriptor{}, fmt.Errorf("openapi: property %q: %w", name, err)
		}
		desc.Pattern = re
	}

	return desc, nil
}

func kindFor(prop *openapi3.Schema) field.Kind {
	if !isType(prop, "string") {
		return field.KindOther
	}
	if prop.Format == "phone" {
		return field.KindPhone
	}
	return field.KindText
}

func isSelectionGroup(prop *openapi3.Schema) bool {
	return isType(prop, "string") && len(prop.Enum) > 0
}

func isType(prop *openapi3.Schema, want string) bool {
	if prop.Type == nil {
		return false
	}
	for _, t := range prop.Type.Slice() {
		if t == want {
			return true
		}
	}
	return false
}

func enumMembers(values []any) []string {
	members := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			members = append(members, s)
		}
	}
	return members
}

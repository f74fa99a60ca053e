package formspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/carebox/formgate/pkg/field"
	"github.com/carebox/formgate/pkg/group"
	"github.com/carebox/formgate/pkg/session"
)

// Definition is a compiled form definition ready to attach.
type Definition struct {
	Form        string
	QuietPeriod time.Duration
	Fields      []field.Descriptor
	Group       *group.Group
}

// Session builds the validation session for the definition.
func (d Definition) Session() (*session.Session, error) {
	return session.New(d.Fields, d.Group)
}

type documentFile struct {
	Form        string      `json:"form" yaml:"form"`
	QuietPeriod string      `json:"quietPeriod" yaml:"quietPeriod"`
	Fields      []fieldFile `json:"fields" yaml:"fields"`
	Group       *groupFile  `json:"group" yaml:"group"`
}

type fieldFile struct {
	Name      string            `json:"name" yaml:"name"`
	Kind      string            `json:"kind" yaml:"kind"`
	Required  bool              `json:"required" yaml:"required"`
	Pattern   string            `json:"pattern" yaml:"pattern"`
	MaxLength int               `json:"maxLength" yaml:"maxLength"`
	Messages  map[string]string `json:"messages" yaml:"messages"`
}

type groupFile struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

// Parse decodes a JSON or YAML form definition and compiles it.
func Parse(data []byte) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, fmt.Errorf("formspec: document is empty")
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Definition{}, fmt.Errorf("formspec: document is not valid JSON or YAML")
		}
	}

	return compile(doc)
}

// LoadFile reads and parses a definition from fsys.
func LoadFile(fsys fs.FS, path string) (Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Definition{}, fmt.Errorf("formspec: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return def, nil
}

func compile(doc documentFile) (Definition, error) {
	def := Definition{Form: strings.TrimSpace(doc.Form)}
	if def.Form == "" {
		return Definition{}, fmt.Errorf("formspec: form name is required")
	}

	if quiet := strings.TrimSpace(doc.QuietPeriod); quiet != "" {
		d, err := time.ParseDuration(quiet)
		if err != nil || d < 0 {
			return Definition{}, fmt.Errorf("formspec: invalid quietPeriod %q", doc.QuietPeriod)
		}
		def.QuietPeriod = d
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for _, f := range doc.Fields {
		desc, err := compileField(f)
		if err != nil {
			return Definition{}, err
		}
		if _, dup := seen[desc.Name]; dup {
			return Definition{}, fmt.Errorf("formspec: duplicate field %q", desc.Name)
		}
		seen[desc.Name] = struct{}{}
		def.Fields = append(def.Fields, desc)
	}

	if doc.Group != nil {
		g := group.Group{Name: doc.Group.Name, Members: doc.Group.Members}.Normalize()
		if g.Name == "" {
			return Definition{}, fmt.Errorf("formspec: group name is required")
		}
		if len(g.Members) == 0 {
			return Definition{}, fmt.Errorf("formspec: group %q has no members", g.Name)
		}
		def.Group = &g
	}

	if len(def.Fields) == 0 && def.Group == nil {
		return Definition{}, fmt.Errorf("formspec: form %q declares no controls", def.Form)
	}

	return def, nil
}

func compileField(f fieldFile) (field.Descriptor, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return field.Descriptor{}, fmt.Errorf("formspec: field without a name")
	}

	kind, err := parseKind(f.Kind)
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("formspec: field %q: %w", name, err)
	}

	if f.MaxLength < 0 {
		return field.Descriptor{}, fmt.Errorf("formspec: field %q: maxLength must be non-negative", name)
	}

	desc := field.Descriptor{
		Name:      name,
		Kind:      kind,
		Required:  f.Required,
		MaxLength: f.MaxLength,
	}

	if strings.TrimSpace(f.Pattern) != "" {
		re, err := field.CompilePattern(f.Pattern)
		if err != nil {
			return field.Descriptor{}, fmt.Errorf("formspec: field %q: %w", name, err)
		}
		desc.Pattern = re
	}

	if len(f.Messages) > 0 {
		desc.Messages = make(map[field.Code]string, len(f.Messages))
		for code, message := range f.Messages {
			parsed, err := parseCode(code)
			if err != nil {
				return field.Descriptor{}, fmt.Errorf("formspec: field %q: %w", name, err)
			}
			desc.Messages[parsed] = message
		}
	}

	return desc, nil
}

func parseKind(raw string) (field.Kind, error) {
	switch field.Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return field.KindText, nil
	case field.KindText:
		return field.KindText, nil
	case field.KindPhone:
		return field.KindPhone, nil
	case field.KindOther:
		return field.KindOther, nil
	default:
		return "", fmt.Errorf("unknown kind %q", raw)
	}
}

func parseCode(raw string) (field.Code, error) {
	switch field.Code(strings.TrimSpace(raw)) {
	case field.CodeMissingRequiredValue:
		return field.CodeMissingRequiredValue, nil
	case field.CodePatternMismatch:
		return field.CodePatternMismatch, nil
	case field.CodeMaxLengthExceeded:
		return field.CodeMaxLengthExceeded, nil
	default:
		return "", fmt.Errorf("unknown message code %q", raw)
	}
}

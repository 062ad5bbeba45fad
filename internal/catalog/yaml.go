package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

type yamlFile struct {
	Enums []yamlEnum `yaml:"enums"`
}

// Name is kept as a node so its line can be reported.
type yamlEnum struct {
	Name    yaml.Node    `yaml:"name"`
	Kind    string       `yaml:"kind"`
	Members []yamlMember `yaml:"members"`
}

type yamlMember struct {
	Name  string    `yaml:"name"`
	Value yaml.Node `yaml:"value"`
}

// LoadYAMLFile reads definitions from a YAML file.
func LoadYAMLFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("failed to read catalog file: %v", err)}
	}
	return ParseYAML(path, data)
}

// ParseYAML parses YAML definitions. filename is only used in positions.
// Unknown fields are rejected to catch typos like "member:" vs "members:".
func ParseYAML(filename string, data []byte) ([]Definition, error) {
	var file yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("failed to parse YAML: %v", err),
			Pos:     Position{Filename: filename},
		}
	}

	defs := make([]Definition, 0, len(file.Enums))
	for _, e := range file.Enums {
		def, err := compileYAMLEnum(filename, e)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func compileYAMLEnum(filename string, e yamlEnum) (Definition, error) {
	pos := Position{Filename: filename, Line: e.Name.Line, Column: e.Name.Column}
	if e.Name.Kind != yaml.ScalarNode || e.Name.Value == "" {
		return Definition{}, &LoadError{Code: ErrCodeMissingField, Message: "enum name is required", Pos: pos}
	}
	name := e.Name.Value
	if e.Kind == "" {
		return Definition{}, &LoadError{Code: ErrCodeMissingField, Message: fmt.Sprintf("enum %s: kind is required", name), Pos: pos}
	}
	kind, err := enum.ParseKind(e.Kind)
	if err != nil {
		return Definition{}, &LoadError{Code: ErrCodeInvalidKind, Message: fmt.Sprintf("enum %s: %v", name, err), Pos: pos}
	}

	def := Definition{Name: name, Kind: kind, Pos: pos}
	for i := range e.Members {
		m := &e.Members[i]
		if m.Value.Kind == 0 {
			return Definition{}, &LoadError{
				Code:    ErrCodeMissingField,
				Message: fmt.Sprintf("enum %s: member %q: value is required", name, m.Name),
				Pos:     pos,
			}
		}
		mpos := Position{Filename: filename, Line: m.Value.Line, Column: m.Value.Column}
		r, err := token.NewYAMLReader(&m.Value)
		if err != nil {
			return Definition{}, &LoadError{
				Code:    ErrCodeInvalidValue,
				Message: fmt.Sprintf("enum %s: member %q: %v", name, m.Name, err),
				Pos:     mpos,
			}
		}
		def.Members = append(def.Members, MemberDef{Name: m.Name, Value: r, Pos: mpos})
	}
	return def, nil
}

package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML core schema tags.
const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

// YAMLReader reads a yaml.v3 node. Aliases and documents are followed to
// the node they refer to.
type YAMLReader struct {
	scalar
}

// NewYAMLReader classifies node. A nil node yields a None token.
func NewYAMLReader(node *yaml.Node) (*YAMLReader, error) {
	// Integers use base 0 so YAML's 0x/0o/0b forms decode.
	r := &YAMLReader{scalar{kind: None, base: 0}}
	for node != nil && (node.Kind == yaml.AliasNode || node.Kind == yaml.DocumentNode) {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}
		if len(node.Content) == 0 {
			return r, nil
		}
		node = node.Content[0]
	}
	if node == nil {
		return r, nil
	}

	r.text = node.Value
	switch node.Kind {
	case yaml.MappingNode:
		r.kind = StartObject
	case yaml.SequenceNode:
		r.kind = StartArray
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case tagNull:
			r.kind = Null
		case tagBool:
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid bool %q", node.Line, node.Value)
			}
			r.kind = False
			if b {
				r.kind = True
			}
		case tagInt, tagFloat:
			r.kind = Number
		default:
			r.kind = String
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
	return r, nil
}

// YAMLWriter builds a single scalar node.
type YAMLWriter struct {
	node *yaml.Node
}

// NewYAMLWriter creates an empty writer.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// Node returns the written node, or nil if nothing was written.
func (w *YAMLWriter) Node() *yaml.Node {
	return w.node
}

func (w *YAMLWriter) set(tag, value string) error {
	w.node = &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	return nil
}

func (w *YAMLWriter) WriteNull() error {
	return w.set(tagNull, "null")
}

func (w *YAMLWriter) WriteBool(b bool) error {
	return w.set(tagBool, strconv.FormatBool(b))
}

func (w *YAMLWriter) WriteInt(n int64) error {
	return w.set(tagInt, strconv.FormatInt(n, 10))
}

func (w *YAMLWriter) WriteUint(n uint64) error {
	return w.set(tagInt, strconv.FormatUint(n, 10))
}

// WriteFloat always emits a decimal point or exponent so the scalar
// resolves back to !!float without an explicit tag.
func (w *YAMLWriter) WriteFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("write float: unsupported value %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return w.set(tagFloat, s)
}

func (w *YAMLWriter) WriteString(s string) error {
	return w.set(tagStr, s)
}

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// Map is a mapping keyed by members. Keys serialize as the string form
// of their value and are emitted in value order.
type Map[D Definition[V], V enum.Primitive, T any] map[*enum.Member[V]]T

// sortedKeys returns keys in value order for deterministic output.
func (m Map[D, V, T]) sortedKeys() []*enum.Member[V] {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, (*enum.Member[V]).Compare)
	return keys
}

// MarshalJSON implements json.Marshaler. A nil map is written as null.
func (m Map[D, V, T]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	c := valueConverter[D, V]()
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range m.sortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := c.WriteKey(k)
		if err != nil {
			return nil, err
		}
		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", key, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := json.Marshal(m[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", key, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the map nil.
func (m *Map[D, V, T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c := valueConverter[D, V]()
	out := make(Map[D, V, T], len(raw))
	seen := make(map[*enum.Member[V]]string, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		k, err := c.ReadKey(key)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if err := checkDuplicate(seen, k, key); err != nil {
			return err
		}
		var v T
		if err := json.Unmarshal(raw[key], &v); err != nil {
			return fmt.Errorf("value for key %q: %w", key, err)
		}
		out[k] = v
	}

	*m = out
	return nil
}

// MarshalYAML implements yaml.Marshaler. Keys are written as typed
// scalars.
func (m Map[D, V, T]) MarshalYAML() (any, error) {
	if m == nil {
		return nil, nil
	}

	c := valueConverter[D, V]()
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.sortedKeys() {
		w := token.NewYAMLWriter()
		if err := c.Write(w, k); err != nil {
			return nil, err
		}

		var valNode yaml.Node
		if err := valNode.Encode(m[k]); err != nil {
			return nil, fmt.Errorf("marshal value for key %s: %w", k.Name(), err)
		}
		node.Content = append(node.Content, w.Node(), &valNode)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A null node never reaches
// it; yaml.v3 leaves the map nil itself.
func (m *Map[D, V, T]) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping for %s keys", node.Line, valueConverter[D, V]().Type().Name())
	}

	c := valueConverter[D, V]()
	out := make(Map[D, V, T], len(node.Content)/2)
	seen := make(map[*enum.Member[V]]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		k, err := c.ReadKey(keyNode.Value)
		if err != nil {
			return fmt.Errorf("line %d: key %q: %w", keyNode.Line, keyNode.Value, err)
		}
		if err := checkDuplicate(seen, k, keyNode.Value); err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
		var v T
		if err := valNode.Decode(&v); err != nil {
			return fmt.Errorf("line %d: value for key %q: %w", valNode.Line, keyNode.Value, err)
		}
		out[k] = v
	}

	*m = out
	return nil
}

// checkDuplicate rejects a key whose text differs from an earlier key
// ("01" and "1") but resolves to the same member.
func checkDuplicate[V enum.Primitive](seen map[*enum.Member[V]]string, k *enum.Member[V], key string) error {
	if prev, ok := seen[k]; ok {
		return fmt.Errorf("key %q: duplicate of key %q (%s.%s)", key, prev, k.TypeName(), k.Name())
	}
	seen[k] = key
	return nil
}

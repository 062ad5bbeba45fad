package convert

import (
	"gopkg.in/yaml.v3"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// Definition registers an enumeration with the serializer adapters.
// Implementations are empty marker types; only the zero value is used.
//
//	type Color struct{}
//	func (Color) Enum() *enum.Type[int32] { return colors }
type Definition[V enum.Primitive] interface {
	Enum() *enum.Type[V]
}

// Configured is optionally implemented by a Definition to change the
// converter options used by the adapters.
type Configured interface {
	ConverterOptions() Options
}

func optionsFor[D any]() Options {
	var d D
	if c, ok := any(d).(Configured); ok {
		return c.ConverterOptions()
	}
	return Options{}
}

func valueConverter[D Definition[V], V enum.Primitive]() *ValueConverter[V] {
	var d D
	return NewValueConverter(d.Enum(), optionsFor[D]())
}

func nameConverter[D Definition[V], V enum.Primitive]() *NameConverter[V] {
	var d D
	return NewNameConverter(d.Enum(), optionsFor[D]())
}

// Value holds an optional member and serializes it as its underlying
// value. The zero Value is unset.
//
// NullPolicy applies to JSON only. yaml.v3 never calls UnmarshalYAML for
// an explicit null and leaves the field untouched, so YAML null decodes
// like a missing field.
type Value[D Definition[V], V enum.Primitive] struct {
	member *enum.Member[V]
}

// Of wraps m. Writing fails later if m belongs to another enumeration.
func Of[D Definition[V], V enum.Primitive](m *enum.Member[V]) Value[D, V] {
	return Value[D, V]{member: m}
}

// Member returns the held member, or nil when unset.
func (f Value[D, V]) Member() *enum.Member[V] { return f.member }

// IsSet reports whether a member is held.
func (f Value[D, V]) IsSet() bool { return f.member != nil }

// IsZero reports whether the value is unset. It lets omitzero (json) and
// omitempty (yaml) skip unset fields.
func (f Value[D, V]) IsZero() bool { return f.member == nil }

// MarshalJSON implements json.Marshaler.
func (f Value[D, V]) MarshalJSON() ([]byte, error) {
	w := token.NewJSONWriter()
	if err := valueConverter[D, V]().Write(w, f.member); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Value[D, V]) UnmarshalJSON(data []byte) error {
	r, err := token.NewJSONReader(data)
	if err != nil {
		return err
	}
	m, err := valueConverter[D, V]().Read(r)
	if err != nil {
		return err
	}
	f.member = m
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Value[D, V]) MarshalYAML() (any, error) {
	w := token.NewYAMLWriter()
	if err := valueConverter[D, V]().Write(w, f.member); err != nil {
		return nil, err
	}
	return w.Node(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Value[D, V]) UnmarshalYAML(node *yaml.Node) error {
	r, err := token.NewYAMLReader(node)
	if err != nil {
		return err
	}
	m, err := valueConverter[D, V]().Read(r)
	if err != nil {
		return err
	}
	f.member = m
	return nil
}

// Name holds an optional member and serializes it as its name. Like
// Value, YAML null decodes like a missing field.
type Name[D Definition[V], V enum.Primitive] struct {
	member *enum.Member[V]
}

// NameOf wraps m.
func NameOf[D Definition[V], V enum.Primitive](m *enum.Member[V]) Name[D, V] {
	return Name[D, V]{member: m}
}

// Member returns the held member, or nil when unset.
func (f Name[D, V]) Member() *enum.Member[V] { return f.member }

// IsZero reports whether the name is unset.
func (f Name[D, V]) IsZero() bool { return f.member == nil }

// MarshalJSON implements json.Marshaler.
func (f Name[D, V]) MarshalJSON() ([]byte, error) {
	w := token.NewJSONWriter()
	if err := nameConverter[D, V]().Write(w, f.member); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Name[D, V]) UnmarshalJSON(data []byte) error {
	r, err := token.NewJSONReader(data)
	if err != nil {
		return err
	}
	m, err := nameConverter[D, V]().Read(r)
	if err != nil {
		return err
	}
	f.member = m
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Name[D, V]) MarshalYAML() (any, error) {
	w := token.NewYAMLWriter()
	if err := nameConverter[D, V]().Write(w, f.member); err != nil {
		return nil, err
	}
	return w.Node(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Name[D, V]) UnmarshalYAML(node *yaml.Node) error {
	r, err := token.NewYAMLReader(node)
	if err != nil {
		return err
	}
	m, err := nameConverter[D, V]().Read(r)
	if err != nil {
		return err
	}
	f.member = m
	return nil
}

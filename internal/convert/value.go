package convert

import (
	"fmt"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// ValueConverter reads and writes members of one enumeration as their
// underlying value.
type ValueConverter[V enum.Primitive] struct {
	typ  *enum.Type[V]
	opts Options
}

// NewValueConverter creates a converter for t.
func NewValueConverter[V enum.Primitive](t *enum.Type[V], opts Options) *ValueConverter[V] {
	return &ValueConverter[V]{typ: t, opts: opts}
}

// Type returns the converter's enumeration.
func (c *ValueConverter[V]) Type() *enum.Type[V] {
	return c.typ
}

// Read resolves the current token to a member. A nil member with a nil
// error means the token was absent.
func (c *ValueConverter[V]) Read(r token.Reader) (*enum.Member[V], error) {
	if r.Kind().IsAbsent() {
		return nil, c.opts.absent(c.typ.Name(), r.Kind())
	}

	v, err := ReadPrimitive[V](r)
	if err != nil {
		return nil, &ConversionError{Value: r.Raw(), Err: err}
	}

	m, err := c.typ.FromValue(v)
	if err != nil {
		return nil, &ConversionError{Value: enum.FormatValue(v), Err: err}
	}
	return m, nil
}

// Write emits m's value. A nil member is written as null.
func (c *ValueConverter[V]) Write(w token.Writer, m *enum.Member[V]) error {
	if m == nil {
		return w.WriteNull()
	}
	if err := c.check(m); err != nil {
		return err
	}
	return WritePrimitive(w, m.Value())
}

// ReadKey resolves a mapping key holding the string form of a value.
func (c *ValueConverter[V]) ReadKey(key string) (*enum.Member[V], error) {
	return c.Read(token.NewPropertyNameReader(key))
}

// WriteKey returns the mapping-key form of m's value.
func (c *ValueConverter[V]) WriteKey(m *enum.Member[V]) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%s: nil member cannot be a mapping key", c.typ.Name())
	}
	if err := c.check(m); err != nil {
		return "", err
	}
	return FormatKey(m.Value()), nil
}

func (c *ValueConverter[V]) check(m *enum.Member[V]) error {
	if !c.typ.Contains(m) {
		return &ForeignMemberError{TypeName: c.typ.Name(), Member: m.Name(), MemberType: m.TypeName()}
	}
	return nil
}

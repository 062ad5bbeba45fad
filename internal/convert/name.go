package convert

import (
	"fmt"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// NameConverter reads and writes members of one enumeration as their
// names. Options.IgnoreCase enables case-folded lookups on read.
type NameConverter[V enum.Primitive] struct {
	typ  *enum.Type[V]
	opts Options
}

// NewNameConverter creates a converter for t.
func NewNameConverter[V enum.Primitive](t *enum.Type[V], opts Options) *NameConverter[V] {
	return &NameConverter[V]{typ: t, opts: opts}
}

// Read resolves a string token naming a member.
func (c *NameConverter[V]) Read(r token.Reader) (*enum.Member[V], error) {
	if r.Kind().IsAbsent() {
		return nil, c.opts.absent(c.typ.Name(), r.Kind())
	}

	name, err := r.Text()
	if err != nil {
		return nil, &ConversionError{Value: r.Raw(), Err: err}
	}

	m, err := c.typ.FromName(name, c.opts.IgnoreCase)
	if err != nil {
		return nil, &ConversionError{Value: name, Err: err}
	}
	return m, nil
}

// Write emits m's name. A nil member is written as null.
func (c *NameConverter[V]) Write(w token.Writer, m *enum.Member[V]) error {
	if m == nil {
		return w.WriteNull()
	}
	if !c.typ.Contains(m) {
		return &ForeignMemberError{TypeName: c.typ.Name(), Member: m.Name(), MemberType: m.TypeName()}
	}
	return w.WriteString(m.Name())
}

// ReadKey resolves a mapping key holding a member name.
func (c *NameConverter[V]) ReadKey(key string) (*enum.Member[V], error) {
	return c.Read(token.NewPropertyNameReader(key))
}

// WriteKey returns m's name.
func (c *NameConverter[V]) WriteKey(m *enum.Member[V]) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%s: nil member cannot be a mapping key", c.typ.Name())
	}
	if !c.typ.Contains(m) {
		return "", &ForeignMemberError{TypeName: c.typ.Name(), Member: m.Name(), MemberType: m.TypeName()}
	}
	return m.Name(), nil
}

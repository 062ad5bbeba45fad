package enum

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/text/cases"
)

// Def declares one member of an enumeration.
type Def[V Primitive] struct {
	Name  string
	Value V
}

// D is a shorthand for Def.
// Example: MustNew("Color", D("Red", int32(1)), D("Green", int32(2)))
func D[V Primitive](name string, value V) Def[V] {
	return Def[V]{Name: name, Value: value}
}

// Member is a singleton instance of an enumeration. Members are created
// by New and only ever handed out by pointer.
type Member[V Primitive] struct {
	typ   *Type[V]
	name  string
	value V
}

// Name returns the member's declared name.
func (m *Member[V]) Name() string { return m.name }

// Value returns the member's underlying value.
func (m *Member[V]) Value() V { return m.value }

// Underlying returns the underlying value as an interface.
func (m *Member[V]) Underlying() any { return m.value }

// Type returns the enumeration the member belongs to.
func (m *Member[V]) Type() *Type[V] { return m.typ }

// TypeName returns the name of the member's enumeration.
func (m *Member[V]) TypeName() string { return m.typ.name }

// Kind returns the primitive kind of the member's value.
func (m *Member[V]) Kind() Kind { return m.typ.kind }

// String returns the member's name.
func (m *Member[V]) String() string { return m.name }

// Compare orders members by value.
func (m *Member[V]) Compare(other *Member[V]) int {
	return compareValues(m.value, other.value)
}

// Type is an enumeration: a closed, immutable set of members with unique
// values. It is safe for concurrent use.
type Type[V Primitive] struct {
	name    string
	kind    Kind
	members []*Member[V] // ordered by value
	byValue map[V]*Member[V]
	byName  map[string]*Member[V]
	byFold  map[string]*Member[V] // case-folded names, first declaration wins
}

// New builds an enumeration from its member declarations.
// Returns a *DefinitionError if the name is empty, no members are given,
// a member name is empty or repeated, a value is repeated, or a double
// value is NaN or infinite.
func New[V Primitive](name string, defs ...Def[V]) (*Type[V], error) {
	if name == "" {
		return nil, &DefinitionError{TypeName: "<unnamed>", Message: "type name is required"}
	}
	if len(defs) == 0 {
		return nil, &DefinitionError{TypeName: name, Message: "at least one member is required"}
	}

	t := &Type[V]{
		name:    name,
		kind:    KindOf[V](),
		members: make([]*Member[V], 0, len(defs)),
		byValue: make(map[V]*Member[V], len(defs)),
		byName:  make(map[string]*Member[V], len(defs)),
		byFold:  make(map[string]*Member[V], len(defs)),
	}

	for _, d := range defs {
		if d.Name == "" {
			return nil, &DefinitionError{TypeName: name, Message: "member name is required"}
		}
		if f, ok := any(d.Value).(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return nil, &DefinitionError{TypeName: name, Member: d.Name, Message: fmt.Sprintf("value %v is not a finite number", f)}
		}
		if _, exists := t.byName[d.Name]; exists {
			return nil, &DefinitionError{TypeName: name, Member: d.Name, Message: "duplicate member name"}
		}
		if other, exists := t.byValue[d.Value]; exists {
			return nil, &DefinitionError{
				TypeName: name,
				Member:   d.Name,
				Message:  fmt.Sprintf("value %s already used by %q", FormatValue(d.Value), other.name),
			}
		}

		m := &Member[V]{typ: t, name: d.Name, value: d.Value}
		t.members = append(t.members, m)
		t.byValue[d.Value] = m
		t.byName[d.Name] = m

		folded := cases.Fold().String(d.Name)
		if _, exists := t.byFold[folded]; !exists {
			t.byFold[folded] = m
		}
	}

	slices.SortStableFunc(t.members, (*Member[V]).Compare)
	return t, nil
}

// MustNew is like New but panics on an invalid declaration.
// Intended for package-level enumeration variables.
func MustNew[V Primitive](name string, defs ...Def[V]) *Type[V] {
	t, err := New(name, defs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the enumeration's name.
func (t *Type[V]) Name() string { return t.name }

// Kind returns the primitive kind of the enumeration's values.
func (t *Type[V]) Kind() Kind { return t.kind }

// Len returns the number of members.
func (t *Type[V]) Len() int { return len(t.members) }

// List returns the members ordered by value.
// The slice is a copy; the members are the shared singletons.
func (t *Type[V]) List() []*Member[V] {
	return slices.Clone(t.members)
}

// FromValue returns the member whose value equals v.
// Returns a *NotFoundError if no member matches.
func (t *Type[V]) FromValue(v V) (*Member[V], error) {
	if m, ok := t.byValue[v]; ok {
		return m, nil
	}
	return nil, &NotFoundError{TypeName: t.name, Field: FieldValue, Value: FormatValue(v)}
}

// TryFromValue returns the member whose value equals v, if any.
func (t *Type[V]) TryFromValue(v V) (*Member[V], bool) {
	m, ok := t.byValue[v]
	return m, ok
}

// FromName returns the member with the given name. With ignoreCase the
// comparison uses Unicode case folding.
// Returns a *NotFoundError if no member matches.
func (t *Type[V]) FromName(name string, ignoreCase bool) (*Member[V], error) {
	if m, ok := t.TryFromName(name, ignoreCase); ok {
		return m, nil
	}
	return nil, &NotFoundError{TypeName: t.name, Field: FieldName, Value: name}
}

// TryFromName returns the member with the given name, if any.
func (t *Type[V]) TryFromName(name string, ignoreCase bool) (*Member[V], bool) {
	if m, ok := t.byName[name]; ok {
		return m, true
	}
	if !ignoreCase {
		return nil, false
	}
	m, ok := t.byFold[cases.Fold().String(name)]
	return m, ok
}

// MustName returns the member with the given name or panics.
// Intended for package-level singleton declarations.
func (t *Type[V]) MustName(name string) *Member[V] {
	m, err := t.FromName(name, false)
	if err != nil {
		panic(err)
	}
	return m
}

// Contains reports whether m is one of this enumeration's members.
func (t *Type[V]) Contains(m *Member[V]) bool {
	return m != nil && m.typ == t
}

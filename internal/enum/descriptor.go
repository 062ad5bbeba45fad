package enum

import "fmt"

// Instance is the non-generic view of a member. The dynamic value is
// always the *Member singleton, so identity survives the conversion.
type Instance interface {
	Name() string
	TypeName() string
	Kind() Kind
	Underlying() any
}

// Descriptor is the non-generic view of an enumeration, used where the
// value type is only known at run time (registries, catalogs, the CLI).
type Descriptor interface {
	Name() string
	Kind() Kind
	Len() int
	Instances() []Instance
	LookupValue(v any) (Instance, error)
	LookupName(name string, ignoreCase bool) (Instance, error)
}

var (
	_ Descriptor = (*Type[bool])(nil)
	_ Instance   = (*Member[bool])(nil)
)

// Instances returns the members ordered by value.
func (t *Type[V]) Instances() []Instance {
	out := make([]Instance, len(t.members))
	for i, m := range t.members {
		out[i] = m
	}
	return out
}

// LookupValue resolves v, which must have the enumeration's exact Go
// type. A value of any other type yields a *KindMismatchError.
func (t *Type[V]) LookupValue(v any) (Instance, error) {
	tv, ok := v.(V)
	if !ok {
		return nil, &KindMismatchError{TypeName: t.name, Want: t.kind, Got: fmt.Sprintf("%T", v)}
	}
	m, err := t.FromValue(tv)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LookupName resolves a member by name.
func (t *Type[V]) LookupName(name string, ignoreCase bool) (Instance, error) {
	m, err := t.FromName(name, ignoreCase)
	if err != nil {
		return nil, err
	}
	return m, nil
}

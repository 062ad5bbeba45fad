package enum

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps enumeration names to their types. Registration happens
// at setup time; lookups afterwards are read-only.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Descriptor)}
}

// Register adds an enumeration. Returns an error if d is nil or an
// enumeration with the same name is already registered.
func (r *Registry) Register(d Descriptor) error {
	if d == nil {
		return fmt.Errorf("register: nil enumeration")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[d.Name()]; exists {
		return fmt.Errorf("enumeration %q already registered", d.Name())
	}
	r.types[d.Name()] = d
	return nil
}

// MustRegister registers every descriptor or panics.
func (r *Registry) MustRegister(ds ...Descriptor) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Get returns the enumeration registered under name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// Names returns the registered enumeration names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered enumerations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Lookup resolves value within the named enumeration.
// Errors: *UnknownTypeError, *KindMismatchError, *NotFoundError.
func (r *Registry) Lookup(typeName string, value any) (Instance, error) {
	d, ok := r.Get(typeName)
	if !ok {
		return nil, &UnknownTypeError{TypeName: typeName}
	}
	return d.LookupValue(value)
}

// LookupName resolves a member name within the named enumeration.
func (r *Registry) LookupName(typeName, name string, ignoreCase bool) (Instance, error) {
	d, ok := r.Get(typeName)
	if !ok {
		return nil, &UnknownTypeError{TypeName: typeName}
	}
	return d.LookupName(name, ignoreCase)
}

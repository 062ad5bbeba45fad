package enum

import (
	"errors"
	"fmt"
)

// NotFoundError reports that no member of an enumeration matches a
// queried value or name.
type NotFoundError struct {
	// TypeName is the enumeration's name.
	TypeName string

	// Field is "Value" or "Name", depending on the lookup.
	Field string

	// Value is the queried value, already formatted with FormatValue.
	Value string
}

// Lookup fields reported by NotFoundError.
const (
	FieldValue = "Value"
	FieldName  = "Name"
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Field == FieldName {
		return fmt.Sprintf(`No %s with Name "%s" found.`, e.TypeName, e.Value)
	}
	return fmt.Sprintf("No %s with Value %s found.", e.TypeName, e.Value)
}

// KindMismatchError reports a non-generic lookup whose value has the
// wrong Go type for the enumeration. No coercion is attempted.
type KindMismatchError struct {
	TypeName string
	Want     Kind
	Got      string // Go type of the supplied value
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s expects a %s value, got %s", e.TypeName, e.Want, e.Got)
}

// UnknownTypeError reports a registry lookup for an unregistered
// enumeration name.
type UnknownTypeError struct {
	TypeName string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("enumeration %q is not registered", e.TypeName)
}

// DefinitionError reports an invalid enumeration declaration.
type DefinitionError struct {
	TypeName string
	Member   string // empty for type-level problems
	Message  string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("enum %s: member %q: %s", e.TypeName, e.Member, e.Message)
	}
	return fmt.Sprintf("enum %s: %s", e.TypeName, e.Message)
}

// IsNotFound returns true if err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsKindMismatch returns true if err is, or wraps, a KindMismatchError.
func IsKindMismatch(err error) bool {
	var km *KindMismatchError
	return errors.As(err, &km)
}

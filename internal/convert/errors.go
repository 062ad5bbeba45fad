package convert

import (
	"errors"
	"fmt"
)

// ConversionError is the outer error for a token that could not be turned
// into a member. Err is either a token coercion error or an
// *enum.NotFoundError.
type ConversionError struct {
	// Value is the attempted value: the formatted primitive when coercion
	// succeeded, the raw token text otherwise.
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("Error converting value '%s' to a smart enum.", e.Value)
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NullError reports an explicit null under NullAsError.
type NullError struct {
	TypeName string
}

// Error implements the error interface.
func (e *NullError) Error() string {
	return fmt.Sprintf("Error converting Null to %s.", e.TypeName)
}

// ForeignMemberError reports an attempt to write a member through a
// converter for a different enumeration.
type ForeignMemberError struct {
	TypeName   string
	Member     string
	MemberType string
}

// Error implements the error interface.
func (e *ForeignMemberError) Error() string {
	return fmt.Sprintf("member %s.%s does not belong to %s", e.MemberType, e.Member, e.TypeName)
}

// IsConversionError returns true if err is, or wraps, a ConversionError.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}

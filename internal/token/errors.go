package token

import (
	"errors"
	"fmt"
	"strconv"
)

// Expected token descriptions used in TypeError messages.
const (
	ExpectBoolean = "boolean"
	ExpectNumber  = "number"
	ExpectString  = "string"
)

// TypeError reports a coercion from a token of the wrong kind, such as
// reading a number from a boolean token.
type TypeError struct {
	Actual   Kind
	Expected string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("Cannot get the value of a token type '%s' as a %s.", e.Actual, e.Expected)
}

// FormatError reports a token of an acceptable kind whose text cannot be
// represented by the requested primitive (overflow, fractions for
// integers, malformed mapping keys).
type FormatError struct {
	Raw    string
	Target string
	Err    error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q as %s", e.Raw, e.Target)
	}
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Raw, e.Target, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// newFormatError strips strconv's function/input prefix, which would
// otherwise repeat Raw.
func newFormatError(raw, target string, err error) *FormatError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &FormatError{Raw: raw, Target: target, Err: err}
}

// IsTypeError returns true if err is, or wraps, a TypeError.
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

// IsFormatError returns true if err is, or wraps, a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

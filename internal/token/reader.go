package token

import (
	"math"
	"strconv"
	"strings"
)

// Reader exposes one token: its kind, its text, and coercions to each
// primitive. A coercion from an incompatible kind returns *TypeError.
type Reader interface {
	Kind() Kind
	// Raw returns the token text for diagnostics. Strings are unquoted.
	Raw() string
	Bool() (bool, error)
	Uint8() (uint8, error)
	Int8() (int8, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)
	Float64() (float64, error)
	Text() (string, error)
}

// scalar implements the coercions shared by every reader. Number and
// PropertyName tokens parse their text; PropertyName tokens also accept
// boolean text.
type scalar struct {
	kind Kind
	text string
	base int // integer base passed to strconv; 0 allows 0x/0o/0b prefixes
}

func (s scalar) Kind() Kind  { return s.kind }
func (s scalar) Raw() string { return s.text }

func (s scalar) Bool() (bool, error) {
	switch s.kind {
	case True:
		return true, nil
	case False:
		return false, nil
	case PropertyName:
		// Only true/false in any case; strconv.ParseBool would also take 1/0/t/f.
		switch {
		case strings.EqualFold(s.text, "true"):
			return true, nil
		case strings.EqualFold(s.text, "false"):
			return false, nil
		}
		return false, &FormatError{Raw: s.text, Target: "bool", Err: strconv.ErrSyntax}
	}
	return false, &TypeError{Actual: s.kind, Expected: ExpectBoolean}
}

func (s scalar) numeric() (string, error) {
	if s.kind == Number || s.kind == PropertyName {
		return s.text, nil
	}
	return "", &TypeError{Actual: s.kind, Expected: ExpectNumber}
}

func (s scalar) parseInt(bits int, target string) (int64, error) {
	text, err := s.numeric()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, s.base, bits)
	if err != nil {
		return 0, newFormatError(text, target, err)
	}
	return n, nil
}

func (s scalar) Uint8() (uint8, error) {
	text, err := s.numeric()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(text, s.base, 8)
	if err != nil {
		return 0, newFormatError(text, "uint8", err)
	}
	return uint8(n), nil
}

func (s scalar) Int8() (int8, error) {
	n, err := s.parseInt(8, "int8")
	return int8(n), err
}

func (s scalar) Int16() (int16, error) {
	n, err := s.parseInt(16, "int16")
	return int16(n), err
}

func (s scalar) Int32() (int32, error) {
	n, err := s.parseInt(32, "int32")
	return int32(n), err
}

func (s scalar) Int64() (int64, error) {
	return s.parseInt(64, "int64")
}

func (s scalar) Float64() (float64, error) {
	text, err := s.numeric()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newFormatError(text, "float64", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FormatError{Raw: text, Target: "float64"}
	}
	return f, nil
}

func (s scalar) Text() (string, error) {
	if s.kind == String || s.kind == PropertyName {
		return s.text, nil
	}
	return "", &TypeError{Actual: s.kind, Expected: ExpectString}
}

// PropertyNameReader reads a mapping key. Every coercion parses the key
// text, so enum-keyed dictionaries follow the same lookup rules as
// values.
type PropertyNameReader struct {
	scalar
}

// NewPropertyNameReader wraps a mapping key.
func NewPropertyNameReader(key string) *PropertyNameReader {
	return &PropertyNameReader{scalar{kind: PropertyName, text: key, base: 10}}
}

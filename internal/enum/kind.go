package enum

import (
	"fmt"
	"strings"
)

// Primitive is the set of Go types a smart enum value may have.
// The set is closed: each Go type maps to exactly one Kind.
type Primitive interface {
	bool | uint8 | int8 | int16 | int32 | int64 | float64 | string
}

// Kind identifies the primitive kind of an enumeration's values.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindByte
	KindSByte
	KindInt16
	KindInt32
	KindInt64
	KindDouble
	KindString
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindByte:    "byte",
	KindSByte:   "sbyte",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindDouble:  "double",
	KindString:  "string",
}

// String returns the canonical kind name used in catalog files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindBool, KindByte, KindSByte, KindInt16, KindInt32, KindInt64, KindDouble, KindString}
}

// ParseKind resolves a kind name. Go type names (uint8, int8, float64)
// are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "boolean":
		return KindBool, nil
	case "byte", "uint8":
		return KindByte, nil
	case "sbyte", "int8":
		return KindSByte, nil
	case "int16":
		return KindInt16, nil
	case "int32":
		return KindInt32, nil
	case "int64":
		return KindInt64, nil
	case "double", "float64":
		return KindDouble, nil
	case "string":
		return KindString, nil
	}
	return KindInvalid, fmt.Errorf("unknown enum kind %q", s)
}

// KindOf returns the Kind for the Go type V.
func KindOf[V Primitive]() Kind {
	var zero V
	switch any(zero).(type) {
	case bool:
		return KindBool
	case uint8:
		return KindByte
	case int8:
		return KindSByte
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float64:
		return KindDouble
	case string:
		return KindString
	}
	return KindInvalid
}

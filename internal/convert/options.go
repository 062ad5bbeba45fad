package convert

import "github.com/roach88/smartenum/internal/token"

// NullPolicy decides what an explicit null token means.
type NullPolicy int

const (
	// NullAsUnset treats null like a missing field: no member, no error.
	NullAsUnset NullPolicy = iota
	// NullAsError rejects null with *NullError.
	NullAsError
)

func (p NullPolicy) String() string {
	switch p {
	case NullAsUnset:
		return "unset"
	case NullAsError:
		return "error"
	}
	return "unknown"
}

// Options configures a converter.
type Options struct {
	Null NullPolicy

	// IgnoreCase makes name converters fold case. Value converters
	// ignore it.
	IgnoreCase bool
}

// absent handles None and Null tokens.
func (o Options) absent(typeName string, kind token.Kind) error {
	if kind == token.Null && o.Null == NullAsError {
		return &NullError{TypeName: typeName}
	}
	return nil
}

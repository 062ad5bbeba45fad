package convert

import (
	"fmt"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// ReadInstance runs the value read path for an enumeration known only
// through its Descriptor. A nil Instance with a nil error means the token
// was absent.
func ReadInstance(d enum.Descriptor, r token.Reader, opts Options) (enum.Instance, error) {
	switch t := d.(type) {
	case *enum.Type[bool]:
		return readInstance(t, r, opts)
	case *enum.Type[uint8]:
		return readInstance(t, r, opts)
	case *enum.Type[int8]:
		return readInstance(t, r, opts)
	case *enum.Type[int16]:
		return readInstance(t, r, opts)
	case *enum.Type[int32]:
		return readInstance(t, r, opts)
	case *enum.Type[int64]:
		return readInstance(t, r, opts)
	case *enum.Type[float64]:
		return readInstance(t, r, opts)
	case *enum.Type[string]:
		return readInstance(t, r, opts)
	}
	return nil, fmt.Errorf("unsupported enumeration implementation %T", d)
}

func readInstance[V enum.Primitive](t *enum.Type[V], r token.Reader, opts Options) (enum.Instance, error) {
	m, err := NewValueConverter(t, opts).Read(r)
	if err != nil || m == nil {
		return nil, err
	}
	return m, nil
}

// WriteInstance emits inst's underlying value. A nil Instance is
// written as null.
func WriteInstance(w token.Writer, inst enum.Instance) error {
	if inst == nil {
		return w.WriteNull()
	}
	return writeAny(w, inst.Underlying())
}

// FormatInstanceKey returns the mapping-key form of inst's value.
func FormatInstanceKey(inst enum.Instance) string {
	switch v := inst.Underlying().(type) {
	case bool:
		return FormatKey(v)
	case uint8:
		return FormatKey(v)
	case int8:
		return FormatKey(v)
	case int16:
		return FormatKey(v)
	case int32:
		return FormatKey(v)
	case int64:
		return FormatKey(v)
	case float64:
		return FormatKey(v)
	case string:
		return FormatKey(v)
	}
	return fmt.Sprint(inst.Underlying())
}

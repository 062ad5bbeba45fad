package convert

import (
	"fmt"
	"strconv"

	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// ReadPrimitive coerces the current token to V.
// Returns the reader's *token.TypeError or *token.FormatError unchanged.
func ReadPrimitive[V enum.Primitive](r token.Reader) (V, error) {
	var out V
	var v any
	var err error

	switch any(out).(type) {
	case bool:
		v, err = r.Bool()
	case uint8:
		v, err = r.Uint8()
	case int8:
		v, err = r.Int8()
	case int16:
		v, err = r.Int16()
	case int32:
		v, err = r.Int32()
	case int64:
		v, err = r.Int64()
	case float64:
		v, err = r.Float64()
	case string:
		v, err = r.Text()
	}
	if err != nil {
		return out, err
	}
	return v.(V), nil
}

// WritePrimitive emits v in its natural encoding.
func WritePrimitive[V enum.Primitive](w token.Writer, v V) error {
	return writeAny(w, v)
}

func writeAny(w token.Writer, v any) error {
	switch x := v.(type) {
	case bool:
		return w.WriteBool(x)
	case uint8:
		return w.WriteUint(uint64(x))
	case int8:
		return w.WriteInt(int64(x))
	case int16:
		return w.WriteInt(int64(x))
	case int32:
		return w.WriteInt(int64(x))
	case int64:
		return w.WriteInt(x)
	case float64:
		return w.WriteFloat(x)
	case string:
		return w.WriteString(x)
	}
	return fmt.Errorf("unsupported primitive %T", v)
}

// FormatKey returns the mapping-key form of v. It parses back through
// token.PropertyNameReader.
func FormatKey[V enum.Primitive](v V) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	}
	return fmt.Sprint(v)
}

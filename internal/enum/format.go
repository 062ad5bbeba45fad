package enum

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// FormatValue renders a value the way error messages quote it:
// booleans as True/False, numbers in their shortest round-trip form,
// strings verbatim.
func FormatValue(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "True"
		}
		return "False"
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
		return formatDouble(x)
	case string:
		return x
	case nil:
		return "Null"
	}
	return fmt.Sprint(v)
}

// formatDouble switches to exponent notation only for very large or very
// small magnitudes.
func formatDouble(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-5 && abs < 1e15) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'G', -1, 64)
}

// compareValues orders two values of the same primitive type.
// false sorts before true.
func compareValues[V Primitive](a, b V) int {
	switch x := any(a).(type) {
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case uint8:
		return cmp.Compare(x, any(b).(uint8))
	case int8:
		return cmp.Compare(x, any(b).(int8))
	case int16:
		return cmp.Compare(x, any(b).(int16))
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case float64:
		return cmp.Compare(x, any(b).(float64))
	case string:
		return cmp.Compare(x, any(b).(string))
	}
	return 0
}

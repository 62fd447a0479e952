package feature

import (
	"fmt"
	"math"
	"strconv"
)

// Helper functions for value coercion. Values arriving from decoded
// configuration files or user input come in many Go types; nodes normalize
// them to the transport types bool, int64, float64 and string.

// toInt64 converts any integer type, or a float with no fractional part, to
// int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// toFloat64 converts any numeric type to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// toBool accepts bool and the literals "True" and "False".
func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch b {
		case "True":
			return true, true
		case "False":
			return false, true
		}
	}
	return false, false
}

// FormatValue renders a transport value for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		if i, ok := toInt64(v); ok {
			return strconv.FormatInt(i, 10)
		}
		return "?"
	}
}

// ParseValue parses user text into a value suitable for a node of the given
// kind.
func ParseValue(kind Kind, s string) (any, error) {
	switch kind {
	case KindBoolean:
		switch s {
		case "True", "true", "1", "on":
			return true, nil
		case "False", "false", "0", "off":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
	case KindInteger:
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
		}
		return i, nil
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a float", ErrInvalidValue, s)
		}
		return f, nil
	case KindEnumeration, KindString:
		return s, nil
	default:
		return nil, fmt.Errorf("%w: kind %s has no value", ErrInvalidValue, kind)
	}
}

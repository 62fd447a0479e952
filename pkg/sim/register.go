package sim

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/genicam-go/genicam/pkg/feature"
)

// Register errors.
var (
	ErrNotWritable  = errors.New("register is not writable")
	ErrNotReadable  = errors.New("register is not readable")
	ErrValueType    = errors.New("invalid value type for register")
	ErrOutOfRange   = errors.New("value out of range")
	ErrBadIncrement = errors.New("value not on increment")
	ErrBadSymbol    = errors.New("symbol not available")
)

// registerSpec describes one simulated feature register.
type registerSpec struct {
	Name        string
	DisplayName string
	Description string
	Tooltip     string
	Unit        string
	Kind        feature.Kind
	Visibility  feature.Visibility

	// Access is the static access mode. Dependency rules may restrict it
	// further at runtime.
	Access feature.AccessMode

	// Integer and Float bounds. Dynamic bounds are computed by the device.
	IntMin, IntMax, IntInc int64
	FloatMin, FloatMax     float64

	// Symbols of an Enumeration.
	Symbols []string

	Default any

	// Missing registers are enumerated but reported as not implemented.
	Missing bool
}

func (s *registerSpec) descriptor() feature.Descriptor {
	return feature.Descriptor{
		Name:        s.Name,
		Kind:        s.Kind,
		DisplayName: s.DisplayName,
		Description: s.Description,
		Tooltip:     s.Tooltip,
		Unit:        s.Unit,
		Visibility:  s.Visibility,
		Implemented: !s.Missing,
	}
}

// register holds the current value of a feature. It is guarded by the
// device mutex.
type register struct {
	spec  *registerSpec
	value any
}

func newRegister(spec *registerSpec) *register {
	return &register{spec: spec, value: spec.Default}
}

// coerce converts value to the register's storage type and checks it
// against the given live constraints.
func (r *register) coerce(value any, ir feature.IntRange, fr feature.FloatRange, symbols []string) (any, error) {
	switch r.spec.Kind {
	case feature.KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expected bool, got %T", ErrValueType, value)
		}
		return b, nil

	case feature.KindInteger:
		v, ok := asInt64(value)
		if !ok {
			return nil, fmt.Errorf("%w: expected integer, got %T", ErrValueType, value)
		}
		if v < ir.Min || v > ir.Max {
			return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, ir.Min, ir.Max)
		}
		if ir.Inc > 1 && (v-ir.Min)%ir.Inc != 0 {
			return nil, fmt.Errorf("%w: %d (min %d, inc %d)", ErrBadIncrement, v, ir.Min, ir.Inc)
		}
		return v, nil

	case feature.KindFloat:
		v, ok := asFloat64(value)
		if !ok {
			return nil, fmt.Errorf("%w: expected float, got %T", ErrValueType, value)
		}
		if math.IsNaN(v) || v < fr.Min || v > fr.Max {
			return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, v, fr.Min, fr.Max)
		}
		return v, nil

	case feature.KindEnumeration:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected symbol, got %T", ErrValueType, value)
		}
		if !slices.Contains(symbols, s) {
			return nil, fmt.Errorf("%w: %q", ErrBadSymbol, s)
		}
		return s, nil

	case feature.KindString:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", ErrValueType, value)
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s register has no value", ErrValueType, r.spec.Kind)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

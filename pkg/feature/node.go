package feature

import (
	"fmt"
	"math"
	"slices"
)

// Node is a single feature of a device.
//
// AccessMode is recomputed from the device on every call; two consecutive
// calls on the same node may return different modes when another feature
// (or the device's own automatic control) changed in between.
type Node interface {
	// Name returns the unique feature name.
	Name() string

	// Kind returns the feature type.
	Kind() Kind

	// DisplayName returns the human-readable name.
	DisplayName() string

	// Description returns the human-readable description.
	Description() string

	// Tooltip returns the short help text.
	Tooltip() string

	// Visibility returns the recommended user level.
	Visibility() Visibility

	// AccessMode returns the live access mode.
	AccessMode() (AccessMode, error)
}

// Valued is a Node that carries a value (every kind except Command).
type Valued interface {
	Node

	// Value returns the current value as bool, int64, float64 or string.
	Value() (any, error)

	// SetValue validates v against the live constraints and writes it.
	SetValue(v any) error
}

// Compile-time interface satisfaction checks.
var (
	_ Valued = (*Boolean)(nil)
	_ Valued = (*Integer)(nil)
	_ Valued = (*Float)(nil)
	_ Valued = (*Enumeration)(nil)
	_ Valued = (*String)(nil)
	_ Node   = (*Command)(nil)
)

// base holds what every node kind shares. It keeps no device state.
type base struct {
	desc Descriptor
	t    Transport
	sub  Subscriber
}

func (b *base) Name() string           { return b.desc.Name }
func (b *base) Kind() Kind             { return b.desc.Kind }
func (b *base) Description() string    { return b.desc.Description }
func (b *base) Tooltip() string        { return b.desc.Tooltip }
func (b *base) Visibility() Visibility { return b.desc.Visibility }

func (b *base) DisplayName() string {
	if b.desc.DisplayName == "" {
		return b.desc.Name
	}
	return b.desc.DisplayName
}

func (b *base) AccessMode() (AccessMode, error) {
	mode, err := b.t.AccessMode(b.desc.Name)
	if err != nil {
		return AccessUnavailable, newError(OpAccess, b.desc.Name, err)
	}
	return mode, nil
}

func (b *base) require(op string, want AccessMode) error {
	mode, err := b.AccessMode()
	if err != nil {
		return err
	}
	if mode&want != want {
		return accessDenied(op, b.desc.Name, mode)
	}
	return nil
}

// load reads the raw value after checking read access.
func (b *base) load() (any, error) {
	if err := b.require(OpGet, AccessRead); err != nil {
		return nil, err
	}
	v, err := b.t.Read(b.desc.Name)
	if err != nil {
		return nil, deviceRejected(OpGet, b.desc.Name, err)
	}
	return v, nil
}

// store checks write access, lets prepare coerce and validate the value
// against live constraints and finally writes it. The subscriber sees every
// attempt, successful or not.
func (b *base) store(raw any, prepare func() (any, error)) (err error) {
	defer func() {
		if b.sub != nil {
			b.sub.OnFeatureWritten(b.desc.Name, raw, err)
		}
	}()

	if err := b.require(OpSet, AccessWrite); err != nil {
		return err
	}

	value, err := prepare()
	if err != nil {
		return err
	}

	if err := b.t.Write(b.desc.Name, value); err != nil {
		return deviceRejected(OpSet, b.desc.Name, err)
	}
	return nil
}

func (b *base) unexpected(v any) error {
	return newError(OpGet, b.desc.Name, fmt.Errorf("%w: device returned %T for %s feature", ErrKindMismatch, v, b.desc.Kind))
}

// Boolean is a feature with a bool value.
type Boolean struct{ base }

// Bool returns the current value.
func (n *Boolean) Bool() (bool, error) {
	v, err := n.load()
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, n.unexpected(v)
	}
	return b, nil
}

// Value returns the current value as bool.
func (n *Boolean) Value() (any, error) {
	b, err := n.Bool()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SetBool writes v.
func (n *Boolean) SetBool(v bool) error {
	return n.store(v, func() (any, error) { return v, nil })
}

// SetValue accepts a bool or the literals "True" and "False".
func (n *Boolean) SetValue(v any) error {
	return n.store(v, func() (any, error) {
		b, ok := toBool(v)
		if !ok {
			return nil, invalidValue(OpSet, n.desc.Name, "expected a boolean, got %T(%v)", v, v)
		}
		return b, nil
	})
}

// Integer is a feature with an int64 value constrained by a live range.
type Integer struct{ base }

// Int returns the current value.
func (n *Integer) Int() (int64, error) {
	v, err := n.load()
	if err != nil {
		return 0, err
	}
	i, ok := toInt64(v)
	if !ok {
		return 0, n.unexpected(v)
	}
	return i, nil
}

// Value returns the current value as int64.
func (n *Integer) Value() (any, error) {
	i, err := n.Int()
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Range returns the live min, max and increment.
func (n *Integer) Range() (IntRange, error) {
	r, err := n.t.IntRange(n.desc.Name)
	if err != nil {
		return IntRange{}, newError(OpRange, n.desc.Name, err)
	}
	return r, nil
}

// Min returns the live minimum.
func (n *Integer) Min() (int64, error) {
	r, err := n.Range()
	return r.Min, err
}

// Max returns the live maximum.
func (n *Integer) Max() (int64, error) {
	r, err := n.Range()
	return r.Max, err
}

// Increment returns the live increment.
func (n *Integer) Increment() (int64, error) {
	r, err := n.Range()
	return r.Inc, err
}

// SetInt writes v. Values outside [min, max] or off the min + k*increment
// grid are rejected, never rounded.
func (n *Integer) SetInt(v int64) error {
	return n.store(v, func() (any, error) {
		if err := n.check(v); err != nil {
			return nil, err
		}
		return v, nil
	})
}

// SetValue accepts any Go integer type or an integral float.
func (n *Integer) SetValue(v any) error {
	return n.store(v, func() (any, error) {
		i, ok := toInt64(v)
		if !ok {
			return nil, invalidValue(OpSet, n.desc.Name, "expected an integer, got %T(%v)", v, v)
		}
		if err := n.check(i); err != nil {
			return nil, err
		}
		return i, nil
	})
}

func (n *Integer) check(v int64) error {
	r, err := n.Range()
	if err != nil {
		return err
	}
	if v < r.Min || v > r.Max {
		return invalidValue(OpSet, n.desc.Name, "%d outside [%d, %d]", v, r.Min, r.Max)
	}
	// v >= Min, so the offset fits in uint64 even for ranges spanning int64.
	if r.Inc > 1 && (uint64(v)-uint64(r.Min))%uint64(r.Inc) != 0 {
		return invalidValue(OpSet, n.desc.Name, "%d not a multiple of increment %d from %d", v, r.Inc, r.Min)
	}
	return nil
}

// Float is a feature with a float64 value constrained by a live range.
type Float struct{ base }

// Float returns the current value.
func (n *Float) Float() (float64, error) {
	v, err := n.load()
	if err != nil {
		return 0, err
	}
	f, ok := toFloat64(v)
	if !ok {
		return 0, n.unexpected(v)
	}
	return f, nil
}

// Value returns the current value as float64.
func (n *Float) Value() (any, error) {
	f, err := n.Float()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Unit returns the physical unit, or "" if there is none.
func (n *Float) Unit() string { return n.desc.Unit }

// Range returns the live min and max.
func (n *Float) Range() (FloatRange, error) {
	r, err := n.t.FloatRange(n.desc.Name)
	if err != nil {
		return FloatRange{}, newError(OpRange, n.desc.Name, err)
	}
	return r, nil
}

// Min returns the live minimum.
func (n *Float) Min() (float64, error) {
	r, err := n.Range()
	return r.Min, err
}

// Max returns the live maximum.
func (n *Float) Max() (float64, error) {
	r, err := n.Range()
	return r.Max, err
}

// SetFloat writes v.
func (n *Float) SetFloat(v float64) error {
	return n.store(v, func() (any, error) {
		if err := n.check(v); err != nil {
			return nil, err
		}
		return v, nil
	})
}

// SetValue accepts any Go numeric type.
func (n *Float) SetValue(v any) error {
	return n.store(v, func() (any, error) {
		f, ok := toFloat64(v)
		if !ok {
			return nil, invalidValue(OpSet, n.desc.Name, "expected a number, got %T(%v)", v, v)
		}
		if err := n.check(f); err != nil {
			return nil, err
		}
		return f, nil
	})
}

func (n *Float) check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidValue(OpSet, n.desc.Name, "%v is not a finite number", v)
	}
	r, err := n.Range()
	if err != nil {
		return err
	}
	if v < r.Min || v > r.Max {
		return invalidValue(OpSet, n.desc.Name, "%g outside [%g, %g]", v, r.Min, r.Max)
	}
	return nil
}

// Enumeration is a feature whose value is one of a live set of symbols.
type Enumeration struct{ base }

// Symbol returns the current symbol.
func (n *Enumeration) Symbol() (string, error) {
	v, err := n.load()
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", n.unexpected(v)
	}
	return s, nil
}

// Value returns the current symbol as string.
func (n *Enumeration) Value() (any, error) {
	s, err := n.Symbol()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ValidValues returns the currently valid symbols in device order.
func (n *Enumeration) ValidValues() ([]string, error) {
	symbols, err := n.t.Symbols(n.desc.Name)
	if err != nil {
		return nil, newError(OpRange, n.desc.Name, err)
	}
	return symbols, nil
}

// SetSymbol writes s.
func (n *Enumeration) SetSymbol(s string) error {
	return n.store(s, func() (any, error) {
		if err := n.check(s); err != nil {
			return nil, err
		}
		return s, nil
	})
}

// SetValue accepts a string symbol.
func (n *Enumeration) SetValue(v any) error {
	return n.store(v, func() (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, invalidValue(OpSet, n.desc.Name, "expected a symbol, got %T(%v)", v, v)
		}
		if err := n.check(s); err != nil {
			return nil, err
		}
		return s, nil
	})
}

func (n *Enumeration) check(s string) error {
	symbols, err := n.ValidValues()
	if err != nil {
		return err
	}
	if !slices.Contains(symbols, s) {
		return invalidValue(OpSet, n.desc.Name, "%q not one of %v", s, symbols)
	}
	return nil
}

// String is a feature with a free-form string value.
type String struct{ base }

// Text returns the current value.
func (n *String) Text() (string, error) {
	v, err := n.load()
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", n.unexpected(v)
	}
	return s, nil
}

// Value returns the current value as string.
func (n *String) Value() (any, error) {
	s, err := n.Text()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetText writes s.
func (n *String) SetText(s string) error {
	return n.store(s, func() (any, error) { return s, nil })
}

// SetValue accepts a string.
func (n *String) SetValue(v any) error {
	return n.store(v, func() (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, invalidValue(OpSet, n.desc.Name, "expected a string, got %T(%v)", v, v)
		}
		return s, nil
	})
}

// Command is a feature without a value that triggers a device action.
type Command struct{ base }

// Execute triggers the action. Completion is not observable through the
// node; it returns as soon as the device accepted the request.
func (n *Command) Execute() (err error) {
	defer func() {
		if n.sub != nil {
			n.sub.OnCommandExecuted(n.desc.Name, err)
		}
	}()

	if err := n.require(OpExecute, AccessWrite); err != nil {
		return err
	}
	if err := n.t.Execute(n.desc.Name); err != nil {
		return deviceRejected(OpExecute, n.desc.Name, err)
	}
	return nil
}

// newNode wraps a descriptor in the node type matching its kind. It returns
// false for kinds this package does not expose.
func newNode(d Descriptor, t Transport, sub Subscriber) (Node, bool) {
	b := base{desc: d, t: t, sub: sub}
	switch d.Kind {
	case KindBoolean:
		return &Boolean{b}, true
	case KindInteger:
		return &Integer{b}, true
	case KindFloat:
		return &Float{b}, true
	case KindEnumeration:
		return &Enumeration{b}, true
	case KindString:
		return &String{b}, true
	case KindCommand:
		return &Command{b}, true
	default:
		return nil, false
	}
}

package feature

import (
	"errors"
	"math"
	"testing"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		in   any
		want int64
		ok   bool
	}{
		{int(5), 5, true},
		{int8(-3), -3, true},
		{uint32(7), 7, true},
		{uint64(math.MaxUint64), 0, false},
		{float64(12), 12, true},
		{float64(12.5), 0, false},
		{math.NaN(), 0, false},
		{"12", 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, ok := toInt64(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("toInt64(%T(%v)) = %d, %v; want %d, %v", tt.in, tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToBool(t *testing.T) {
	if b, ok := toBool("True"); !ok || !b {
		t.Error("expected True to parse")
	}
	if b, ok := toBool("False"); !ok || b {
		t.Error("expected False to parse")
	}
	if _, ok := toBool("true"); ok {
		t.Error("only the capitalized literals are accepted")
	}
	if _, ok := toBool(1); ok {
		t.Error("integers are not booleans")
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[any]string{
		true:         "True",
		int64(-4):    "-4",
		float64(2.5): "2.5",
		"BayerGB8":   "BayerGB8",
		int32(9):     "9",
	}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(KindInteger, "0x10")
	if err != nil || v != int64(16) {
		t.Errorf("ParseValue integer = %v, %v", v, err)
	}

	v, err = ParseValue(KindBoolean, "on")
	if err != nil || v != true {
		t.Errorf("ParseValue boolean = %v, %v", v, err)
	}

	v, err = ParseValue(KindFloat, "1e3")
	if err != nil || v != 1000.0 {
		t.Errorf("ParseValue float = %v, %v", v, err)
	}

	_, err = ParseValue(KindFloat, "fast")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}

	_, err = ParseValue(KindCommand, "")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for command, got %v", err)
	}
}

func TestAccessModeString(t *testing.T) {
	modes := []AccessMode{AccessUnavailable, AccessReadOnly, AccessWriteOnly, AccessReadWrite}
	for _, m := range modes {
		parsed, err := ParseAccessMode(m.String())
		if err != nil {
			t.Fatalf("ParseAccessMode(%q): %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("ParseAccessMode(%q) = %v, want %v", m.String(), parsed, m)
		}
	}

	if !AccessReadWrite.CanRead() || !AccessReadWrite.CanWrite() {
		t.Error("RW must be readable and writable")
	}
	if AccessReadOnly.CanWrite() {
		t.Error("RO must not be writable")
	}
	if AccessWriteOnly.CanRead() {
		t.Error("WO must not be readable")
	}
}

package feature

import (
	"fmt"
	"strings"
)

// AccessMode is the currently permitted read/write capability of a feature.
type AccessMode uint8

const (
	// AccessRead allows reading the feature value.
	AccessRead AccessMode = 1 << iota

	// AccessWrite allows writing the feature value (or executing a command).
	AccessWrite
)

// Common access combinations.
const (
	// AccessUnavailable means the feature is implemented but currently
	// neither readable nor writable.
	AccessUnavailable AccessMode = 0

	// AccessReadOnly is read only.
	AccessReadOnly = AccessRead

	// AccessWriteOnly is write only.
	AccessWriteOnly = AccessWrite

	// AccessReadWrite is read and write.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a AccessMode) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a AccessMode) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the GenICam short notation (NA, RO, WO, RW).
func (a AccessMode) String() string {
	switch a & AccessReadWrite {
	case AccessReadOnly:
		return "RO"
	case AccessWriteOnly:
		return "WO"
	case AccessReadWrite:
		return "RW"
	default:
		return "NA"
	}
}

// ParseAccessMode parses the GenICam short notation. It also accepts the
// lower-case forms "", "r", "w" and "rw".
func ParseAccessMode(s string) (AccessMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NA", "":
		return AccessUnavailable, nil
	case "RO", "R":
		return AccessReadOnly, nil
	case "WO", "W":
		return AccessWriteOnly, nil
	case "RW":
		return AccessReadWrite, nil
	default:
		return AccessUnavailable, fmt.Errorf("unknown access mode %q", s)
	}
}

// Kind identifies the type of a feature. It is fixed at discovery.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindEnumeration
	KindCommand
	KindString
)

// String returns the kind name.
func (k Kind) String() string {
	names := []string{
		"Unknown", "Boolean", "Integer", "Float", "Enumeration", "Command", "String",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// HasValue returns true for kinds that carry a value (everything except
// Command).
func (k Kind) HasValue() bool {
	switch k {
	case KindBoolean, KindInteger, KindFloat, KindEnumeration, KindString:
		return true
	default:
		return false
	}
}

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k := KindBoolean; k <= KindString; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown feature kind %q", s)
}

// Visibility is the recommended user level of a feature.
type Visibility uint8

const (
	VisibilityBeginner Visibility = iota
	VisibilityExpert
	VisibilityGuru
	VisibilityInvisible
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityBeginner:
		return "Beginner"
	case VisibilityExpert:
		return "Expert"
	case VisibilityGuru:
		return "Guru"
	case VisibilityInvisible:
		return "Invisible"
	default:
		return "Unknown"
	}
}

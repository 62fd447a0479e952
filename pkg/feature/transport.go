package feature

import "context"

// Descriptor describes one feature as enumerated by the device.
type Descriptor struct {
	// Name is the unique, device-defined feature name.
	Name string

	// Kind is the feature type.
	Kind Kind

	// DisplayName is a human-readable name.
	DisplayName string

	// Description is a human-readable description.
	Description string

	// Tooltip is a short help text.
	Tooltip string

	// Unit is the physical unit (Float only, may be empty).
	Unit string

	// Visibility is the recommended user level.
	Visibility Visibility

	// Implemented is false when the device reports the feature as wholly
	// not implemented. Such features never enter a Map.
	Implemented bool
}

// IntRange is the live range of an Integer feature.
type IntRange struct {
	Min int64
	Max int64
	// Inc is the increment; values must equal Min + k*Inc. Zero or one
	// means any value in range.
	Inc int64
}

// FloatRange is the live range of a Float feature.
type FloatRange struct {
	Min float64
	Max float64
}

// Transport is the node-map access capability of a device.
//
// Values crossing the transport are bool, int64, float64 or string,
// depending on the feature kind. Implementations must be safe for
// concurrent use and must report live device state on every call.
type Transport interface {
	// Features enumerates all features in device order.
	Features(ctx context.Context) ([]Descriptor, error)

	// AccessMode returns the current access mode of a feature.
	AccessMode(name string) (AccessMode, error)

	// Read returns the current value of a feature.
	Read(name string) (any, error)

	// Write sets the value of a feature.
	Write(name string, value any) error

	// Execute triggers a command feature.
	Execute(name string) error

	// IntRange returns the current range of an Integer feature.
	IntRange(name string) (IntRange, error)

	// FloatRange returns the current range of a Float feature.
	FloatRange(name string) (FloatRange, error)

	// Symbols returns the currently valid symbols of an Enumeration feature.
	Symbols(name string) ([]string, error)
}

// Subscriber is notified after every write and command execution that went
// through a node of a Map. err is nil on success.
type Subscriber interface {
	// OnFeatureWritten is called after a SetValue attempt.
	OnFeatureWritten(name string, value any, err error)

	// OnCommandExecuted is called after an Execute attempt.
	OnCommandExecuted(name string, err error)
}

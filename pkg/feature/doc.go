// Package feature implements the GenICam feature abstraction layer.
//
// # Nodes
//
// A feature is one named, typed, independently accessible device setting or
// action. Each feature is exposed as a Node whose concrete type depends on
// its kind:
//
//	Boolean      bool value
//	Integer      int64 value with live min/max/increment
//	Float        float64 value with live min/max and a static unit
//	Enumeration  symbolic string value from a live set of valid values
//	String       free-form string value
//	Command      no value, Execute triggers a device action
//
// Nodes do not cache anything read from the device. The access mode, the
// range constraints and the valid enumeration symbols are queried from the
// Transport on every call, because writing one feature (for example
// GainAuto=Continuous) can silently change what is allowed on another
// (Gain becomes read-only).
//
// # Map
//
// A Map is the ordered, read-only collection of all implemented features of
// one device. It is built once from the Transport's feature enumeration and
// its key set never changes afterwards:
//
//	m, err := feature.NewMap(ctx, transport)
//	gain, err := m.Float("Gain")
//	err = gain.SetFloat(4.0)
//	if errors.Is(err, feature.ErrAccessDenied) {
//	    // GainAuto is probably active
//	}
//
// # Errors
//
// All node operations return *Error values wrapping one of the sentinel
// errors (ErrAccessDenied, ErrInvalidValue, ErrDeviceRejected,
// ErrUnknownFeature, ErrKindMismatch), so callers can use errors.Is.
package feature

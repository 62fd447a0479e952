package log

import (
	"time"
)

// Event represents a camera event captured by the library.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// CameraID identifies the camera (device ID reported by discovery).
	CameraID string `cbor:"2,keyasint"`

	// SessionID is the acquisition session UUID, set while acquiring.
	SessionID string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Feature     *FeatureEvent     `cbor:"10,keyasint,omitempty"` // Feature writes and commands
	Config      *ConfigEvent      `cbor:"11,keyasint,omitempty"` // Dump/apply summaries
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Camera/session state
	Frame       *FrameEvent       `cbor:"13,keyasint,omitempty"` // Received frames
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryFeature indicates a feature write or command execution.
	CategoryFeature Category = 0
	// CategoryConfig indicates a configuration dump, load or apply.
	CategoryConfig Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryFrame indicates a received frame.
	CategoryFrame Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFeature:
		return "FEATURE"
	case CategoryConfig:
		return "CONFIG"
	case CategoryState:
		return "STATE"
	case CategoryFrame:
		return "FRAME"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as returned by String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryFeature; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// FeatureOp distinguishes feature writes from command executions.
type FeatureOp uint8

const (
	// FeatureOpWrite indicates a value write.
	FeatureOpWrite FeatureOp = 0
	// FeatureOpExecute indicates a command execution.
	FeatureOpExecute FeatureOp = 1
)

// String returns the operation name.
func (o FeatureOp) String() string {
	switch o {
	case FeatureOpWrite:
		return "WRITE"
	case FeatureOpExecute:
		return "EXECUTE"
	default:
		return "UNKNOWN"
	}
}

// FeatureEvent captures one write or command attempt.
type FeatureEvent struct {
	// Name is the feature name.
	Name string `cbor:"1,keyasint"`

	// Op is the operation attempted.
	Op FeatureOp `cbor:"2,keyasint"`

	// Value is the requested value (writes only).
	Value any `cbor:"3,keyasint,omitempty"`

	// Error is the failure message; empty on success.
	Error string `cbor:"4,keyasint,omitempty"`
}

// ConfigOp identifies a configuration operation.
type ConfigOp uint8

const (
	// ConfigOpDump indicates a snapshot was captured.
	ConfigOpDump ConfigOp = 0
	// ConfigOpApply indicates a snapshot was applied.
	ConfigOpApply ConfigOp = 1
	// ConfigOpRead indicates a file was parsed without applying it.
	ConfigOpRead ConfigOp = 2
)

// String returns the operation name.
func (o ConfigOp) String() string {
	switch o {
	case ConfigOpDump:
		return "DUMP"
	case ConfigOpApply:
		return "APPLY"
	case ConfigOpRead:
		return "READ"
	default:
		return "UNKNOWN"
	}
}

// ConfigEvent summarizes a configuration operation.
type ConfigEvent struct {
	// Op is the operation.
	Op ConfigOp `cbor:"1,keyasint"`

	// Path is the file involved, if any.
	Path string `cbor:"2,keyasint,omitempty"`

	// Features is the number of snapshot entries.
	Features int `cbor:"3,keyasint"`

	// Applied, Skipped and Failed count apply outcomes.
	Applied int `cbor:"4,keyasint,omitempty"`
	Skipped int `cbor:"5,keyasint,omitempty"`
	Failed  int `cbor:"6,keyasint,omitempty"`

	// Passes is the number of apply passes run.
	Passes int `cbor:"7,keyasint,omitempty"`
}

// StateChangeEvent captures camera and acquisition lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityCamera indicates a camera open/close.
	StateEntityCamera StateEntity = 0
	// StateEntityAcquisition indicates an acquisition session transition.
	StateEntityAcquisition StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityCamera:
		return "CAMERA"
	case StateEntityAcquisition:
		return "ACQUISITION"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures the description of a received frame. Pixel data is
// never logged.
type FrameEvent struct {
	// FrameID is the device frame counter.
	FrameID uint64 `cbor:"1,keyasint"`

	// Width and Height are the image dimensions.
	Width  int `cbor:"2,keyasint"`
	Height int `cbor:"3,keyasint"`

	// PixelFormat is the PixelFormat symbol.
	PixelFormat string `cbor:"4,keyasint"`

	// Size is the payload size in bytes.
	Size int `cbor:"5,keyasint"`

	// DeviceTimestamp is the device tick count at exposure.
	DeviceTimestamp uint64 `cbor:"6,keyasint,omitempty"`

	// Wait is how long GetFrame blocked. Stored as nanoseconds.
	Wait time.Duration `cbor:"7,keyasint,omitempty"`
}

// ErrorEventData captures errors.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`

	// Feature is the feature involved, if any.
	Feature string `cbor:"3,keyasint,omitempty"`
}

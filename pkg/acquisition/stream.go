package acquisition

import (
	"context"
	"errors"
	"time"
)

// ErrStreamTimeout is returned by Stream.PullFrame when no frame arrived in
// time.
var ErrStreamTimeout = errors.New("stream timeout")

// StreamSettings are the acquisition settings read from the feature map when
// a session starts.
type StreamSettings struct {
	// AcquisitionMode is the AcquisitionMode symbol (Continuous,
	// SingleFrame, MultiFrame).
	AcquisitionMode string

	// TriggerMode is the TriggerMode symbol (On, Off).
	TriggerMode string

	// TriggerSource is the TriggerSource symbol (Software, Line0, ...).
	TriggerSource string

	// PixelFormat is the PixelFormat symbol.
	PixelFormat string

	// BufferCount is the number of frame buffers to announce.
	BufferCount int
}

// RawFrame is a completed frame buffer as delivered by the stream.
type RawFrame struct {
	// ID is the device frame counter.
	ID uint64

	// Payload is the image data. The stream hands ownership to the caller.
	Payload []byte

	Width       int
	Height      int
	PixelFormat string

	// DeviceTimestamp is the device tick count at exposure.
	DeviceTimestamp uint64
}

// Stream is the data stream capability of a device.
//
// StartStream announces buffers and begins delivery; StopStream flushes and
// revokes them. PullFrame blocks until a completed frame is available or the
// timeout expires and never returns a partially filled buffer.
type Stream interface {
	StartStream(ctx context.Context, settings StreamSettings) error
	StopStream() error
	PullFrame(timeout time.Duration) (*RawFrame, error)
}

package acquisition

import (
	"image"
	"time"

	"github.com/genicam-go/genicam/pkg/pixelformat"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// DefaultMetadataFeatures are the features attached to every frame when the
// device implements them.
var DefaultMetadataFeatures = []string{sfnc.Gain, sfnc.ExposureTime, sfnc.PixelFormat, sfnc.PixelColorFilter}

// Frame is an image retrieved from an acquisition session.
type Frame struct {
	// ID is the device frame counter.
	ID uint64

	// SessionID identifies the session that produced the frame.
	SessionID string

	Payload     []byte
	Width       int
	Height      int
	PixelFormat string

	// DeviceTimestamp is the device tick count at exposure.
	DeviceTimestamp uint64

	// HostTimestamp is when the frame was handed to the caller.
	HostTimestamp time.Time

	// Metadata holds the values of the metadata features, read right after
	// the frame was retrieved.
	Metadata map[string]any
}

// Image decodes the payload according to the frame's pixel format.
func (f *Frame) Image() (image.Image, error) {
	return pixelformat.Decode(f.PixelFormat, f.Payload, f.Width, f.Height)
}

// ValidRange returns the valid sample range of the frame's pixel format.
func (f *Frame) ValidRange() (pixelformat.Range, error) {
	return pixelformat.ValidRange(f.PixelFormat)
}

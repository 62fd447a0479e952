package camera

import (
	"context"
	"strings"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/feature"
)

// Info identifies a device as reported by discovery.
type Info struct {
	// ID is the transport-layer device ID, unique per host.
	ID string

	Vendor string
	Model  string
	Serial string

	// TLType is the transport layer type (GEV, U3V, ...).
	TLType string

	// UserID is the user-assignable device name. May be empty.
	UserID string
}

// Key returns "<Vendor>_<Model>_<Serial>_<TLType>" with path separators and
// spaces replaced, suitable as a file name stem.
func (i Info) Key() string {
	r := strings.NewReplacer("/", "-", `\`, "-", " ", "-", ":", "-")
	return r.Replace(strings.Join([]string{i.Vendor, i.Model, i.Serial, i.TLType}, "_"))
}

// String returns "Vendor Model (Serial)".
func (i Info) String() string {
	return i.Vendor + " " + i.Model + " (" + i.Serial + ")"
}

// Device is a GenICam device: a node map, a data stream and an identity.
//
// Open must be called before the transport or stream are used; Close
// releases the device. Implementations must be safe for concurrent use.
type Device interface {
	feature.Transport
	acquisition.Stream

	Info() Info
	Open(ctx context.Context) error
	Close() error
}

// Discoverer enumerates the devices reachable through the loaded producers.
type Discoverer interface {
	Discover(ctx context.Context) ([]Device, error)
}

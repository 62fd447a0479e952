package sim

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/genicam-go/genicam/pkg/camera"
)

// Discoverer reports a changeable set of simulated devices. Devices can be
// plugged and unplugged between discoveries.
type Discoverer struct {
	mu      sync.Mutex
	devices []*Device
}

// Compile-time interface satisfaction check.
var _ camera.Discoverer = (*Discoverer)(nil)

// NewDiscoverer returns a discoverer reporting devices.
func NewDiscoverer(devices ...*Device) *Discoverer {
	return &Discoverer{devices: devices}
}

// NewFleet creates n simulated cameras with serials SIM-0001 .. SIM-000n and
// returns a discoverer for them.
func NewFleet(n int) (*Discoverer, error) {
	devices := make([]*Device, 0, n)
	for i := 1; i <= n; i++ {
		opts := DefaultOptions()
		opts.Serial = fmt.Sprintf("SIM-%04d", i)
		dev, err := New(opts)
		if err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}
	return NewDiscoverer(devices...), nil
}

// Discover returns the currently plugged devices.
func (d *Discoverer) Discover(ctx context.Context) ([]camera.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]camera.Device, len(d.devices))
	for i, dev := range d.devices {
		out[i] = dev
	}
	return out, nil
}

// Plug adds a device.
func (d *Discoverer) Plug(dev *Device) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.devices = append(d.devices, dev)
}

// Unplug removes the device with the given serial and reports whether it
// was present.
func (d *Discoverer) Unplug(serial string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := slices.IndexFunc(d.devices, func(dev *Device) bool { return dev.opts.Serial == serial })
	if i < 0 {
		return false
	}
	d.devices = slices.Delete(d.devices, i, i+1)
	return true
}

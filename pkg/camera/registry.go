package camera

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrCameraNotFound is returned when no camera matches a lookup.
var ErrCameraNotFound = errors.New("camera not found")

// Registry is the list of cameras reachable through a Discoverer.
//
// The list is only refreshed by Update. Cameras keep their identity across
// updates: a device that is still present maps to the same *Camera, so an
// initialized camera stays initialized.
type Registry struct {
	discoverer Discoverer
	opts       Options

	mu      sync.Mutex
	cameras []*Camera
}

// NewRegistry creates an empty registry. Call Update to populate it.
func NewRegistry(d Discoverer, opts Options) (*Registry, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Registry{discoverer: d, opts: opts}, nil
}

// Update rediscovers the devices. Cameras whose device disappeared are
// closed and removed; new devices get a closed Camera. The number of
// cameras is returned.
func (r *Registry) Update(ctx context.Context) (int, error) {
	devices, err := r.discoverer.Discover(ctx)
	if err != nil {
		return 0, fmt.Errorf("discover: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*Camera, 0, len(devices))
	for _, dev := range devices {
		info := dev.Info()
		i := slices.IndexFunc(r.cameras, func(c *Camera) bool {
			return c.dev == dev || (info.ID != "" && c.id == info.ID)
		})
		if i >= 0 {
			next = append(next, r.cameras[i])
			continue
		}
		c, err := New(dev, r.opts)
		if err != nil {
			return 0, err
		}
		next = append(next, c)
	}

	for _, c := range r.cameras {
		if slices.Contains(next, c) {
			continue
		}
		if c.Initialized() {
			_ = c.Close()
		}
		r.debugLog("camera removed", "camera", c.id)
	}

	r.cameras = next
	r.debugLog("registry updated", "cameras", len(next))
	return len(next), nil
}

// Len returns the number of cameras found by the last Update.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cameras)
}

// Cameras returns the cameras in discovery order.
func (r *Registry) Cameras() []*Camera {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cameras)
}

// At returns the camera at index i.
func (r *Registry) At(i int) (*Camera, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cameras) == 0 {
		return nil, ErrNoDevices
	}
	if i < 0 || i >= len(r.cameras) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrCameraNotFound, i, len(r.cameras))
	}
	return r.cameras[i], nil
}

// Get returns the camera whose serial number, device ID or user ID equals
// key.
func (r *Registry) Get(key string) (*Camera, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cameras) == 0 {
		return nil, ErrNoDevices
	}
	for _, c := range r.cameras {
		info := c.Info()
		if info.Serial == key || info.ID == key || (info.UserID != "" && info.UserID == key) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCameraNotFound, key)
}

// Close closes every initialized camera and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for _, c := range r.cameras {
		if !c.Initialized() {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.cameras = nil
	return firstErr
}

func (r *Registry) debugLog(msg string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Debug(msg, args...)
	}
}

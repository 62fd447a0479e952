package camera_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genicam-go/genicam/pkg/camera"
	"github.com/genicam-go/genicam/pkg/sim"
)

type failingDiscoverer struct{ err error }

func (f failingDiscoverer) Discover(context.Context) ([]camera.Device, error) {
	return nil, f.err
}

func newRegistry(t *testing.T, n int) (*sim.Discoverer, *camera.Registry) {
	t.Helper()
	fleet, err := sim.NewFleet(n)
	require.NoError(t, err)
	reg, err := camera.NewRegistry(fleet, camera.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })
	return fleet, reg
}

func TestRegistryEmptyUntilUpdate(t *testing.T) {
	_, reg := newRegistry(t, 2)

	assert.Equal(t, 0, reg.Len())
	_, err := reg.At(0)
	assert.ErrorIs(t, err, camera.ErrNoDevices)
	_, err = reg.Get("SIM-0001")
	assert.ErrorIs(t, err, camera.ErrNoDevices)

	n, err := reg.Update(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryLookup(t *testing.T) {
	_, reg := newRegistry(t, 3)
	_, err := reg.Update(context.Background())
	require.NoError(t, err)

	c, err := reg.At(1)
	require.NoError(t, err)
	assert.Equal(t, "SIM-0002", c.Info().Serial)

	_, err = reg.At(3)
	assert.ErrorIs(t, err, camera.ErrCameraNotFound)
	_, err = reg.At(-1)
	assert.ErrorIs(t, err, camera.ErrCameraNotFound)

	bySerial, err := reg.Get("SIM-0003")
	require.NoError(t, err)
	byID, err := reg.Get("Sim::SIM-0003")
	require.NoError(t, err)
	assert.Same(t, bySerial, byID)

	_, err = reg.Get("SIM-9999")
	assert.ErrorIs(t, err, camera.ErrCameraNotFound)

	cams := reg.Cameras()
	require.Len(t, cams, 3)
	cams[0] = nil
	first, _ := reg.At(0)
	assert.NotNil(t, first, "Cameras returns a copy")
}

func TestRegistryLookupByUserID(t *testing.T) {
	_, reg := newRegistry(t, 2)
	_, err := reg.Update(context.Background())
	require.NoError(t, err)

	c, _ := reg.At(0)
	require.NoError(t, c.Initialize(context.Background()))
	m, _ := c.Features()
	user, err := m.StringNode("DeviceUserID")
	require.NoError(t, err)
	require.NoError(t, user.SetText("left"))

	got, err := reg.Get("left")
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestRegistryUpdateKeepsIdentity(t *testing.T) {
	fleet, reg := newRegistry(t, 2)
	_, err := reg.Update(context.Background())
	require.NoError(t, err)

	first, _ := reg.Get("SIM-0001")
	require.NoError(t, first.Initialize(context.Background()))
	gone, _ := reg.Get("SIM-0002")
	require.NoError(t, gone.Initialize(context.Background()))

	opts := sim.DefaultOptions()
	opts.Serial = "SIM-0100"
	added, err := sim.New(opts)
	require.NoError(t, err)
	fleet.Plug(added)
	require.True(t, fleet.Unplug("SIM-0002"))

	n, err := reg.Update(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	again, err := reg.Get("SIM-0001")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.True(t, again.Initialized(), "surviving cameras stay initialized")

	assert.False(t, gone.Initialized(), "removed cameras are closed")
	_, err = reg.Get("SIM-0002")
	assert.ErrorIs(t, err, camera.ErrCameraNotFound)

	newest, err := reg.At(1)
	require.NoError(t, err)
	assert.Equal(t, "SIM-0100", newest.Info().Serial)
	assert.False(t, newest.Initialized())
}

func TestRegistryUpdateErrors(t *testing.T) {
	boom := errors.New("producer not loaded")
	reg, err := camera.NewRegistry(failingDiscoverer{err: boom}, camera.DefaultOptions())
	require.NoError(t, err)

	_, err = reg.Update(context.Background())
	assert.ErrorIs(t, err, boom)

	_, reg2 := newRegistry(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = reg2.Update(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistryClose(t *testing.T) {
	_, reg := newRegistry(t, 2)
	_, err := reg.Update(context.Background())
	require.NoError(t, err)
	c, _ := reg.At(0)
	require.NoError(t, c.Initialize(context.Background()))

	require.NoError(t, reg.Close())
	assert.False(t, c.Initialized())
	assert.Equal(t, 0, reg.Len())
}

func TestNewRegistryValidatesOptions(t *testing.T) {
	opts := camera.DefaultOptions()
	opts.BufferCount = 0
	_, err := camera.NewRegistry(failingDiscoverer{}, opts)
	assert.ErrorIs(t, err, camera.ErrInvalidOptions)
}

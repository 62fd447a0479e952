package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleet(t *testing.T) {
	disc, err := NewFleet(3)
	require.NoError(t, err)

	devices, err := disc.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 3)
	assert.Equal(t, "SIM-0003", devices[2].Info().Serial)

	assert.True(t, disc.Unplug("SIM-0002"))
	assert.False(t, disc.Unplug("SIM-0002"))

	extra, err := New(DefaultOptions())
	require.NoError(t, err)
	disc.Plug(extra)

	devices, err = disc.Discover(context.Background())
	require.NoError(t, err)
	var serials []string
	for _, d := range devices {
		serials = append(serials, d.Info().Serial)
	}
	assert.Equal(t, []string{"SIM-0001", "SIM-0003", "SIM-0001"}, serials)
}

func TestDiscoverCancelled(t *testing.T) {
	disc := NewDiscoverer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := disc.Discover(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

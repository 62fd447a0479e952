package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the sum of all samples of a counter or gauge family.
func gathered(t *testing.T, c *Collector, name string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				sum += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return sum
	}
	return 0
}

func TestNewCollector(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		c, err := NewCollector(nil)
		require.NoError(t, err)
		require.NotNil(t, c.Registry())
		assert.Equal(t, "genicam", c.config.Namespace)
		assert.Equal(t, "/metrics", c.config.Path)
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		c, err := NewCollector(&Config{Enabled: false})
		require.NoError(t, err)
		assert.Nil(t, c.Registry())

		c.RecordFeatureWrite("Gain", nil)
		c.RecordFrame("Mono8", 10, time.Millisecond)
		c.SetAcquiring(true)
		require.NoError(t, c.Start(context.Background()))
		require.NoError(t, c.Stop(context.Background()))
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewCollector(&Config{Enabled: true})
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = NewCollector(&Config{Enabled: true, Namespace: "x", Address: ":0", Path: "metrics"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.RecordFeatureWrite("Gain", errors.New("denied"))
	c.RecordCommand("AcquisitionStart", nil)
	c.RecordApply(1, 2, 3, time.Second)
	c.RecordFrame("Mono8", 1, time.Millisecond)
	c.RecordFrameTimeout()
	c.SetAcquiring(false)
	assert.NoError(t, c.Stop(context.Background()))
}

func TestRecording(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = ""
	c, err := NewCollector(cfg)
	require.NoError(t, err)

	c.RecordFeatureWrite("Gain", nil)
	c.RecordFeatureWrite("Gain", errors.New("read-only"))
	c.RecordCommand("TriggerSoftware", nil)
	c.RecordApply(3, 1, 2, 20*time.Millisecond)
	c.RecordFrame("Mono8", 100, 5*time.Millisecond)
	c.RecordFrame("Mono8", 100, 5*time.Millisecond)
	c.RecordFrameTimeout()
	c.SetAcquiring(true)

	assert.Equal(t, 2.0, gathered(t, c, "genicam_feature_writes_total"))
	assert.Equal(t, 1.0, gathered(t, c, "genicam_feature_commands_total"))
	assert.Equal(t, 6.0, gathered(t, c, "genicam_config_entries_total"))
	assert.Equal(t, 1.0, gathered(t, c, "genicam_config_apply_duration_seconds"))
	assert.Equal(t, 2.0, gathered(t, c, "genicam_acquisition_frames_total"))
	assert.Equal(t, 200.0, gathered(t, c, "genicam_acquisition_payload_bytes_total"))
	assert.Equal(t, 1.0, gathered(t, c, "genicam_acquisition_frame_timeouts_total"))
	assert.Equal(t, 1.0, gathered(t, c, "genicam_acquisition_sessions_total"))
	assert.Equal(t, 1.0, gathered(t, c, "genicam_acquisition_active"))

	c.SetAcquiring(false)
	assert.Equal(t, 0.0, gathered(t, c, "genicam_acquisition_active"))
	assert.Equal(t, 1.0, gathered(t, c, "genicam_acquisition_sessions_total"))
}

func TestHandlerServesMetrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConstLabels = map[string]string{"serial": "SIM-0001"}
	c, err := NewCollector(cfg)
	require.NoError(t, err)
	c.RecordCommand("AcquisitionStart", nil)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `genicam_feature_commands_total{command="AcquisitionStart",result="success",serial="SIM-0001"} 1`))
}

func TestStartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	c, err := NewCollector(cfg)
	require.NoError(t, err)

	require.NoError(t, c.Start(context.Background()))
	require.NoError(t, c.Start(context.Background()), "second Start is a no-op")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Stop(ctx))
}

func TestAcquiringCountsOverlappingSessions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = ""
	c, err := NewCollector(cfg)
	require.NoError(t, err)

	c.SetAcquiring(true)
	c.SetAcquiring(true)
	c.SetAcquiring(false)
	assert.Equal(t, 1.0, gathered(t, c, "genicam_acquisition_active"),
		"stopping one camera must not hide the other's running session")

	c.SetAcquiring(false)
	assert.Equal(t, 0.0, gathered(t, c, "genicam_acquisition_active"))
	assert.Equal(t, 2.0, gathered(t, c, "genicam_acquisition_sessions_total"))
}

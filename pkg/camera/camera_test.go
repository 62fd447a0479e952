package camera_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/camera"
	"github.com/genicam-go/genicam/pkg/config"
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/log"
	"github.com/genicam-go/genicam/pkg/metrics"
	"github.com/genicam-go/genicam/pkg/sim"
)

type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (c *captureLogger) Log(e log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureLogger) byCategory(cat log.Category) []log.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []log.Event
	for _, e := range c.events {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func newSimDevice(t *testing.T, serial string) *sim.Device {
	t.Helper()
	opts := sim.DefaultOptions()
	opts.Serial = serial
	dev, err := sim.New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dev.Close() })
	return dev
}

func newCamera(t *testing.T, serial string, events log.Logger) *camera.Camera {
	t.Helper()
	opts := camera.DefaultOptions()
	opts.ConfigDir = t.TempDir()
	opts.EventLogger = events
	cam, err := camera.New(newSimDevice(t, serial), opts)
	require.NoError(t, err)
	return cam
}

func initCamera(t *testing.T, serial string, events log.Logger) *camera.Camera {
	t.Helper()
	cam := newCamera(t, serial, events)
	require.NoError(t, cam.Initialize(context.Background()))
	t.Cleanup(func() {
		if cam.Initialized() {
			_ = cam.Close()
		}
	})
	return cam
}

func TestOptionsValidate(t *testing.T) {
	opts := camera.DefaultOptions()
	require.NoError(t, opts.Validate())

	bad := opts
	bad.BufferCount = 0
	assert.ErrorIs(t, bad.Validate(), camera.ErrInvalidOptions)

	bad = opts
	bad.ApplyPasses = 0
	assert.ErrorIs(t, bad.Validate(), camera.ErrInvalidOptions)

	_, err := camera.New(newSimDevice(t, "SIM-0001"), bad)
	assert.ErrorIs(t, err, camera.ErrInvalidOptions)
}

func TestCameraIdentity(t *testing.T) {
	cam := newCamera(t, "SIM-0042", nil)
	assert.Equal(t, "Sim::SIM-0042", cam.ID())
	assert.Equal(t, "GenICamSim_SimCam-640_SIM-0042_Sim", cam.Info().Key())
	assert.Equal(t, "GenICamSim SimCam-640 (SIM-0042)", cam.Info().String())
}

func TestCameraLifecycle(t *testing.T) {
	events := &captureLogger{}
	cam := newCamera(t, "SIM-0001", events)

	assert.False(t, cam.Initialized())
	_, err := cam.Features()
	assert.ErrorIs(t, err, camera.ErrNotInitialized)
	_, err = cam.Session()
	assert.ErrorIs(t, err, camera.ErrNotInitialized)
	assert.ErrorIs(t, cam.Close(), camera.ErrNotInitialized)

	require.NoError(t, cam.Initialize(context.Background()))
	assert.True(t, cam.Initialized())
	assert.ErrorIs(t, cam.Initialize(context.Background()), camera.ErrAlreadyInitialized)

	m, err := cam.Features()
	require.NoError(t, err)
	assert.True(t, m.Has("Width"))
	s, err := cam.Session()
	require.NoError(t, err)
	assert.Equal(t, acquisition.StateIdle, s.State())

	require.NoError(t, cam.Close())
	assert.False(t, cam.Initialized())

	states := events.byCategory(log.CategoryState)
	require.Len(t, states, 2)
	assert.Equal(t, log.StateEntityCamera, states[0].StateChange.Entity)
	assert.Equal(t, "OPEN", states[0].StateChange.NewState)
	assert.Equal(t, "CLOSED", states[1].StateChange.NewState)
	assert.Equal(t, "Sim::SIM-0001", states[0].CameraID)

	// A closed camera can be initialized again.
	require.NoError(t, cam.Initialize(context.Background()))
	require.NoError(t, cam.Close())
}

func TestCloseStopsAcquisition(t *testing.T) {
	cam := initCamera(t, "SIM-0001", nil)
	s, err := cam.Session()
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	require.NoError(t, cam.Close())
	assert.Equal(t, acquisition.StateIdle, s.State())
	_, err = s.GetFrame(10 * time.Millisecond)
	assert.ErrorIs(t, err, acquisition.ErrNotAcquiring)
}

func TestFeatureEventsAndMetrics(t *testing.T) {
	events := &captureLogger{}
	collector, err := metrics.NewCollector(metrics.DefaultConfig())
	require.NoError(t, err)

	opts := camera.DefaultOptions()
	opts.EventLogger = events
	opts.Metrics = collector
	cam, err := camera.New(newSimDevice(t, "SIM-0001"), opts)
	require.NoError(t, err)
	require.NoError(t, cam.Initialize(context.Background()))
	defer cam.Close()

	m, _ := cam.Features()
	width, err := m.Integer("Width")
	require.NoError(t, err)
	require.NoError(t, width.SetInt(320))
	assert.Error(t, width.SetInt(321))

	stop, err := m.Command("AcquisitionStop")
	require.NoError(t, err)
	require.NoError(t, stop.Execute())

	fe := events.byCategory(log.CategoryFeature)
	require.Len(t, fe, 3)
	assert.Equal(t, "Width", fe[0].Feature.Name)
	assert.Equal(t, log.FeatureOpWrite, fe[0].Feature.Op)
	assert.Empty(t, fe[0].Feature.Error)
	assert.NotEmpty(t, fe[1].Feature.Error)
	assert.Equal(t, log.FeatureOpExecute, fe[2].Feature.Op)
	assert.Equal(t, "AcquisitionStop", fe[2].Feature.Name)

	families, err := collector.Registry().Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			counts[mf.GetName()] += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, counts["genicam_feature_writes_total"])
	assert.Equal(t, 1.0, counts["genicam_feature_commands_total"])
}

func TestAcquire(t *testing.T) {
	events := &captureLogger{}
	cam := initCamera(t, "SIM-0001", events)

	var got *acquisition.Frame
	err := cam.Acquire(context.Background(), func(s *acquisition.Session) error {
		f, err := s.GetFrame(2 * time.Second)
		got = f
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 640, got.Width)
	assert.Equal(t, 480, got.Height)
	assert.Equal(t, "Mono8", got.PixelFormat)

	s, _ := cam.Session()
	assert.Equal(t, acquisition.StateIdle, s.State())

	var executed []string
	for _, e := range events.byCategory(log.CategoryFeature) {
		if e.Feature.Op == log.FeatureOpExecute {
			executed = append(executed, e.Feature.Name)
		}
	}
	assert.Equal(t, []string{"AcquisitionStart", "AcquisitionStop"}, executed)
}

func TestAcquireStopsOnError(t *testing.T) {
	cam := initCamera(t, "SIM-0001", nil)
	boom := errors.New("processing failed")

	err := cam.Acquire(context.Background(), func(*acquisition.Session) error { return boom })
	assert.ErrorIs(t, err, boom)

	s, _ := cam.Session()
	assert.Equal(t, acquisition.StateIdle, s.State())
}

func TestAcquireNotInitialized(t *testing.T) {
	cam := newCamera(t, "SIM-0001", nil)
	err := cam.Acquire(context.Background(), func(*acquisition.Session) error { return nil })
	assert.ErrorIs(t, err, camera.ErrNotInitialized)
}

func TestDumpConfigDefaultPath(t *testing.T) {
	events := &captureLogger{}
	cam := initCamera(t, "SIM-0001", events)

	want, err := cam.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("genicam", "GenICamSim_SimCam-640_SIM-0001_Sim.yaml"),
		filepath.Join(filepath.Base(filepath.Dir(want)), filepath.Base(want)))

	path, err := cam.DumpConfig(context.Background(), "", false)
	require.NoError(t, err)
	assert.Equal(t, want, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# "+config.DefaultHeader+"\n"))
	assert.Contains(t, text, "# device: GenICamSim SimCam-640 (SIM-0001)\n")
	assert.Contains(t, text, "Width: 640\n")

	_, err = cam.DumpConfig(context.Background(), "", false)
	assert.ErrorIs(t, err, config.ErrFileExists)
	_, err = cam.DumpConfig(context.Background(), "", true)
	assert.NoError(t, err)

	ce := events.byCategory(log.CategoryConfig)
	require.Len(t, ce, 2)
	assert.Equal(t, log.ConfigOpDump, ce[0].Config.Op)
	assert.Equal(t, path, ce[0].Config.Path)
	assert.Positive(t, ce[0].Config.Features)
}

func TestDumpAndLoadConfigAcrossCameras(t *testing.T) {
	events := &captureLogger{}
	src := initCamera(t, "SIM-0001", nil)
	dst := initCamera(t, "SIM-0002", events)

	m, _ := src.Features()
	width, _ := m.Integer("Width")
	require.NoError(t, width.SetInt(320))
	pf, _ := m.Enumeration("PixelFormat")
	require.NoError(t, pf.SetSymbol("Mono16"))

	path := filepath.Join(t.TempDir(), "bench.toml")
	_, err := src.DumpConfig(context.Background(), path, false)
	require.NoError(t, err)

	res, err := dst.LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Contains(t, res.Applied, "Width")

	dm, _ := dst.Features()
	w, _ := dm.Integer("Width")
	v, err := w.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(320), v)

	ce := events.byCategory(log.CategoryConfig)
	require.Len(t, ce, 1)
	assert.Equal(t, log.ConfigOpApply, ce[0].Config.Op)
	assert.Equal(t, len(res.Applied), ce[0].Config.Applied)
	assert.Equal(t, 1, ce[0].Config.Passes)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cam := initCamera(t, "SIM-0001", nil)
	_, err := cam.LoadConfig(context.Background(), "")
	assert.ErrorIs(t, err, config.ErrFileNotFound)
}

func TestReadConfigOnClosedCamera(t *testing.T) {
	events := &captureLogger{}
	cam := newCamera(t, "SIM-0001", events)

	path := filepath.Join(t.TempDir(), "cam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Gain: 3.0\nNope: 1\n"), 0644))

	snap, err := cam.ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gain", "Nope"}, snap.Keys())

	ce := events.byCategory(log.CategoryConfig)
	require.Len(t, ce, 1)
	assert.Equal(t, log.ConfigOpRead, ce[0].Config.Op)
}

func TestApplyConfig(t *testing.T) {
	cam := initCamera(t, "SIM-0001", nil)
	snap := config.NewSnapshot()
	require.NoError(t, snap.Add("ReverseX", true))
	require.NoError(t, snap.Add("LUTEnable", true))

	res, err := cam.ApplyConfig(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, []string{"ReverseX"}, res.Applied)
	assert.Equal(t, config.SkipUnknownFeature, res.Skipped["LUTEnable"])
}

func TestDumpInfo(t *testing.T) {
	cam := initCamera(t, "SIM-0001", nil)

	path, err := cam.DumpInfo(context.Background(), "", false, feature.FilterOptions{
		Kinds: []feature.Kind{feature.KindCommand},
	})
	require.NoError(t, err)
	assert.Equal(t, "GenICamSim_SimCam-640_SIM-0001_Sim.features.yaml", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "AcquisitionStart:")
	assert.Contains(t, text, "TriggerSoftware:")
	assert.NotContains(t, text, "Width:")
}

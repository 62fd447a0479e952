package sim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

func openDevice(t *testing.T) *Device {
	t.Helper()
	d, err := New(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, d.Open(context.Background()))
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestNewValidatesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Serial = ""
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	opts = DefaultOptions()
	opts.SensorWidth = 8
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClosedDevice(t *testing.T) {
	d, err := New(DefaultOptions())
	require.NoError(t, err)

	_, err = d.Features(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	_, err = d.Read(sfnc.Gain)
	assert.ErrorIs(t, err, ErrClosed)

	require.NoError(t, d.Open(context.Background()))
	assert.ErrorIs(t, d.Open(context.Background()), ErrAlreadyOpen)
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
}

func TestInfo(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.DeviceUserID, "left"))

	info := d.Info()
	assert.Equal(t, "GenICamSim", info.Vendor)
	assert.Equal(t, "SIM-0001", info.Serial)
	assert.Equal(t, "Sim::SIM-0001", info.ID)
	assert.Equal(t, "left", info.UserID)
	assert.Equal(t, "GenICamSim_SimCam-640_SIM-0001_Sim", info.Key())
}

func TestFeaturesBuildMap(t *testing.T) {
	d := openDevice(t)

	m, err := feature.NewMap(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, sfnc.DeviceVendorName, m.Keys()[0])
	assert.False(t, m.Has(sfnc.LUTEnable), "unimplemented features are skipped")
	assert.True(t, m.Has(sfnc.TriggerSoftware))

	vendor, err := m.StringNode(sfnc.DeviceVendorName)
	require.NoError(t, err)
	v, err := vendor.Text()
	require.NoError(t, err)
	assert.Equal(t, "GenICamSim", v)
}

func TestGainAutoMakesGainReadOnly(t *testing.T) {
	d := openDevice(t)

	mode, err := d.AccessMode(sfnc.Gain)
	require.NoError(t, err)
	assert.Equal(t, feature.AccessReadWrite, mode)

	require.NoError(t, d.Write(sfnc.GainAuto, "Continuous"))
	mode, err = d.AccessMode(sfnc.Gain)
	require.NoError(t, err)
	assert.Equal(t, feature.AccessReadOnly, mode)

	err = d.Write(sfnc.Gain, 6.0)
	assert.ErrorIs(t, err, ErrNotWritable)
	v, _ := d.Read(sfnc.Gain)
	assert.Equal(t, 0.0, v)

	require.NoError(t, d.Write(sfnc.GainAuto, "Once"))
	v, _ = d.Read(sfnc.GainAuto)
	assert.Equal(t, "Off", v, "Once falls back to Off")
	require.NoError(t, d.Write(sfnc.Gain, 6.0))
}

func TestExposureAutoMakesExposureReadOnly(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.ExposureAuto, "Continuous"))

	mode, err := d.AccessMode(sfnc.ExposureTime)
	require.NoError(t, err)
	assert.Equal(t, feature.AccessReadOnly, mode)
}

func TestTLParamsLockedFreezesImageFormat(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.TLParamsLocked, int64(1)))

	for _, name := range []string{sfnc.Width, sfnc.Height, sfnc.PixelFormat} {
		mode, err := d.AccessMode(name)
		require.NoError(t, err)
		assert.Equal(t, feature.AccessReadOnly, mode, name)
	}
	mode, err := d.AccessMode(sfnc.OffsetX)
	require.NoError(t, err)
	assert.Equal(t, feature.AccessReadWrite, mode)

	require.NoError(t, d.Write(sfnc.TLParamsLocked, int64(0)))
	require.NoError(t, d.Write(sfnc.Width, int64(320)))
}

func TestTriggerSoftwareAvailability(t *testing.T) {
	d := openDevice(t)

	mode, err := d.AccessMode(sfnc.TriggerSoftware)
	require.NoError(t, err)
	assert.Equal(t, feature.AccessUnavailable, mode)
	assert.ErrorIs(t, d.Execute(sfnc.TriggerSoftware), ErrNotWritable)

	require.NoError(t, d.Write(sfnc.TriggerMode, "On"))
	mode, err = d.AccessMode(sfnc.TriggerSoftware)
	require.NoError(t, err)
	assert.Equal(t, feature.AccessWriteOnly, mode)
}

func TestWidthRangeFollowsOffset(t *testing.T) {
	d := openDevice(t)

	ir, err := d.IntRange(sfnc.Width)
	require.NoError(t, err)
	assert.Equal(t, feature.IntRange{Min: 16, Max: 640, Inc: 4}, ir)

	err = d.Write(sfnc.OffsetX, int64(64))
	assert.ErrorIs(t, err, ErrOutOfRange, "full width leaves no room for an offset")

	require.NoError(t, d.Write(sfnc.Width, int64(512)))
	require.NoError(t, d.Write(sfnc.OffsetX, int64(64)))
	ir, err = d.IntRange(sfnc.Width)
	require.NoError(t, err)
	assert.Equal(t, int64(576), ir.Max)

	assert.ErrorIs(t, d.Write(sfnc.Width, int64(514)), ErrBadIncrement)
}

func TestWriteValidation(t *testing.T) {
	d := openDevice(t)

	tests := []struct {
		name    string
		feature string
		value   any
		want    error
	}{
		{"bool type", sfnc.ReverseX, "yes", ErrValueType},
		{"float range", sfnc.Gain, 30.0, ErrOutOfRange},
		{"float NaN", sfnc.Gain, math.NaN(), ErrOutOfRange},
		{"symbol", sfnc.PixelFormat, "YUV", ErrBadSymbol},
		{"read only", sfnc.SensorWidth, int64(640), ErrNotWritable},
		{"command", sfnc.AcquisitionStart, true, ErrNotCommand},
		{"unknown", "Nope", 1, ErrNoSuchFeature},
		{"missing", sfnc.LUTEnable, true, ErrNoSuchFeature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, d.Write(tt.feature, tt.value), tt.want)
		})
	}
}

func TestInjectWriteError(t *testing.T) {
	d := openDevice(t)
	boom := errors.New("register write failed")

	d.InjectWriteError(sfnc.Gain, boom)
	assert.ErrorIs(t, d.Write(sfnc.Gain, 1.0), boom)

	d.InjectWriteError(sfnc.Gain, nil)
	assert.NoError(t, d.Write(sfnc.Gain, 1.0))
}

func TestComputedFeatures(t *testing.T) {
	d := openDevice(t)

	v, err := d.Read(sfnc.PayloadSize)
	require.NoError(t, err)
	assert.Equal(t, int64(640*480), v)

	v, err = d.Read(sfnc.PixelColorFilter)
	require.NoError(t, err)
	assert.Equal(t, "None", v)

	require.NoError(t, d.Write(sfnc.PixelFormat, "BayerGB12"))
	v, _ = d.Read(sfnc.PixelColorFilter)
	assert.Equal(t, "BayerGB", v)
	v, _ = d.Read(sfnc.PayloadSize)
	assert.Equal(t, int64(640*480*2), v)
}

// --- stream ---

func startStream(t *testing.T, d *Device, buffers int) {
	t.Helper()
	require.NoError(t, d.StartStream(context.Background(), acquisition.StreamSettings{BufferCount: buffers}))
}

func TestStreamLifecycle(t *testing.T) {
	d := openDevice(t)

	_, err := d.PullFrame(time.Millisecond)
	assert.ErrorIs(t, err, ErrStreamNotStarted)
	assert.ErrorIs(t, d.StopStream(), ErrStreamNotStarted)
	assert.ErrorIs(t, d.Execute(sfnc.AcquisitionStart), ErrStreamNotStarted)

	startStream(t, d, 4)
	assert.ErrorIs(t, d.StartStream(context.Background(), acquisition.StreamSettings{BufferCount: 4}), ErrStreamOpen)
	require.NoError(t, d.StopStream())
}

func TestFreeRunProducesFrames(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.AcquisitionFrameRate, 200.0))
	require.NoError(t, d.Write(sfnc.Width, int64(32)))
	require.NoError(t, d.Write(sfnc.Height, int64(16)))

	startStream(t, d, 8)
	require.NoError(t, d.Execute(sfnc.AcquisitionStart))

	f1, err := d.PullFrame(time.Second)
	require.NoError(t, err)
	f2, err := d.PullFrame(time.Second)
	require.NoError(t, err)

	assert.Equal(t, 32, f1.Width)
	assert.Equal(t, 16, f1.Height)
	assert.Equal(t, "Mono8", f1.PixelFormat)
	assert.Len(t, f1.Payload, 32*16)
	assert.Greater(t, f2.ID, f1.ID)
	assert.GreaterOrEqual(t, f2.DeviceTimestamp, f1.DeviceTimestamp)

	require.NoError(t, d.Execute(sfnc.AcquisitionStop))
	require.NoError(t, d.StopStream())
}

func TestSingleFrameMode(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.AcquisitionMode, "SingleFrame"))
	require.NoError(t, d.Write(sfnc.AcquisitionFrameRate, 200.0))

	startStream(t, d, 4)
	require.NoError(t, d.Execute(sfnc.AcquisitionStart))

	_, err := d.PullFrame(time.Second)
	require.NoError(t, err)
	_, err = d.PullFrame(50 * time.Millisecond)
	assert.ErrorIs(t, err, acquisition.ErrStreamTimeout)
	require.NoError(t, d.StopStream())
}

func TestSoftwareTrigger(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.TriggerMode, "On"))

	startStream(t, d, 4)
	require.NoError(t, d.Execute(sfnc.AcquisitionStart))

	_, err := d.PullFrame(20 * time.Millisecond)
	assert.ErrorIs(t, err, acquisition.ErrStreamTimeout, "no frames without a trigger")

	require.NoError(t, d.Execute(sfnc.TriggerSoftware))
	f, err := d.PullFrame(time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.ID)
	require.NoError(t, d.StopStream())
}

func TestHardwareTriggerLine(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.TriggerMode, "On"))
	require.NoError(t, d.Write(sfnc.TriggerSource, Line1))

	startStream(t, d, 4)
	require.NoError(t, d.Execute(sfnc.AcquisitionStart))

	require.NoError(t, d.FireLine(Line0))
	_, err := d.PullFrame(20 * time.Millisecond)
	assert.ErrorIs(t, err, acquisition.ErrStreamTimeout)

	require.NoError(t, d.FireLine(Line1))
	_, err = d.PullFrame(time.Second)
	require.NoError(t, err)

	assert.ErrorIs(t, d.FireLine("Line7"), ErrUnknownLine)
	require.NoError(t, d.StopStream())
}

func TestFullBuffersDropFrames(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.TriggerMode, "On"))

	startStream(t, d, 2)
	require.NoError(t, d.Execute(sfnc.AcquisitionStart))
	for range 5 {
		require.NoError(t, d.Execute(sfnc.TriggerSoftware))
	}
	assert.Equal(t, uint64(3), d.Dropped())
	require.NoError(t, d.StopStream())
}

func TestStopStreamUnblocksPull(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.TriggerMode, "On"))
	startStream(t, d, 2)

	done := make(chan error, 1)
	go func() {
		_, err := d.PullFrame(5 * time.Second)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, d.StopStream())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrStreamStopped)
	case <-time.After(time.Second):
		t.Fatal("PullFrame did not return after StopStream")
	}
}

func TestPatternRendering(t *testing.T) {
	d := openDevice(t)
	require.NoError(t, d.Write(sfnc.TriggerMode, "On"))
	require.NoError(t, d.Write(sfnc.Width, int64(16)))
	require.NoError(t, d.Write(sfnc.Height, int64(16)))
	require.NoError(t, d.Write(sfnc.PixelFormat, "Mono16"))

	startStream(t, d, 2)
	require.NoError(t, d.Execute(sfnc.AcquisitionStart))
	require.NoError(t, d.Execute(sfnc.TriggerSoftware))

	f, err := d.PullFrame(time.Second)
	require.NoError(t, err)
	require.Len(t, f.Payload, 16*16*2)
	// Horizontal ramp shifted by the frame counter, little endian.
	assert.Equal(t, byte(1), f.Payload[0])
	assert.Equal(t, byte(2), f.Payload[2])
	require.NoError(t, d.StopStream())
}

func TestRegistersFollowStandard(t *testing.T) {
	dev := openDevice(t)
	descs, err := dev.Features(context.Background())
	require.NoError(t, err)
	for _, d := range descs {
		assert.True(t, sfnc.IsStandard(d.Name), d.Name)
		assert.True(t, sfnc.Conforms(d), "%s is a %s", d.Name, d.Kind)
	}
}

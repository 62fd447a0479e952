package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/camera"
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/pixelformat"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// Device errors.
var (
	ErrClosed        = errors.New("device not open")
	ErrAlreadyOpen   = errors.New("device already open")
	ErrNoSuchFeature = errors.New("no such feature")
	ErrNotCommand    = errors.New("feature is not a command")
	ErrInvalidConfig = errors.New("invalid simulator options")
)

// Options configures a simulated camera.
type Options struct {
	Vendor string
	Model  string
	Serial string
	TLType string

	// SensorWidth and SensorHeight are the full sensor resolution.
	SensorWidth  int64
	SensorHeight int64

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultOptions returns Options for a small monochrome camera.
func DefaultOptions() Options {
	return Options{
		Vendor:       "GenICamSim",
		Model:        "SimCam-640",
		Serial:       "SIM-0001",
		TLType:       "Sim",
		SensorWidth:  640,
		SensorHeight: 480,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.Serial == "" {
		return fmt.Errorf("%w: serial is required", ErrInvalidConfig)
	}
	if o.SensorWidth < 16 || o.SensorHeight < 16 {
		return fmt.Errorf("%w: sensor %dx%d too small", ErrInvalidConfig, o.SensorWidth, o.SensorHeight)
	}
	return nil
}

// Device is a simulated GenICam camera. It implements camera.Device.
//
// The device enforces the dependency rules of a typical area-scan camera:
// Gain and ExposureTime are read-only while their auto feature is active,
// Width, Height and PixelFormat are read-only while TLParamsLocked is 1,
// TriggerSoftware is unavailable unless TriggerMode is On, and the maximum
// Width/Height shrink with OffsetX/OffsetY.
type Device struct {
	opts Options
	info camera.Info

	mu        sync.RWMutex
	open      bool
	order     []string
	registers map[string]*register
	failWrite map[string]error
	epoch     time.Time

	// stream state, guarded by mu
	streaming bool
	acquiring bool
	frames    chan *acquisition.RawFrame
	stop      chan struct{}
	halt      chan struct{}
	wg        sync.WaitGroup
	frameID   uint64
	remaining int64
	dropped   uint64
}

// Compile-time interface satisfaction check.
var _ camera.Device = (*Device)(nil)

// New creates a closed simulated camera.
func New(opts Options) (*Device, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	d := &Device{
		opts: opts,
		info: camera.Info{
			ID:     opts.TLType + "::" + opts.Serial,
			Vendor: opts.Vendor,
			Model:  opts.Model,
			Serial: opts.Serial,
			TLType: opts.TLType,
		},
		registers: make(map[string]*register),
		failWrite: make(map[string]error),
	}
	for _, spec := range defaultRegisters(opts) {
		d.order = append(d.order, spec.Name)
		d.registers[spec.Name] = newRegister(spec)
	}
	return d, nil
}

// Info returns the device identity.
func (d *Device) Info() camera.Info {
	d.mu.RLock()
	defer d.mu.RUnlock()
	info := d.info
	if r, ok := d.registers[sfnc.DeviceUserID]; ok {
		info.UserID, _ = r.value.(string)
	}
	return info
}

// Open opens the device.
func (d *Device) Open(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		return ErrAlreadyOpen
	}
	d.open = true
	d.epoch = time.Now()
	d.debugLog("device opened", "serial", d.opts.Serial)
	return nil
}

// Close stops a running stream and closes the device. Closing a closed
// device is a no-op.
func (d *Device) Close() error {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return nil
	}
	d.stopStreamLocked()
	d.open = false
	d.mu.Unlock()

	d.wg.Wait()
	d.debugLog("device closed", "serial", d.opts.Serial)
	return nil
}

// InjectWriteError makes every following write of name fail with err,
// simulating a device that rejects the value. A nil err removes the fault.
func (d *Device) InjectWriteError(name string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.failWrite, name)
		return
	}
	d.failWrite[name] = err
}

// Dropped returns the number of frames discarded because all buffers were
// full.
func (d *Device) Dropped() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dropped
}

// --- feature.Transport ---

// Features enumerates all registers in device order.
func (d *Device) Features(ctx context.Context) ([]feature.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.open {
		return nil, ErrClosed
	}
	descs := make([]feature.Descriptor, 0, len(d.order))
	for _, name := range d.order {
		descs = append(descs, d.registers[name].spec.descriptor())
	}
	return descs, nil
}

// AccessMode returns the live access mode of a feature.
func (d *Device) AccessMode(name string) (feature.AccessMode, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return feature.AccessUnavailable, err
	}
	return d.accessLocked(r), nil
}

// Read returns the current value of a feature.
func (d *Device) Read(name string) (any, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return nil, err
	}
	if !d.accessLocked(r).CanRead() {
		return nil, fmt.Errorf("%s: %w", name, ErrNotReadable)
	}
	switch name {
	case sfnc.PayloadSize:
		return d.payloadSizeLocked(), nil
	case sfnc.PixelColorFilter:
		if info, err := pixelformat.Lookup(d.stringLocked(sfnc.PixelFormat)); err == nil && info.Bayer {
			return sfnc.PixelColorFilterBayerGB, nil
		}
		return sfnc.PixelColorFilterNone, nil
	}
	return r.value, nil
}

// Write sets the value of a feature after checking the live access mode and
// constraints.
func (d *Device) Write(name string, value any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return err
	}
	if r.spec.Kind == feature.KindCommand {
		return fmt.Errorf("%s: %w", name, ErrNotCommand)
	}
	if !d.accessLocked(r).CanWrite() {
		return fmt.Errorf("%s: %w", name, ErrNotWritable)
	}
	if err := d.failWrite[name]; err != nil {
		return err
	}

	v, err := r.coerce(value, d.intRangeLocked(r), d.floatRangeLocked(r), d.symbolsLocked(r))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	// "Once" runs the auto function a single time and falls back to Off.
	if (name == sfnc.GainAuto || name == sfnc.ExposureAuto) && v == sfnc.GainAutoOnce {
		v = sfnc.GainAutoOff
	}
	r.value = v
	d.debugLog("feature written", "feature", name, "value", v)
	return nil
}

// Execute triggers a command feature.
func (d *Device) Execute(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return err
	}
	if r.spec.Kind != feature.KindCommand {
		return fmt.Errorf("%s: %w", name, ErrNotCommand)
	}
	if !d.accessLocked(r).CanWrite() {
		return fmt.Errorf("%s: %w", name, ErrNotWritable)
	}

	switch name {
	case sfnc.AcquisitionStart:
		return d.acquisitionStartLocked()
	case sfnc.AcquisitionStop:
		d.acquisitionStopLocked()
	case sfnc.TriggerSoftware:
		if d.triggerSourceLocked() == sfnc.TriggerSourceSoftware {
			d.triggerLocked()
		}
	}
	d.debugLog("command executed", "feature", name)
	return nil
}

// IntRange returns the live range of an Integer feature.
func (d *Device) IntRange(name string) (feature.IntRange, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return feature.IntRange{}, err
	}
	if r.spec.Kind != feature.KindInteger {
		return feature.IntRange{}, fmt.Errorf("%s: %w", name, ErrValueType)
	}
	return d.intRangeLocked(r), nil
}

// FloatRange returns the live range of a Float feature.
func (d *Device) FloatRange(name string) (feature.FloatRange, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return feature.FloatRange{}, err
	}
	if r.spec.Kind != feature.KindFloat {
		return feature.FloatRange{}, fmt.Errorf("%s: %w", name, ErrValueType)
	}
	return d.floatRangeLocked(r), nil
}

// Symbols returns the valid symbols of an Enumeration feature.
func (d *Device) Symbols(name string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, err := d.lookupLocked(name)
	if err != nil {
		return nil, err
	}
	if r.spec.Kind != feature.KindEnumeration {
		return nil, fmt.Errorf("%s: %w", name, ErrValueType)
	}
	return d.symbolsLocked(r), nil
}

// --- dependency rules ---

func (d *Device) lookupLocked(name string) (*register, error) {
	if !d.open {
		return nil, ErrClosed
	}
	r, ok := d.registers[name]
	if !ok || r.spec.Missing {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFeature, name)
	}
	return r, nil
}

func (d *Device) accessLocked(r *register) feature.AccessMode {
	mode := r.spec.Access
	switch r.spec.Name {
	case sfnc.Gain:
		if d.stringLocked(sfnc.GainAuto) != sfnc.GainAutoOff {
			mode &^= feature.AccessWrite
		}
	case sfnc.ExposureTime:
		if d.stringLocked(sfnc.ExposureAuto) != sfnc.ExposureAutoOff {
			mode &^= feature.AccessWrite
		}
	case sfnc.Width, sfnc.Height, sfnc.PixelFormat:
		if d.intLocked(sfnc.TLParamsLocked) == 1 {
			mode &^= feature.AccessWrite
		}
	case sfnc.TriggerSoftware:
		if d.stringLocked(sfnc.TriggerMode) != sfnc.TriggerModeOn {
			mode = feature.AccessUnavailable
		}
	}
	return mode
}

func (d *Device) intRangeLocked(r *register) feature.IntRange {
	ir := feature.IntRange{Min: r.spec.IntMin, Max: r.spec.IntMax, Inc: r.spec.IntInc}
	switch r.spec.Name {
	case sfnc.Width:
		ir.Max = d.opts.SensorWidth - d.intLocked(sfnc.OffsetX)
	case sfnc.Height:
		ir.Max = d.opts.SensorHeight - d.intLocked(sfnc.OffsetY)
	case sfnc.OffsetX:
		ir.Max = d.opts.SensorWidth - d.intLocked(sfnc.Width)
	case sfnc.OffsetY:
		ir.Max = d.opts.SensorHeight - d.intLocked(sfnc.Height)
	case sfnc.PayloadSize:
		size := d.payloadSizeLocked()
		ir.Min, ir.Max = size, size
	}
	return ir
}

func (d *Device) floatRangeLocked(r *register) feature.FloatRange {
	return feature.FloatRange{Min: r.spec.FloatMin, Max: r.spec.FloatMax}
}

func (d *Device) symbolsLocked(r *register) []string {
	return append([]string(nil), r.spec.Symbols...)
}

func (d *Device) payloadSizeLocked() int64 {
	info, err := pixelformat.Lookup(d.stringLocked(sfnc.PixelFormat))
	if err != nil {
		return 0
	}
	return int64(info.FrameSize(int(d.intLocked(sfnc.Width)), int(d.intLocked(sfnc.Height))))
}

func (d *Device) stringLocked(name string) string {
	s, _ := d.registers[name].value.(string)
	return s
}

func (d *Device) intLocked(name string) int64 {
	v, _ := d.registers[name].value.(int64)
	return v
}

func (d *Device) floatLocked(name string) float64 {
	v, _ := d.registers[name].value.(float64)
	return v
}

func (d *Device) triggerSourceLocked() string {
	return d.stringLocked(sfnc.TriggerSource)
}

func (d *Device) debugLog(msg string, args ...any) {
	if d.opts.Logger != nil {
		d.opts.Logger.Debug(msg, args...)
	}
}

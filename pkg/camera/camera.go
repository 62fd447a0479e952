package camera

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/config"
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/log"
	"github.com/genicam-go/genicam/pkg/metrics"
)

// Camera errors.
var (
	ErrNotInitialized     = errors.New("camera not initialized")
	ErrAlreadyInitialized = errors.New("camera already initialized")
	ErrNoDevices          = errors.New("no devices found")
	ErrInvalidOptions     = errors.New("invalid camera options")
)

// Camera lifecycle states reported in state change events.
const (
	stateClosed = "CLOSED"
	stateOpen   = "OPEN"
)

// Options configures a Camera.
type Options struct {
	// ConfigDir replaces the user configuration directory as the root of
	// the default configuration path. Empty means os.UserConfigDir.
	ConfigDir string

	// BufferCount is the number of frame buffers per acquisition.
	BufferCount int

	// MetadataFeatures are attached to every frame.
	MetadataFeatures []string

	// ApplyPasses is the number of passes LoadConfig runs.
	ApplyPasses int

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives feature, configuration, state and frame events.
	// If nil, no events are emitted.
	EventLogger log.Logger

	// Metrics records camera metrics. May be nil.
	Metrics *metrics.Collector
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	acq := acquisition.DefaultOptions()
	return Options{
		BufferCount:      acq.BufferCount,
		MetadataFeatures: acq.MetadataFeatures,
		ApplyPasses:      1,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.BufferCount < 1 {
		return fmt.Errorf("%w: buffer count %d", ErrInvalidOptions, o.BufferCount)
	}
	if o.ApplyPasses < 1 {
		return fmt.Errorf("%w: apply passes %d", ErrInvalidOptions, o.ApplyPasses)
	}
	return nil
}

// Camera owns one device together with its feature map and acquisition
// session.
//
// A Camera is created closed. Initialize opens the device and builds the
// feature map; Close stops a running acquisition and releases the device.
// Features and Session fail with ErrNotInitialized while closed.
type Camera struct {
	dev  Device
	id   string
	opts Options

	mu       sync.Mutex
	features *feature.Map
	session  *acquisition.Session
}

// New creates a closed camera for dev.
func New(dev Device, opts Options) (*Camera, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	id := dev.Info().ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Camera{dev: dev, id: id, opts: opts}, nil
}

// ID returns the identifier used in emitted events.
func (c *Camera) ID() string {
	return c.id
}

// Info returns the device identity. UserID is read live.
func (c *Camera) Info() Info {
	return c.dev.Info()
}

// Initialize opens the device, builds the feature map and prepares the
// acquisition session.
func (c *Camera) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.features != nil {
		return ErrAlreadyInitialized
	}

	if err := c.dev.Open(ctx); err != nil {
		return fmt.Errorf("open %s: %w", c.id, err)
	}

	m, err := feature.NewMap(ctx, c.dev,
		feature.WithSubscriber(eventBridge{c}),
		feature.WithLogger(c.opts.Logger))
	if err != nil {
		_ = c.dev.Close()
		return err
	}

	s, err := acquisition.NewSession(m, c.dev, acquisition.Options{
		BufferCount:      c.opts.BufferCount,
		MetadataFeatures: c.opts.MetadataFeatures,
		CameraID:         c.id,
		Logger:           c.opts.Logger,
		EventLogger:      c.opts.EventLogger,
		Metrics:          c.opts.Metrics,
	})
	if err != nil {
		_ = c.dev.Close()
		return err
	}

	c.features = m
	c.session = s
	c.debugLog("camera initialized", "camera", c.id, "features", m.Len())
	c.emitState(stateClosed, stateOpen, "initialize")
	return nil
}

// Initialized reports whether Initialize succeeded and Close was not
// called since.
func (c *Camera) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.features != nil
}

// Close stops a running acquisition and closes the device. The camera is
// closed afterwards even when a step fails; the first error is returned.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.features == nil {
		return ErrNotInitialized
	}

	var firstErr error
	if c.session.State() == acquisition.StateAcquiring {
		if err := c.session.Stop(); err != nil {
			firstErr = fmt.Errorf("stop acquisition: %w", err)
		}
	}
	if err := c.dev.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close %s: %w", c.id, err)
	}

	c.features = nil
	c.session = nil
	c.debugLog("camera closed", "camera", c.id)
	c.emitState(stateOpen, stateClosed, "close")
	return firstErr
}

// Features returns the feature map.
func (c *Camera) Features() (*feature.Map, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.features == nil {
		return nil, ErrNotInitialized
	}
	return c.features, nil
}

// Session returns the acquisition session.
func (c *Camera) Session() (*acquisition.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, ErrNotInitialized
	}
	return c.session, nil
}

// Acquire starts acquisition, runs fn and stops acquisition again on every
// exit path. See acquisition.With.
func (c *Camera) Acquire(ctx context.Context, fn func(*acquisition.Session) error) error {
	s, err := c.Session()
	if err != nil {
		return err
	}
	return acquisition.With(ctx, s, fn)
}

// DefaultConfigPath returns
// <config dir>/genicam/<Vendor>_<Model>_<Serial>_<TLType>.yaml.
func (c *Camera) DefaultConfigPath() (string, error) {
	dir, err := c.configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Info().Key()+config.FormatYAML.Ext()), nil
}

func (c *Camera) configRoot() (string, error) {
	dir := c.opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("user config dir: %w", err)
		}
	}
	return filepath.Join(dir, "genicam"), nil
}

// DumpConfig captures the writable features and writes them to path. An
// empty path selects DefaultConfigPath. The written path is returned.
func (c *Camera) DumpConfig(ctx context.Context, path string, overwrite bool) (string, error) {
	m, err := c.Features()
	if err != nil {
		return "", err
	}
	if path == "" {
		if path, err = c.DefaultConfigPath(); err != nil {
			return "", err
		}
	}

	snap, err := config.Dump(ctx, m)
	if err != nil {
		return "", err
	}
	if err := config.WriteFile(path, snap, config.WriteOptions{
		Overwrite: overwrite,
		Header:    c.header(),
	}); err != nil {
		return "", err
	}

	c.debugLog("configuration dumped", "camera", c.id, "path", path, "features", snap.Len())
	c.emit(c.sessionID(), log.Event{
		Category: log.CategoryConfig,
		Config: &log.ConfigEvent{
			Op:       log.ConfigOpDump,
			Path:     path,
			Features: snap.Len(),
		},
	})
	return path, nil
}

// LoadConfig reads path and applies it. An empty path selects
// DefaultConfigPath. Per-feature problems are reported in the result; the
// error is non-nil only when the file could not be read.
func (c *Camera) LoadConfig(ctx context.Context, path string) (*config.ApplyResult, error) {
	m, err := c.Features()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = c.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	snap, err := config.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := c.apply(ctx, snap, m, path)
	return res, nil
}

// ApplyConfig applies an already parsed snapshot.
func (c *Camera) ApplyConfig(ctx context.Context, snap *config.Snapshot) (*config.ApplyResult, error) {
	m, err := c.Features()
	if err != nil {
		return nil, err
	}
	return c.apply(ctx, snap, m, ""), nil
}

func (c *Camera) apply(ctx context.Context, snap *config.Snapshot, m *feature.Map, path string) *config.ApplyResult {
	res := config.Apply(ctx, snap, m,
		config.WithPasses(c.opts.ApplyPasses),
		config.WithLogger(c.opts.Logger),
		config.WithMetrics(c.opts.Metrics))

	c.emit(c.sessionID(), log.Event{
		Category: log.CategoryConfig,
		Config: &log.ConfigEvent{
			Op:       log.ConfigOpApply,
			Path:     path,
			Features: snap.Len(),
			Applied:  len(res.Applied),
			Skipped:  len(res.Skipped),
			Failed:   len(res.Errors),
			Passes:   res.Passes,
		},
	})
	return res
}

// ReadConfig parses path without applying it. It works on a closed
// camera.
func (c *Camera) ReadConfig(path string) (*config.Snapshot, error) {
	if path == "" {
		var err error
		if path, err = c.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	snap, err := config.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c.emit(c.sessionID(), log.Event{
		Category: log.CategoryConfig,
		Config: &log.ConfigEvent{
			Op:       log.ConfigOpRead,
			Path:     path,
			Features: snap.Len(),
		},
	})
	return snap, nil
}

// DumpInfo writes a description of the features matching filter to path.
// An empty path selects <config dir>/genicam/<key>.features.yaml.
func (c *Camera) DumpInfo(ctx context.Context, path string, overwrite bool, filter feature.FilterOptions) (string, error) {
	m, err := c.Features()
	if err != nil {
		return "", err
	}
	if path == "" {
		dir, err := c.configRoot()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, c.Info().Key()+".features"+config.FormatYAML.Ext())
	}

	infos, err := config.DumpInfo(ctx, m, config.InfoOptions{FilterOptions: filter})
	if err != nil {
		return "", err
	}
	if err := config.WriteInfoFile(path, infos, config.WriteOptions{
		Overwrite: overwrite,
		Header:    c.header(),
	}); err != nil {
		return "", err
	}
	c.debugLog("feature info dumped", "camera", c.id, "path", path, "features", len(infos))
	return path, nil
}

func (c *Camera) header() []string {
	info := c.Info()
	lines := []string{
		"device: " + info.String(),
		"key: " + info.Key(),
	}
	if info.UserID != "" {
		lines = append(lines, "user id: "+info.UserID)
	}
	return append(lines, "captured: "+time.Now().UTC().Format(time.RFC3339))
}

// sessionID returns the running acquisition's ID, or "".
func (c *Camera) sessionID() string {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	if s == nil {
		return ""
	}
	return s.ID()
}

func (c *Camera) debugLog(msg string, args ...any) {
	if c.opts.Logger != nil {
		c.opts.Logger.Debug(msg, args...)
	}
}

func (c *Camera) emit(sessionID string, event log.Event) {
	if c.opts.EventLogger == nil {
		return
	}
	event.Timestamp = time.Now()
	event.CameraID = c.id
	event.SessionID = sessionID
	c.opts.EventLogger.Log(event)
}

func (c *Camera) emitState(from, to, reason string) {
	c.emit("", log.Event{
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityCamera,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

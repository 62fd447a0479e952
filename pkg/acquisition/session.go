package acquisition

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/log"
	"github.com/genicam-go/genicam/pkg/metrics"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// Options configures a Session.
type Options struct {
	// BufferCount is the number of frame buffers announced to the stream.
	BufferCount int

	// MetadataFeatures are read after every frame and attached to it.
	// Features the device does not implement are ignored.
	MetadataFeatures []string

	// CameraID tags emitted events.
	CameraID string

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives state change, frame and error events.
	// If nil, no events are emitted.
	EventLogger log.Logger

	// Metrics records session and frame metrics. May be nil.
	Metrics *metrics.Collector
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		BufferCount:      8,
		MetadataFeatures: DefaultMetadataFeatures,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.BufferCount < 1 {
		return fmt.Errorf("%w: buffer count %d", ErrInvalidOptions, o.BufferCount)
	}
	return nil
}

// Session drives the acquisition lifecycle of one camera.
//
// A session is Idle until Start succeeds and Acquiring until Stop. Frames
// can only be retrieved while Acquiring. A Session may be started again
// after it was stopped; each start gets a new ID.
type Session struct {
	features *feature.Map
	stream   Stream
	opts     Options

	// frameMu serializes GetFrame callers; mu guards the state.
	frameMu  sync.Mutex
	mu       sync.Mutex
	state    State
	id       string
	settings StreamSettings
}

// NewSession creates an idle session over a feature map and its stream.
func NewSession(features *feature.Map, stream Stream, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		features: features,
		stream:   stream,
		opts:     opts,
	}, nil
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the UUID of the running acquisition, or "" when idle.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Settings returns the stream settings captured at Start.
func (s *Session) Settings() StreamSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Start reads the acquisition settings from the feature map, opens the
// stream, executes AcquisitionStart and locks the transport layer
// parameters (TLParamsLocked=1) when the device has them.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAcquiring {
		return ErrAlreadyAcquiring
	}

	settings := StreamSettings{BufferCount: s.opts.BufferCount}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{sfnc.AcquisitionMode, &settings.AcquisitionMode},
		{sfnc.TriggerMode, &settings.TriggerMode},
		{sfnc.TriggerSource, &settings.TriggerSource},
		{sfnc.PixelFormat, &settings.PixelFormat},
	} {
		v, err := s.symbol(f.name)
		if err != nil {
			return fmt.Errorf("start acquisition: %w", err)
		}
		*f.dst = v
	}

	if err := s.stream.StartStream(ctx, settings); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}

	if err := s.execute(sfnc.AcquisitionStart); err != nil {
		s.rollback(false)
		return fmt.Errorf("start acquisition: %w", err)
	}

	if err := s.setLock(1); err != nil {
		s.rollback(true)
		return fmt.Errorf("lock transport parameters: %w", err)
	}

	s.state = StateAcquiring
	s.id = uuid.NewString()
	s.settings = settings

	s.debugLog("acquisition started",
		"session", s.id,
		"mode", settings.AcquisitionMode,
		"trigger", settings.TriggerMode,
		"source", settings.TriggerSource,
		"pixelFormat", settings.PixelFormat)
	s.opts.Metrics.SetAcquiring(true)
	s.emitState(s.id, StateIdle, StateAcquiring, "")
	return nil
}

// rollback undoes a partial Start. Errors are logged, not returned.
func (s *Session) rollback(started bool) {
	if started {
		if err := s.execute(sfnc.AcquisitionStop); err != nil {
			s.debugLog("rollback: acquisition stop failed", "error", err)
		}
	}
	if err := s.stream.StopStream(); err != nil {
		s.debugLog("rollback: stop stream failed", "error", err)
	}
}

// Stop executes AcquisitionStop, unlocks the transport layer parameters and
// closes the stream. Every step is attempted even if an earlier one fails;
// the session is Idle afterwards in any case and the first error is
// returned.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAcquiring {
		return ErrNotAcquiring
	}

	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	if err := s.execute(sfnc.AcquisitionStop); err != nil {
		keep(fmt.Errorf("stop acquisition: %w", err))
	}
	if err := s.setLock(0); err != nil {
		keep(fmt.Errorf("unlock transport parameters: %w", err))
	}
	if err := s.stream.StopStream(); err != nil {
		keep(fmt.Errorf("stop stream: %w", err))
	}

	id := s.id
	s.state = StateIdle
	s.id = ""
	s.settings = StreamSettings{}

	s.debugLog("acquisition stopped", "session", id, "error", first)
	s.opts.Metrics.SetAcquiring(false)
	reason := ""
	if first != nil {
		reason = first.Error()
	}
	s.emitState(id, StateAcquiring, StateIdle, reason)
	return first
}

// GetFrame blocks until the next frame is available or timeout expires.
//
// The trigger configuration is read at call time: with TriggerMode=On and
// TriggerSource=Software, TriggerSoftware is executed before waiting. On
// expiry ErrFrameTimeout is returned and no partial frame is delivered.
// Concurrent callers are served one at a time.
func (s *Session) GetFrame(timeout time.Duration) (*Frame, error) {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()

	s.mu.Lock()
	if s.state != StateAcquiring {
		s.mu.Unlock()
		return nil, ErrNotAcquiring
	}
	id := s.id
	s.mu.Unlock()

	if err := s.softwareTrigger(); err != nil {
		s.emitError(id, err, "software trigger")
		return nil, err
	}

	start := time.Now()
	raw, err := s.stream.PullFrame(timeout)
	wait := time.Since(start)
	if err != nil {
		if errors.Is(err, ErrStreamTimeout) {
			s.opts.Metrics.RecordFrameTimeout()
			err = fmt.Errorf("%w after %v", ErrFrameTimeout, timeout)
		} else if s.State() != StateAcquiring {
			err = fmt.Errorf("%w: %w", ErrNotAcquiring, err)
		} else {
			err = fmt.Errorf("pull frame: %w", err)
		}
		s.emitError(id, err, "get frame")
		return nil, err
	}

	frame := &Frame{
		ID:              raw.ID,
		SessionID:       id,
		Payload:         raw.Payload,
		Width:           raw.Width,
		Height:          raw.Height,
		PixelFormat:     raw.PixelFormat,
		DeviceTimestamp: raw.DeviceTimestamp,
		HostTimestamp:   time.Now(),
		Metadata:        s.metadata(),
	}

	s.opts.Metrics.RecordFrame(frame.PixelFormat, len(frame.Payload), wait)
	s.emit(id, log.Event{
		Category: log.CategoryFrame,
		Frame: &log.FrameEvent{
			FrameID:         frame.ID,
			Width:           frame.Width,
			Height:          frame.Height,
			PixelFormat:     frame.PixelFormat,
			Size:            len(frame.Payload),
			DeviceTimestamp: frame.DeviceTimestamp,
			Wait:            wait,
		},
	})
	return frame, nil
}

// Frames returns an iterator over frames retrieved with GetFrame. Iteration
// ends after the first error, which is yielded with a nil frame.
func (s *Session) Frames(timeout time.Duration) iter.Seq2[*Frame, error] {
	return func(yield func(*Frame, error) bool) {
		for {
			f, err := s.GetFrame(timeout)
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}

func (s *Session) softwareTrigger() error {
	mode, err := s.symbol(sfnc.TriggerMode)
	if err != nil {
		return err
	}
	source, err := s.symbol(sfnc.TriggerSource)
	if err != nil {
		return err
	}
	if mode != sfnc.TriggerModeOn || source != sfnc.TriggerSourceSoftware {
		return nil
	}
	if err := s.execute(sfnc.TriggerSoftware); err != nil {
		return fmt.Errorf("software trigger: %w", err)
	}
	return nil
}

func (s *Session) metadata() map[string]any {
	md := make(map[string]any, len(s.opts.MetadataFeatures))
	for _, name := range s.opts.MetadataFeatures {
		n, err := s.features.Valued(name)
		if err != nil {
			continue
		}
		v, err := n.Value()
		if err != nil {
			s.debugLog("metadata feature unreadable", "feature", name, "error", err)
			continue
		}
		md[name] = v
	}
	return md
}

// symbol returns the current symbol of an enumeration feature, or "" when
// the device does not implement it.
func (s *Session) symbol(name string) (string, error) {
	if !s.features.Has(name) {
		return "", nil
	}
	n, err := s.features.Enumeration(name)
	if err != nil {
		return "", err
	}
	return n.Symbol()
}

// execute runs a command feature if the device implements it.
func (s *Session) execute(name string) error {
	if !s.features.Has(name) {
		return nil
	}
	cmd, err := s.features.Command(name)
	if err != nil {
		return err
	}
	return cmd.Execute()
}

// setLock writes TLParamsLocked if the device implements it.
func (s *Session) setLock(v int64) error {
	if !s.features.Has(sfnc.TLParamsLocked) {
		return nil
	}
	n, err := s.features.Integer(sfnc.TLParamsLocked)
	if err != nil {
		return err
	}
	return n.SetInt(v)
}

func (s *Session) debugLog(msg string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug(msg, args...)
	}
}

func (s *Session) emit(sessionID string, event log.Event) {
	if s.opts.EventLogger == nil {
		return
	}
	event.Timestamp = time.Now()
	event.CameraID = s.opts.CameraID
	event.SessionID = sessionID
	s.opts.EventLogger.Log(event)
}

func (s *Session) emitState(sessionID string, from, to State, reason string) {
	s.emit(sessionID, log.Event{
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityAcquisition,
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

func (s *Session) emitError(sessionID string, err error, op string) {
	var ferr *feature.Error
	name := ""
	if errors.As(err, &ferr) {
		name = ferr.Feature
	}
	s.emit(sessionID, log.Event{
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: op,
			Feature: name,
		},
	})
}

// Package metrics exports Prometheus metrics for camera operations: feature
// writes and command executions, configuration apply outcomes, and frame
// acquisition.
//
// A nil *Collector and a disabled one are both valid and record nothing, so
// components can call Record* methods unconditionally.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid metrics configuration")

// Config configures a Collector.
type Config struct {
	// Enabled turns collection on. A disabled collector is a no-op.
	Enabled bool

	// Address is the listen address of the HTTP endpoint (e.g. ":9464").
	// Empty means Start does not serve HTTP.
	Address string

	// Path is the metrics endpoint path.
	Path string

	// Namespace prefixes every metric name.
	Namespace string

	// ConstLabels are attached to every metric (e.g. camera serial).
	ConstLabels map[string]string

	// Logger is the optional logger for server errors.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns an enabled Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Enabled:   true,
		Address:   ":9464",
		Path:      "/metrics",
		Namespace: "genicam",
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: empty namespace", ErrInvalidConfig)
	}
	if c.Address != "" && (c.Path == "" || c.Path[0] != '/') {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidConfig, c.Path)
	}
	return nil
}

// Collector records camera metrics into its own Prometheus registry.
type Collector struct {
	mu       sync.Mutex
	config   *Config
	registry *prometheus.Registry
	server   *http.Server

	featureWrites *prometheus.CounterVec
	commands      *prometheus.CounterVec
	configEntries *prometheus.CounterVec
	applyDuration prometheus.Histogram
	frames        *prometheus.CounterVec
	frameTimeouts prometheus.Counter
	frameWait     prometheus.Histogram
	frameBytes    prometheus.Counter
	sessions      prometheus.Counter
	acquiring     prometheus.Gauge
}

// NewCollector creates a collector. A nil config uses DefaultConfig.
func NewCollector(config *Config) (*Collector, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if !config.Enabled {
		return &Collector{config: config}, nil
	}

	c := &Collector{
		config:   config,
		registry: prometheus.NewRegistry(),
	}
	c.initMetrics()
	if err := c.registerMetrics(); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return c, nil
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// Registry returns the underlying registry, or nil when disabled.
func (c *Collector) Registry() *prometheus.Registry {
	if !c.enabled() {
		return nil
	}
	return c.registry
}

// Handler returns an HTTP handler serving the metrics.
func (c *Collector) Handler() http.Handler {
	if !c.enabled() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Start serves the metrics endpoint in the background. It returns once the
// listener is bound.
func (c *Collector) Start(ctx context.Context) error {
	if !c.enabled() || c.config.Address == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.server != nil {
		return nil
	}

	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", c.config.Address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", c.config.Address, err)
	}

	mux := http.NewServeMux()
	mux.Handle(c.config.Path, c.Handler())

	c.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && c.config.Logger != nil {
			c.config.Logger.Error("metrics server stopped", "error", err)
		}
	}(c.server)

	return nil
}

// Stop shuts the metrics endpoint down.
func (c *Collector) Stop(ctx context.Context) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	srv := c.server
	c.server = nil
	c.mu.Unlock()

	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordFeatureWrite records one SetValue attempt.
func (c *Collector) RecordFeatureWrite(feature string, err error) {
	if !c.enabled() {
		return
	}
	c.featureWrites.With(prometheus.Labels{"feature": feature, "result": result(err)}).Inc()
}

// RecordCommand records one command execution attempt.
func (c *Collector) RecordCommand(command string, err error) {
	if !c.enabled() {
		return
	}
	c.commands.With(prometheus.Labels{"command": command, "result": result(err)}).Inc()
}

// RecordApply records the outcome counts of one configuration apply.
func (c *Collector) RecordApply(applied, skipped, failed int, duration time.Duration) {
	if !c.enabled() {
		return
	}
	c.configEntries.With(prometheus.Labels{"outcome": "applied"}).Add(float64(applied))
	c.configEntries.With(prometheus.Labels{"outcome": "skipped"}).Add(float64(skipped))
	c.configEntries.With(prometheus.Labels{"outcome": "failed"}).Add(float64(failed))
	c.applyDuration.Observe(duration.Seconds())
}

// RecordFrame records one retrieved frame.
func (c *Collector) RecordFrame(pixelFormat string, size int, wait time.Duration) {
	if !c.enabled() {
		return
	}
	c.frames.With(prometheus.Labels{"pixel_format": pixelFormat}).Inc()
	c.frameBytes.Add(float64(size))
	c.frameWait.Observe(wait.Seconds())
}

// RecordFrameTimeout records a GetFrame that expired.
func (c *Collector) RecordFrameTimeout() {
	if !c.enabled() {
		return
	}
	c.frameTimeouts.Inc()
}

// SetAcquiring tracks the acquisition state of one session. A transition
// to true counts a new session. Sessions sharing a collector add up, so
// every true must be balanced by exactly one false.
func (c *Collector) SetAcquiring(acquiring bool) {
	if !c.enabled() {
		return
	}
	if acquiring {
		c.sessions.Inc()
		c.acquiring.Inc()
		return
	}
	c.acquiring.Dec()
}

func (c *Collector) initMetrics() {
	ns := c.config.Namespace
	labels := prometheus.Labels(c.config.ConstLabels)

	c.featureWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "feature",
			Name:        "writes_total",
			Help:        "Total number of feature write attempts",
			ConstLabels: labels,
		},
		[]string{"feature", "result"},
	)

	c.commands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "feature",
			Name:        "commands_total",
			Help:        "Total number of command executions",
			ConstLabels: labels,
		},
		[]string{"command", "result"},
	)

	c.configEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "config",
			Name:        "entries_total",
			Help:        "Configuration entries by apply outcome",
			ConstLabels: labels,
		},
		[]string{"outcome"},
	)

	c.applyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   "config",
			Name:        "apply_duration_seconds",
			Help:        "Duration of configuration applies in seconds",
			Buckets:     prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
			ConstLabels: labels,
		},
	)

	c.frames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "acquisition",
			Name:        "frames_total",
			Help:        "Total number of retrieved frames",
			ConstLabels: labels,
		},
		[]string{"pixel_format"},
	)

	c.frameTimeouts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "acquisition",
			Name:        "frame_timeouts_total",
			Help:        "Total number of frame retrievals that timed out",
			ConstLabels: labels,
		},
	)

	c.frameWait = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   "acquisition",
			Name:        "frame_wait_seconds",
			Help:        "Time spent waiting for a frame in seconds",
			Buckets:     prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
			ConstLabels: labels,
		},
	)

	c.frameBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "acquisition",
			Name:        "payload_bytes_total",
			Help:        "Total payload bytes of retrieved frames",
			ConstLabels: labels,
		},
	)

	c.sessions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   "acquisition",
			Name:        "sessions_total",
			Help:        "Total number of started acquisition sessions",
			ConstLabels: labels,
		},
	)

	c.acquiring = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   "acquisition",
			Name:        "active",
			Help:        "Number of acquisition sessions currently running",
			ConstLabels: labels,
		},
	)
}

func (c *Collector) registerMetrics() error {
	metrics := []prometheus.Collector{
		c.featureWrites,
		c.commands,
		c.configEntries,
		c.applyDuration,
		c.frames,
		c.frameTimeouts,
		c.frameWait,
		c.frameBytes,
		c.sessions,
		c.acquiring,
	}

	for _, metric := range metrics {
		if err := c.registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

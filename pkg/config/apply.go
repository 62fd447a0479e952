package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/metrics"
)

// SkipReason tells why a snapshot entry was not attempted.
type SkipReason uint8

const (
	// SkipUnknownFeature - the device has no feature of that name.
	SkipUnknownFeature SkipReason = iota + 1

	// SkipNotWritable - the feature exists but is not writable right now.
	SkipNotWritable
)

// String returns the reason in words.
func (r SkipReason) String() string {
	switch r {
	case SkipUnknownFeature:
		return "unknown feature"
	case SkipNotWritable:
		return "not writable"
	default:
		return "unknown"
	}
}

// ApplyResult reports the outcome of Apply. Every snapshot key ends up in
// exactly one of Applied, Skipped and Errors.
type ApplyResult struct {
	// Applied lists the features written, in the order they were written.
	Applied []string

	// Skipped maps features that were not attempted to the reason.
	Skipped map[string]SkipReason

	// Errors maps features whose write failed to the error.
	Errors map[string]error

	// Passes is the number of passes made over the snapshot.
	Passes int
}

// ErrorAggregate joins the per-feature errors, ordered by feature name.
// It returns nil when every attempted write succeeded.
func (r *ApplyResult) ErrorAggregate() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, name := range slices.Sorted(maps.Keys(r.Errors)) {
		errs = append(errs, fmt.Errorf("%s: %w", name, r.Errors[name]))
	}
	return errors.Join(errs...)
}

// ApplyOption configures Apply.
type ApplyOption func(*applyOptions)

type applyOptions struct {
	passes  int
	logger  *slog.Logger
	metrics *metrics.Collector
}

// WithPasses allows up to n passes. Entries skipped as not writable are
// retried in the next pass as long as the previous pass wrote at least one
// feature, which resolves dependencies such as GainAuto=Off enabling Gain
// regardless of file order. The default is a single pass.
func WithPasses(n int) ApplyOption {
	return func(o *applyOptions) {
		if n > 0 {
			o.passes = n
		}
	}
}

// WithLogger sets the logger for per-feature warnings and the summary.
func WithLogger(logger *slog.Logger) ApplyOption {
	return func(o *applyOptions) {
		o.logger = logger
	}
}

// WithMetrics records the outcome counts and duration.
func WithMetrics(c *metrics.Collector) ApplyOption {
	return func(o *applyOptions) {
		o.metrics = c
	}
}

// Apply writes every snapshot entry to the matching feature of m, in
// snapshot order. It never stops early: unknown and currently read-only
// features are skipped, failed writes are recorded and the remaining
// entries are still attempted. A cancelled ctx records the remaining
// entries as errors.
func Apply(ctx context.Context, snap *Snapshot, m *feature.Map, opts ...ApplyOption) *ApplyResult {
	o := applyOptions{passes: 1}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res := &ApplyResult{
		Skipped: make(map[string]SkipReason),
		Errors:  make(map[string]error),
	}

	pending := snap.Entries()
	for pass := 1; pass <= o.passes && len(pending) > 0; pass++ {
		res.Passes = pass
		var blocked []Entry
		written := 0

		for _, e := range pending {
			if err := ctx.Err(); err != nil {
				res.Errors[e.Name] = err
				continue
			}
			if !m.Has(e.Name) {
				res.Skipped[e.Name] = SkipUnknownFeature
				continue
			}
			node, err := m.Valued(e.Name)
			if err != nil {
				res.fail(o.logger, e.Name, err)
				continue
			}
			mode, err := node.AccessMode()
			if err != nil {
				res.fail(o.logger, e.Name, err)
				continue
			}
			if !mode.CanWrite() {
				blocked = append(blocked, e)
				continue
			}
			if err := node.SetValue(e.Value); err != nil {
				res.fail(o.logger, e.Name, err)
				continue
			}
			res.Applied = append(res.Applied, e.Name)
			written++
		}

		pending = blocked
		if written == 0 {
			break
		}
	}
	for _, e := range pending {
		res.Skipped[e.Name] = SkipNotWritable
	}

	elapsed := time.Since(start)
	o.metrics.RecordApply(len(res.Applied), len(res.Skipped), len(res.Errors), elapsed)
	if o.logger != nil {
		o.logger.Info("configuration applied",
			"applied", len(res.Applied),
			"skipped", len(res.Skipped),
			"failed", len(res.Errors),
			"passes", res.Passes,
			"duration", elapsed)
	}
	return res
}

func (r *ApplyResult) fail(logger *slog.Logger, name string, err error) {
	r.Errors[name] = err
	if logger != nil {
		logger.Warn("feature not applied", "feature", name, "error", err)
	}
}

package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes camera events to an slog.Logger.
// Useful for development when you want to see events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("camera_id", event.CameraID),
		slog.String("category", event.Category.String()),
	}
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}

	switch {
	case event.Feature != nil:
		attrs = append(attrs,
			slog.String("feature", event.Feature.Name),
			slog.String("op", event.Feature.Op.String()),
		)
		if event.Feature.Value != nil {
			attrs = append(attrs, slog.String("value", fmt.Sprint(event.Feature.Value)))
		}
		if event.Feature.Error != "" {
			attrs = append(attrs, slog.String("error", event.Feature.Error))
		}
	case event.Config != nil:
		attrs = append(attrs,
			slog.String("op", event.Config.Op.String()),
			slog.Int("features", event.Config.Features),
		)
		if event.Config.Path != "" {
			attrs = append(attrs, slog.String("path", event.Config.Path))
		}
		if event.Config.Op == ConfigOpApply {
			attrs = append(attrs,
				slog.Int("applied", event.Config.Applied),
				slog.Int("skipped", event.Config.Skipped),
				slog.Int("failed", event.Config.Failed),
				slog.Int("passes", event.Config.Passes),
			)
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Uint64("frame_id", event.Frame.FrameID),
			slog.Int("width", event.Frame.Width),
			slog.Int("height", event.Frame.Height),
			slog.String("pixel_format", event.Frame.PixelFormat),
			slog.Int("size", event.Frame.Size),
			slog.Duration("wait", event.Frame.Wait),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Feature != "" {
			attrs = append(attrs, slog.String("feature", event.Error.Feature))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "camera", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)

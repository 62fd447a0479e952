// Package commands implements the genicam-log CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/genicam-go/genicam/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [camera] [session] CATEGORY Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := ""
	if event.SessionID != "" {
		session = " [" + shortenID(event.SessionID) + "]"
	}

	fmt.Fprintf(w, "%s [%s]%s %s %s\n", ts, event.CameraID, session, event.Category.String(), typeLabel(event))

	// Type-specific details
	switch {
	case event.Feature != nil:
		formatFeatureDetails(w, event.Feature)
	case event.Config != nil:
		formatConfigDetails(w, event.Config)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// typeLabel returns a short label for the event payload.
func typeLabel(event log.Event) string {
	switch {
	case event.Feature != nil:
		return event.Feature.Op.String()
	case event.Config != nil:
		return event.Config.Op.String()
	case event.StateChange != nil:
		return event.StateChange.Entity.String()
	case event.Frame != nil:
		return "Frame"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of a session UUID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFeatureDetails(w io.Writer, fe *log.FeatureEvent) {
	fmt.Fprintf(w, "  Feature: %s\n", fe.Name)
	if fe.Value != nil {
		value, err := json.Marshal(fe.Value)
		if err == nil {
			fmt.Fprintf(w, "  Value: %s\n", value)
		}
	}
	if fe.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", fe.Error)
	}
}

func formatConfigDetails(w io.Writer, ce *log.ConfigEvent) {
	if ce.Path != "" {
		fmt.Fprintf(w, "  Path: %s\n", ce.Path)
	}
	fmt.Fprintf(w, "  Features: %d\n", ce.Features)
	if ce.Op == log.ConfigOpApply {
		fmt.Fprintf(w, "  Applied: %d  Skipped: %d  Failed: %d  Passes: %d\n",
			ce.Applied, ce.Skipped, ce.Failed, ce.Passes)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatFrameDetails(w io.Writer, fr *log.FrameEvent) {
	fmt.Fprintf(w, "  Frame: %d  %dx%d %s  %d bytes\n", fr.FrameID, fr.Width, fr.Height, fr.PixelFormat, fr.Size)
	if fr.Wait > 0 {
		fmt.Fprintf(w, "  Wait: %s\n", formatDuration(fr.Wait))
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Feature != "" {
		fmt.Fprintf(w, "  Feature: %s\n", err.Feature)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be feature, config, state, frame, or error)", s)
	}
	return c, nil
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}

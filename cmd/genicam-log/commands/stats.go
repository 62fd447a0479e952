package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/genicam-go/genicam/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Cameras          map[string]*CameraStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// CameraStats holds statistics for a single camera.
type CameraStats struct {
	FirstSeen     time.Time
	LastSeen      time.Time
	Events        int
	Sessions      map[string]struct{}
	Frames        int
	Bytes         int64
	Writes        int
	FailedWrites  int
	Commands      int
	ConfigApplies int
}

// Collect reads the log file and aggregates its events.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Cameras:          make(map[string]*CameraStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		cam, ok := stats.Cameras[event.CameraID]
		if !ok {
			cam = &CameraStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Sessions:  make(map[string]struct{}),
			}
			stats.Cameras[event.CameraID] = cam
		}
		cam.Events++
		if event.Timestamp.After(cam.LastSeen) {
			cam.LastSeen = event.Timestamp
		}
		if event.SessionID != "" {
			cam.Sessions[event.SessionID] = struct{}{}
		}

		switch {
		case event.Feature != nil && event.Feature.Op == log.FeatureOpExecute:
			cam.Commands++
		case event.Feature != nil:
			cam.Writes++
			if event.Feature.Error != "" {
				cam.FailedWrites++
			}
		case event.Frame != nil:
			cam.Frames++
			cam.Bytes += int64(event.Frame.Size)
		case event.Config != nil && event.Config.Op == log.ConfigOpApply:
			cam.ConfigApplies++
		case event.Error != nil:
			stats.Errors++
		}
	}
	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== GenICam Camera Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryFeature, log.CategoryConfig, log.CategoryState, log.CategoryFrame, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Cameras: %d\n", len(stats.Cameras))
	if len(stats.Cameras) > 0 {
		ids := make([]string, 0, len(stats.Cameras))
		for id := range stats.Cameras {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return stats.Cameras[ids[i]].FirstSeen.Before(stats.Cameras[ids[j]].FirstSeen)
		})

		fmt.Fprintln(w)
		for _, id := range ids {
			c := stats.Cameras[id]
			duration := c.LastSeen.Sub(c.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", id, c.Events, duration)
			if len(c.Sessions) > 0 {
				fmt.Fprintf(w, "           Sessions: %d\n", len(c.Sessions))
			}
			if c.Frames > 0 {
				fmt.Fprintf(w, "           Frames: %d (%d bytes)\n", c.Frames, c.Bytes)
			}
			if c.Writes > 0 || c.Commands > 0 {
				fmt.Fprintf(w, "           Writes: %d (%d failed), commands: %d\n", c.Writes, c.FailedWrites, c.Commands)
			}
			if c.ConfigApplies > 0 {
				fmt.Fprintf(w, "           Config applies: %d\n", c.ConfigApplies)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

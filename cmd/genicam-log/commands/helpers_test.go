package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/genicam-go/genicam/pkg/log"
)

var baseTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.glog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

// sampleEvents returns a short acquisition on one camera and a failed
// write on another.
func sampleEvents() []log.Event {
	const session = "4f9c2a10-0c59-4a5e-9d0b-111111111111"
	return []log.Event{
		{
			Timestamp: baseTime,
			CameraID:  "Sim::SIM-0001",
			Category:  log.CategoryState,
			StateChange: &log.StateChangeEvent{
				Entity: log.StateEntityCamera, OldState: "CLOSED", NewState: "OPEN", Reason: "initialize",
			},
		},
		{
			Timestamp: baseTime.Add(time.Second),
			CameraID:  "Sim::SIM-0001",
			Category:  log.CategoryFeature,
			Feature:   &log.FeatureEvent{Name: "Gain", Op: log.FeatureOpWrite, Value: 6.5},
		},
		{
			Timestamp: baseTime.Add(2 * time.Second),
			CameraID:  "Sim::SIM-0001",
			Category:  log.CategoryFeature,
			Feature:   &log.FeatureEvent{Name: "AcquisitionStart", Op: log.FeatureOpExecute},
		},
		{
			Timestamp: baseTime.Add(3 * time.Second),
			CameraID:  "Sim::SIM-0001",
			SessionID: session,
			Category:  log.CategoryFrame,
			Frame: &log.FrameEvent{
				FrameID: 1, Width: 640, Height: 480, PixelFormat: "Mono8", Size: 307200, Wait: 1500 * time.Microsecond,
			},
		},
		{
			Timestamp: baseTime.Add(4 * time.Second),
			CameraID:  "Sim::SIM-0001",
			SessionID: session,
			Category:  log.CategoryFrame,
			Frame:     &log.FrameEvent{FrameID: 2, Width: 640, Height: 480, PixelFormat: "Mono8", Size: 307200},
		},
		{
			Timestamp: baseTime.Add(5 * time.Second),
			CameraID:  "Sim::SIM-0002",
			Category:  log.CategoryFeature,
			Feature: &log.FeatureEvent{
				Name: "Width", Op: log.FeatureOpWrite, Value: int64(321), Error: "invalid value: 321 is not on the increment grid",
			},
		},
		{
			Timestamp: baseTime.Add(6 * time.Second),
			CameraID:  "Sim::SIM-0002",
			Category:  log.CategoryConfig,
			Config: &log.ConfigEvent{
				Op: log.ConfigOpApply, Path: "/tmp/cam.yaml", Features: 10, Applied: 8, Skipped: 1, Failed: 1, Passes: 2,
			},
		},
		{
			Timestamp: baseTime.Add(7 * time.Second),
			CameraID:  "Sim::SIM-0002",
			Category:  log.CategoryError,
			Error:     &log.ErrorEventData{Message: "frame timeout", Context: "get frame"},
		},
	}
}

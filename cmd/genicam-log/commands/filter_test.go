package commands

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/genicam-go/genicam/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	r, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer r.Close()
	var events []log.Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		events = append(events, e)
	}
}

func TestRunFilterByCamera(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "sim2.glog")

	n, err := RunFilter(path, FilterOptions{Output: out, CameraID: "Sim::SIM-0002"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 3 {
		t.Errorf("filtered %d events, want 3", n)
	}
	for _, e := range readAll(t, out) {
		if e.CameraID != "Sim::SIM-0002" {
			t.Errorf("unexpected camera %s", e.CameraID)
		}
	}
}

func TestRunFilterByFeatureAndTime(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "gain.glog")

	n, err := RunFilter(path, FilterOptions{
		Output:    out,
		Feature:   "Gain",
		TimeStart: "2026-03-02T09:30:00Z",
		TimeEnd:   "2026-03-02T09:30:02Z",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("filtered %d events, want 1", n)
	}
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []FilterOptions{
		{TimeStart: "yesterday"},
		{TimeEnd: "2026-13-01"},
		{Category: "message"},
	}
	for _, opts := range tests {
		if _, err := BuildFilter(opts); err == nil {
			t.Errorf("BuildFilter(%+v) succeeded, want error", opts)
		}
	}
}

package log

import (
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	multi.Log(Event{
		Timestamp: time.Now(),
		CameraID:  "cam-123",
		Category:  CategoryFeature,
	})

	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].CameraID != "cam-123" {
			t.Errorf("logger %d: CameraID = %q, want %q", i, mock.events[0].CameraID, "cam-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Timestamp: time.Now()})
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	m := &mockLogger{}
	multi := NewMultiLogger(nil, m, nil)
	multi.Log(Event{CameraID: "cam"})

	if len(m.events) != 1 {
		t.Errorf("got %d events, want 1", len(m.events))
	}
}

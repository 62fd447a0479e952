package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		CameraID:  "SIM-0001",
		SessionID: "abc12345-def6-7890-abcd-ef1234567890",
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityAcquisition,
			OldState: "IDLE",
			NewState: "ACQUIRING",
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.CameraID != original.CameraID {
		t.Errorf("CameraID: got %q, want %q", decoded.CameraID, original.CameraID)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.StateChange == nil {
		t.Fatal("StateChange is nil")
	}
	if *decoded.StateChange != *original.StateChange {
		t.Errorf("StateChange: got %+v, want %+v", *decoded.StateChange, *original.StateChange)
	}
}

func TestFeatureEventValueTypes(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"bool", true},
		{"positive int", int64(1024)},
		{"negative int", int64(-7)},
		{"float", 12.5},
		{"symbol", "BayerGB8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(Event{
				Timestamp: time.Now(),
				CameraID:  "SIM-0001",
				Category:  CategoryFeature,
				Feature:   &FeatureEvent{Name: "X", Op: FeatureOpWrite, Value: tt.value},
			})
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}
			decoded, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}
			if decoded.Feature.Value != tt.value {
				t.Errorf("Value: got %T(%v), want %T(%v)", decoded.Feature.Value, decoded.Feature.Value, tt.value, tt.value)
			}
		})
	}
}

func TestFrameEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		CameraID:  "SIM-0001",
		SessionID: "sess",
		Category:  CategoryFrame,
		Frame: &FrameEvent{
			FrameID:         42,
			Width:           640,
			Height:          480,
			PixelFormat:     "Mono8",
			Size:            640 * 480,
			DeviceTimestamp: 123456789,
			Wait:            15 * time.Millisecond,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Frame == nil {
		t.Fatal("Frame is nil")
	}
	if *decoded.Frame != *original.Frame {
		t.Errorf("Frame: got %+v, want %+v", *decoded.Frame, *original.Frame)
	}
}

func TestConfigEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		CameraID:  "SIM-0001",
		Category:  CategoryConfig,
		Config: &ConfigEvent{
			Op:       ConfigOpApply,
			Path:     "/tmp/cam.yaml",
			Features: 12,
			Applied:  9,
			Skipped:  2,
			Failed:   1,
			Passes:   1,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Config == nil || *decoded.Config != *original.Config {
		t.Errorf("Config: got %+v, want %+v", decoded.Config, original.Config)
	}
}

func TestEncodeUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{CameraID: "cam"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if bytes.Contains(data, []byte("CameraID")) {
		t.Error("encoded event contains field names, expected integer keys")
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := range 3 {
		if err := enc.Encode(Event{CameraID: "cam", Frame: &FrameEvent{FrameID: uint64(i)}}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i := range 3 {
		var e Event
		if err := dec.Decode(&e); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if e.Frame.FrameID != uint64(i) {
			t.Errorf("FrameID: got %d, want %d", e.Frame.FrameID, i)
		}
	}
}

package camera

import (
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/log"
)

// eventBridge forwards feature writes and command executions to the
// camera's event logger and metrics.
//
// It is called while the session may hold its own lock (Start executes
// AcquisitionStart), so it must not query the session or take c.mu.
type eventBridge struct {
	c *Camera
}

var _ feature.Subscriber = eventBridge{}

func (b eventBridge) OnFeatureWritten(name string, value any, err error) {
	b.c.opts.Metrics.RecordFeatureWrite(name, err)
	b.c.debugLog("feature written", "camera", b.c.id, "feature", name, "value", value, "error", err)

	ev := &log.FeatureEvent{Name: name, Op: log.FeatureOpWrite, Value: value}
	if err != nil {
		ev.Error = err.Error()
	}
	b.c.emit("", log.Event{Category: log.CategoryFeature, Feature: ev})
}

func (b eventBridge) OnCommandExecuted(name string, err error) {
	b.c.opts.Metrics.RecordCommand(name, err)
	b.c.debugLog("command executed", "camera", b.c.id, "feature", name, "error", err)

	ev := &log.FeatureEvent{Name: name, Op: log.FeatureOpExecute}
	if err != nil {
		ev.Error = err.Error()
	}
	b.c.emit("", log.Event{Category: log.CategoryFeature, Feature: ev})
}

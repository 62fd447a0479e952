package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/pixelformat"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// Stream errors.
var (
	ErrStreamOpen       = errors.New("stream already started")
	ErrStreamNotStarted = errors.New("stream not started")
	ErrStreamStopped    = errors.New("stream stopped while waiting for a frame")
	ErrUnknownLine      = errors.New("unknown trigger line")
)

// StartStream announces settings.BufferCount buffers. Frames are produced
// once AcquisitionStart is executed.
func (d *Device) StartStream(ctx context.Context, settings acquisition.StreamSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return ErrClosed
	}
	if d.streaming {
		return ErrStreamOpen
	}
	if settings.BufferCount < 1 {
		return fmt.Errorf("%w: buffer count %d", ErrInvalidConfig, settings.BufferCount)
	}
	d.frames = make(chan *acquisition.RawFrame, settings.BufferCount)
	d.stop = make(chan struct{})
	d.streaming = true
	d.dropped = 0
	d.debugLog("stream started", "buffers", settings.BufferCount, "pixelFormat", settings.PixelFormat)
	return nil
}

// StopStream halts frame production, flushes the buffers and unblocks
// pending PullFrame calls.
func (d *Device) StopStream() error {
	d.mu.Lock()
	if !d.streaming {
		d.mu.Unlock()
		return ErrStreamNotStarted
	}
	d.stopStreamLocked()
	d.mu.Unlock()

	d.wg.Wait()
	d.debugLog("stream stopped")
	return nil
}

// PullFrame waits up to timeout for the next completed frame.
func (d *Device) PullFrame(timeout time.Duration) (*acquisition.RawFrame, error) {
	d.mu.RLock()
	if !d.streaming {
		d.mu.RUnlock()
		return nil, ErrStreamNotStarted
	}
	frames, stop := d.frames, d.stop
	d.mu.RUnlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case f := <-frames:
		return f, nil
	case <-stop:
		return nil, ErrStreamStopped
	case <-timer.C:
		return nil, acquisition.ErrStreamTimeout
	}
}

// FireLine simulates an edge on a hardware trigger line. A frame is
// produced when TriggerMode is On and TriggerSource selects line.
func (d *Device) FireLine(line string) error {
	if line != Line0 && line != Line1 {
		return fmt.Errorf("%w: %s", ErrUnknownLine, line)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return ErrClosed
	}
	if d.stringLocked(sfnc.TriggerMode) == sfnc.TriggerModeOn && d.triggerSourceLocked() == line {
		d.triggerLocked()
	}
	return nil
}

func (d *Device) stopStreamLocked() {
	if !d.streaming {
		return
	}
	d.acquisitionStopLocked()
	close(d.stop)
	d.streaming = false
	d.frames = nil
}

// acquisitionStartLocked arms frame production. In free-run mode a
// goroutine produces frames at AcquisitionFrameRate; with TriggerMode On
// frames are produced by triggerLocked only.
func (d *Device) acquisitionStartLocked() error {
	if !d.streaming {
		return ErrStreamNotStarted
	}
	if d.acquiring {
		return nil
	}
	d.acquiring = true

	switch d.stringLocked(sfnc.AcquisitionMode) {
	case sfnc.AcquisitionModeSingleFrame:
		d.remaining = 1
	case sfnc.AcquisitionModeMultiFrame:
		d.remaining = d.intLocked(sfnc.AcquisitionFrameCount)
	default:
		d.remaining = -1
	}

	if d.stringLocked(sfnc.TriggerMode) == sfnc.TriggerModeOn {
		return nil
	}

	period := time.Duration(float64(time.Second) / d.floatLocked(sfnc.AcquisitionFrameRate))
	halt := make(chan struct{})
	d.halt = halt
	d.wg.Add(1)
	go d.freeRun(period, halt)
	return nil
}

func (d *Device) acquisitionStopLocked() {
	d.acquiring = false
	if d.halt != nil {
		close(d.halt)
		d.halt = nil
	}
}

func (d *Device) freeRun(period time.Duration, halt <-chan struct{}) {
	defer d.wg.Done()
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-halt:
			return
		case <-ticker.C:
			d.mu.Lock()
			if d.acquiring {
				d.produceLocked()
			}
			d.mu.Unlock()
		}
	}
}

func (d *Device) triggerLocked() {
	if d.acquiring {
		d.produceLocked()
	}
}

// produceLocked renders one frame into a free buffer. When every buffer is
// full the frame is dropped.
func (d *Device) produceLocked() {
	if d.remaining == 0 {
		return
	}

	width := int(d.intLocked(sfnc.Width))
	height := int(d.intLocked(sfnc.Height))
	format := d.stringLocked(sfnc.PixelFormat)
	info, err := pixelformat.Lookup(format)
	if err != nil {
		return
	}

	d.frameID++
	payload := make([]byte, info.FrameSize(width, height))
	fillPattern(payload, info, width, height, d.stringLocked(sfnc.TestPattern), d.registers[sfnc.ReverseX].value == true, d.frameID)

	frame := &acquisition.RawFrame{
		ID:              d.frameID,
		Payload:         payload,
		Width:           width,
		Height:          height,
		PixelFormat:     format,
		DeviceTimestamp: uint64(time.Since(d.epoch).Nanoseconds()),
	}

	select {
	case d.frames <- frame:
	default:
		d.dropped++
	}

	if d.remaining > 0 {
		d.remaining--
		if d.remaining == 0 {
			d.acquisitionStopLocked()
		}
	}
}

package sim

import (
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/pixelformat"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// Trigger lines accepted by FireLine.
const (
	Line0 = sfnc.TriggerSourceLine0
	Line1 = sfnc.TriggerSourceLine1
)

var autoSymbols = []string{sfnc.GainAutoOff, sfnc.GainAutoOnce, sfnc.GainAutoContinuous}

// defaultRegisters returns the register table of the simulated camera in
// device order.
func defaultRegisters(opts Options) []*registerSpec {
	ro := feature.AccessReadOnly
	rw := feature.AccessReadWrite
	wo := feature.AccessWriteOnly

	return []*registerSpec{
		{Name: sfnc.DeviceVendorName, DisplayName: "Vendor Name", Kind: feature.KindString, Access: ro, Default: opts.Vendor},
		{Name: sfnc.DeviceModelName, DisplayName: "Model Name", Kind: feature.KindString, Access: ro, Default: opts.Model},
		{Name: sfnc.DeviceSerialNumber, DisplayName: "Serial Number", Kind: feature.KindString, Access: ro, Default: opts.Serial},
		{Name: sfnc.DeviceUserID, DisplayName: "User ID", Kind: feature.KindString, Access: rw, Default: "",
			Description: "User-programmable device identifier."},
		{Name: sfnc.DeviceTemperature, DisplayName: "Device Temperature", Kind: feature.KindFloat, Access: ro, Unit: "C",
			FloatMin: -40, FloatMax: 125, Default: 38.5, Visibility: feature.VisibilityExpert},

		{Name: sfnc.SensorWidth, Kind: feature.KindInteger, Access: ro, Visibility: feature.VisibilityExpert,
			IntMin: opts.SensorWidth, IntMax: opts.SensorWidth, IntInc: 1, Default: opts.SensorWidth},
		{Name: sfnc.SensorHeight, Kind: feature.KindInteger, Access: ro, Visibility: feature.VisibilityExpert,
			IntMin: opts.SensorHeight, IntMax: opts.SensorHeight, IntInc: 1, Default: opts.SensorHeight},
		{Name: sfnc.Width, Kind: feature.KindInteger, Access: rw, Unit: "px",
			Description: "Width of the image provided by the device.",
			IntMin: 16, IntInc: 4, Default: opts.SensorWidth},
		{Name: sfnc.Height, Kind: feature.KindInteger, Access: rw,
			Description: "Height of the image provided by the device.",
			IntMin: 16, IntInc: 2, Default: opts.SensorHeight},
		{Name: sfnc.OffsetX, Kind: feature.KindInteger, Access: rw, IntMin: 0, IntInc: 4, Default: int64(0)},
		{Name: sfnc.OffsetY, Kind: feature.KindInteger, Access: rw, IntMin: 0, IntInc: 2, Default: int64(0)},
		{Name: sfnc.PixelFormat, DisplayName: "Pixel Format", Kind: feature.KindEnumeration, Access: rw,
			Symbols: []string{pixelformat.Mono8, pixelformat.Mono16, pixelformat.BayerGB8, pixelformat.BayerGB12, pixelformat.RGB8},
			Default: pixelformat.Mono8},
		{Name: sfnc.PixelColorFilter, Kind: feature.KindEnumeration, Access: ro, Visibility: feature.VisibilityExpert,
			Symbols: []string{sfnc.PixelColorFilterNone, sfnc.PixelColorFilterBayerGB}, Default: sfnc.PixelColorFilterNone},
		{Name: sfnc.PayloadSize, Kind: feature.KindInteger, Access: ro, Visibility: feature.VisibilityExpert, IntInc: 1},
		{Name: sfnc.ReverseX, Kind: feature.KindBoolean, Access: rw, Visibility: feature.VisibilityExpert, Default: false},
		{Name: sfnc.TestPattern, Kind: feature.KindEnumeration, Access: rw, Visibility: feature.VisibilityGuru,
			Symbols: []string{sfnc.TestPatternOff, sfnc.TestPatternGreyHorizontalRamp, sfnc.TestPatternGreyVerticalRamp}, Default: sfnc.TestPatternGreyHorizontalRamp},

		{Name: sfnc.GainAuto, DisplayName: "Gain Auto", Kind: feature.KindEnumeration, Access: rw,
			Symbols: autoSymbols, Default: sfnc.GainAutoOff},
		{Name: sfnc.Gain, Kind: feature.KindFloat, Access: rw, Unit: "dB",
			Tooltip: "Read-only while GainAuto is active.",
			FloatMin: 0, FloatMax: 24, Default: 0.0},
		{Name: sfnc.ExposureAuto, DisplayName: "Exposure Auto", Kind: feature.KindEnumeration, Access: rw,
			Symbols: autoSymbols, Default: sfnc.GainAutoOff},
		{Name: sfnc.ExposureTime, DisplayName: "Exposure Time", Kind: feature.KindFloat, Access: rw, Unit: "us",
			Tooltip: "Read-only while ExposureAuto is active.",
			FloatMin: 20, FloatMax: 1e6, Default: 10000.0},

		{Name: sfnc.AcquisitionMode, Kind: feature.KindEnumeration, Access: rw,
			Symbols: []string{sfnc.AcquisitionModeContinuous, sfnc.AcquisitionModeSingleFrame, sfnc.AcquisitionModeMultiFrame}, Default: sfnc.AcquisitionModeContinuous},
		{Name: sfnc.AcquisitionFrameCount, Kind: feature.KindInteger, Access: rw, Visibility: feature.VisibilityExpert,
			IntMin: 1, IntMax: 1000, IntInc: 1, Default: int64(10)},
		{Name: sfnc.AcquisitionFrameRate, Kind: feature.KindFloat, Access: rw, Unit: "Hz",
			FloatMin: 1, FloatMax: 200, Default: 30.0},
		{Name: sfnc.AcquisitionStart, Kind: feature.KindCommand, Access: wo},
		{Name: sfnc.AcquisitionStop, Kind: feature.KindCommand, Access: wo},
		{Name: sfnc.TriggerMode, Kind: feature.KindEnumeration, Access: rw,
			Symbols: []string{sfnc.TriggerModeOff, sfnc.TriggerModeOn}, Default: sfnc.TriggerModeOff},
		{Name: sfnc.TriggerSource, Kind: feature.KindEnumeration, Access: rw,
			Symbols: []string{sfnc.TriggerSourceSoftware, Line0, Line1}, Default: sfnc.TriggerSourceSoftware},
		{Name: sfnc.TriggerSoftware, Kind: feature.KindCommand, Access: wo,
			Tooltip: "Available while TriggerMode is On."},
		{Name: sfnc.TLParamsLocked, Kind: feature.KindInteger, Access: rw, Visibility: feature.VisibilityInvisible,
			IntMin: 0, IntMax: 1, IntInc: 1, Default: int64(0)},

		{Name: sfnc.LUTEnable, Kind: feature.KindBoolean, Access: rw, Visibility: feature.VisibilityExpert, Missing: true},
	}
}

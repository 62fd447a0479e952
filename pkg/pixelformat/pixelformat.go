// Package pixelformat decodes raw GenICam image buffers into image.Image
// values.
//
// Only unpacked formats are supported. Multi-byte samples are little-endian,
// as delivered by GigE Vision and USB3 Vision devices. Bayer formats decode
// to the raw mosaic (one gray sample per pixel); use Demosaic for color.
package pixelformat

import (
	"errors"
	"fmt"
	"image"
	"slices"
)

// Pixel format errors.
var (
	ErrUnsupported = errors.New("unsupported pixel format")
	ErrShortBuffer = errors.New("buffer too short for image size")
)

// Pixel format names (SFNC PixelFormat symbols).
const (
	Mono8      = "Mono8"
	Mono16     = "Mono16"
	BayerGB8   = "BayerGB8"
	BayerGB12  = "BayerGB12"
	RGB8       = "RGB8"
	YCbCr422_8 = "YCbCr422_8"
)

// Range is the interval of valid sample values for a pixel format.
type Range struct {
	Min uint32
	Max uint32
}

// Info describes the memory layout of a pixel format.
type Info struct {
	Name string

	// Channels is 1 for mono and Bayer formats, 3 for RGB.
	Channels int

	// BitsPerChannel is the number of significant bits per sample.
	BitsPerChannel int

	// BytesPerPixel is the storage size of one pixel.
	BytesPerPixel int

	// Bayer is true for color filter array formats.
	Bayer bool

	// Range is the valid sample range.
	Range Range

	decode func(buf []byte, width, height int) image.Image
}

// Decodable returns true if Decode supports the format.
func (i Info) Decodable() bool { return i.decode != nil }

// FrameSize returns the payload size in bytes of a width x height image.
func (i Info) FrameSize(width, height int) int {
	return width * height * i.BytesPerPixel
}

var formats = map[string]Info{
	Mono8:      {Name: Mono8, Channels: 1, BitsPerChannel: 8, BytesPerPixel: 1, Range: Range{0, 0xFF}, decode: decodeGray8},
	Mono16:     {Name: Mono16, Channels: 1, BitsPerChannel: 16, BytesPerPixel: 2, Range: Range{0, 0xFFFF}, decode: decodeGray16},
	BayerGB8:   {Name: BayerGB8, Channels: 1, BitsPerChannel: 8, BytesPerPixel: 1, Bayer: true, Range: Range{0, 0xFF}, decode: decodeGray8},
	BayerGB12:  {Name: BayerGB12, Channels: 1, BitsPerChannel: 12, BytesPerPixel: 2, Bayer: true, Range: Range{0, 0x0FFF}, decode: decodeGray16},
	RGB8:       {Name: RGB8, Channels: 3, BitsPerChannel: 8, BytesPerPixel: 3, Range: Range{0, 0xFF}, decode: decodeRGB8},
	YCbCr422_8: {Name: YCbCr422_8, Channels: 3, BitsPerChannel: 8, BytesPerPixel: 2, Range: Range{0, 0xFF}},
}

// Lookup returns the layout of a known pixel format.
func Lookup(name string) (Info, error) {
	info, ok := formats[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	return info, nil
}

// ValidRange returns the valid sample range of a pixel format.
func ValidRange(name string) (Range, error) {
	info, err := Lookup(name)
	if err != nil {
		return Range{}, err
	}
	return info.Range, nil
}

// Supported returns the names of all decodable formats, sorted.
func Supported() []string {
	var names []string
	for name, info := range formats {
		if info.Decodable() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Decode converts a raw buffer into an image. Mono8 and BayerGB8 yield
// *image.Gray, Mono16 and BayerGB12 yield *image.Gray16 (BayerGB12 samples
// keep their 12-bit values), RGB8 yields *image.RGBA.
func Decode(name string, buf []byte, width, height int) (image.Image, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if !info.Decodable() {
		return nil, fmt.Errorf("%w: no decoder for %s", ErrUnsupported, name)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if need := info.FrameSize(width, height); len(buf) < need {
		return nil, fmt.Errorf("%w: %s %dx%d needs %d bytes, got %d", ErrShortBuffer, name, width, height, need, len(buf))
	}
	return info.decode(buf, width, height), nil
}

func decodeGray8(buf []byte, width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, buf[:width*height])
	return img
}

// image.Gray16 stores samples big-endian.
func decodeGray16(buf []byte, width, height int) image.Image {
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[2*i] = buf[2*i+1]
		img.Pix[2*i+1] = buf[2*i]
	}
	return img
}

func decodeRGB8(buf []byte, width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[4*i] = buf[3*i]
		img.Pix[4*i+1] = buf[3*i+1]
		img.Pix[4*i+2] = buf[3*i+2]
		img.Pix[4*i+3] = 0xFF
	}
	return img
}

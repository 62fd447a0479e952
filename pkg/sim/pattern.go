package sim

import (
	"encoding/binary"

	"github.com/genicam-go/genicam/pkg/pixelformat"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// fillPattern renders a test pattern that moves by one sample per frame.
func fillPattern(buf []byte, info pixelformat.Info, width, height int, pattern string, reverseX bool, frame uint64) {
	if pattern == sfnc.TestPatternOff {
		return
	}
	limit := uint64(info.Range.Max) + 1
	stride := width * info.BytesPerPixel

	for y := range height {
		row := buf[y*stride : (y+1)*stride]
		for x := range width {
			sx := x
			if reverseX {
				sx = width - 1 - x
			}
			var base uint64
			if pattern == sfnc.TestPatternGreyVerticalRamp {
				base = uint64(y)
			} else {
				base = uint64(sx)
			}
			v := (base + frame) % limit

			px := row[x*info.BytesPerPixel : (x+1)*info.BytesPerPixel]
			switch {
			case info.Channels == 3:
				px[0] = byte(v)
				px[1] = byte(v / 2)
				px[2] = byte(255 - v)
			case info.BytesPerPixel == 2:
				binary.LittleEndian.PutUint16(px, uint16(v))
			default:
				px[0] = byte(v)
			}
		}
	}
}

package pixelformat

import (
	"fmt"
	"image"
)

// Demosaic converts a decoded BayerGB mosaic into an RGBA image by
// superpixel interpolation: every pixel of an aligned 2x2 cell gets the
// cell's red, blue and averaged green sample. Odd trailing rows and columns
// reuse the last complete cell.
//
// bits is the significant sample depth (8 for BayerGB8, 12 for BayerGB12).
func Demosaic(img image.Image, bits int) (*image.RGBA, error) {
	var sample func(x, y int) uint32
	switch m := img.(type) {
	case *image.Gray:
		sample = func(x, y int) uint32 { return uint32(m.GrayAt(x, y).Y) }
	case *image.Gray16:
		sample = func(x, y int) uint32 { return uint32(m.Gray16At(x, y).Y) }
	default:
		return nil, fmt.Errorf("%w: cannot demosaic %T", ErrUnsupported, img)
	}
	if bits < 8 || bits > 16 {
		return nil, fmt.Errorf("invalid sample depth %d", bits)
	}
	shift := uint(bits - 8)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("image %dx%d too small to demosaic", w, h)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for cy := 0; cy < h; cy += 2 {
		y0 := min(cy, (h-2)&^1)
		for cx := 0; cx < w; cx += 2 {
			x0 := min(cx, (w-2)&^1)
			// GB pattern: G B / R G
			g1 := sample(b.Min.X+x0, b.Min.Y+y0)
			bl := sample(b.Min.X+x0+1, b.Min.Y+y0)
			r := sample(b.Min.X+x0, b.Min.Y+y0+1)
			g2 := sample(b.Min.X+x0+1, b.Min.Y+y0+1)

			rv := uint8(r >> shift)
			gv := uint8(((g1 + g2) / 2) >> shift)
			bv := uint8(bl >> shift)

			for y := cy; y < min(cy+2, h); y++ {
				for x := cx; x < min(cx+2, w); x++ {
					i := out.PixOffset(x, y)
					out.Pix[i] = rv
					out.Pix[i+1] = gv
					out.Pix[i+2] = bv
					out.Pix[i+3] = 0xFF
				}
			}
		}
	}
	return out, nil
}

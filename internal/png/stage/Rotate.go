package stage

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/rm-hull/png-transform/internal/png"
)

type RotateStage struct {
	Angle float64
}

// Process rotates the image by Angle degrees about its centre
func (s *RotateStage) Process(p *png.PngImage) error {
	p.Pixels = Rotate(p.Pixels, s.Angle)
	return nil
}

// Rotate returns a copy of src rotated by angle degrees about the centre
// (Width/2, Height/2). Each destination pixel is looked up in the source
// with nearest-neighbour sampling; lookups that fall outside the source stay
// transparent black, so corners are clipped rather than clamped or wrapped.
//
// The lookup is computed in float32: near a .5 tie float64 rounds the other
// way (cos 60 is 0.49999997 in single precision) and picks a different pixel.
func Rotate(src *png.PixelBuffer, angle float64) *png.PixelBuffer {
	dst := png.NewPixelBuffer(src.Width, src.Height)

	rad := float32(float64(float32(angle)) * math.Pi / 180.0)
	sin := float32(math.Sin(float64(rad)))
	cos := float32(math.Cos(float64(rad)))
	cx, cy := src.Width/2, src.Height/2

	parallel.Line(src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			dy := float32(y - cy)
			for x := 0; x < src.Width; x++ {
				dx := float32(x - cx)

				// explicit conversions stop the compiler fusing multiply-adds
				u := float32(dx*cos) - float32(dy*sin)
				v := float32(dx*sin) + float32(dy*cos)

				srcX := int(math.Round(float64(u))) + cx
				srcY := int(math.Round(float64(v))) + cy
				if !src.In(srcX, srcY) {
					continue
				}

				pos := dst.Offset(x, y)
				srcPos := src.Offset(srcX, srcY)
				copy(dst.Pix[pos:pos+4], src.Pix[srcPos:srcPos+4])
			}
		}
	})

	return dst
}

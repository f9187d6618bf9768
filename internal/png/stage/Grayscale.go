package stage

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/rm-hull/png-transform/internal/png"
)

type GrayscaleStage struct{}

// Process converts the image to greyscale by averaging the colour channels
// The alpha channel is left untouched
func (s *GrayscaleStage) Process(p *png.PngImage) error {
	p.Pixels = Grayscale(p.Pixels)
	return nil
}

// Grayscale sets R, G and B of every pixel to the truncated mean
// (R+G+B)/3. This is a plain average, not a luma weighting.
func Grayscale(src *png.PixelBuffer) *png.PixelBuffer {
	dst := src.Clone()

	parallel.Line(dst.Height, func(start, end int) {
		for i := dst.Offset(0, start); i < dst.Offset(0, end); i += 4 {
			gray := uint8((int(dst.Pix[i]) + int(dst.Pix[i+1]) + int(dst.Pix[i+2])) / 3)
			dst.Pix[i+0] = gray
			dst.Pix[i+1] = gray
			dst.Pix[i+2] = gray
		}
	})

	return dst
}

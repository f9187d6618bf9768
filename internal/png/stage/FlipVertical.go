package stage

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/rm-hull/png-transform/internal/png"
)

type FlipVerticalStage struct{}

// Process mirrors the image top to bottom
func (s *FlipVerticalStage) Process(p *png.PngImage) error {
	p.Pixels = FlipVertical(p.Pixels)
	return nil
}

// FlipVertical returns a copy of src with row i swapped with row Height-1-i.
func FlipVertical(src *png.PixelBuffer) *png.PixelBuffer {
	dst := src.Clone()
	h := dst.Height

	parallel.Line(h/2, func(start, end int) {
		row := make([]uint8, dst.Stride())
		for y := start; y < end; y++ {
			top := dst.Pix[dst.Offset(0, y):dst.Offset(0, y+1)]
			bottom := dst.Pix[dst.Offset(0, h-y-1):dst.Offset(0, h-y)]
			copy(row, top)
			copy(top, bottom)
			copy(bottom, row)
		}
	})

	return dst
}

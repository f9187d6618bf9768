package stage

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/rm-hull/png-transform/internal/png"
)

type FlipHorizontalStage struct{}

// Process mirrors the image left to right
func (s *FlipHorizontalStage) Process(p *png.PngImage) error {
	p.Pixels = FlipHorizontal(p.Pixels)
	return nil
}

// FlipHorizontal returns a copy of src with pixel j of every row swapped
// with pixel Width-1-j. The centre column of an odd-width image is left
// where it is.
func FlipHorizontal(src *png.PixelBuffer) *png.PixelBuffer {
	dst := src.Clone()
	w := dst.Width

	parallel.Line(dst.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w/2; x++ {
				left := dst.Offset(x, y)
				right := dst.Offset(w-x-1, y)
				for k := 0; k < 4; k++ {
					dst.Pix[left+k], dst.Pix[right+k] = dst.Pix[right+k], dst.Pix[left+k]
				}
			}
		}
	})

	return dst
}

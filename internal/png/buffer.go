package png

import (
	"image"
)

// PixelBuffer is a row-major grid of 8-bit, non-premultiplied RGBA pixels.
// len(Pix) is always Width*Height*4.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

func (b *PixelBuffer) Stride() int {
	return b.Width * 4
}

// Offset returns the index of the red channel of pixel (x, y).
func (b *PixelBuffer) Offset(x, y int) int {
	return y*b.Stride() + x*4
}

func (b *PixelBuffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b *PixelBuffer) Empty() bool {
	return len(b.Pix) == 0
}

// Image exposes the buffer as an *image.NRGBA sharing the same backing slice.
func (b *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

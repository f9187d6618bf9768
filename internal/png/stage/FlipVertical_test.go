package stage

import (
	"image"
	"testing"

	"github.com/anthonynsimon/bild/transform"
	"github.com/stretchr/testify/assert"
)

func TestFlipVertical(t *testing.T) {
	src := newBuffer(2, 2, red, green, blue, white)
	expected := newBuffer(2, 2, blue, white, red, green)
	assert.Equal(t, expected, FlipVertical(src))
}

func TestFlipVertical_OddHeightKeepsCentreRow(t *testing.T) {
	src := newBuffer(1, 3, red, green, blue)
	expected := newBuffer(1, 3, blue, green, red)
	assert.Equal(t, expected, FlipVertical(src))
}

func TestFlipVertical_Involution(t *testing.T) {
	for _, size := range sizes {
		src := randomBuffer(size.w, size.h, false)
		assert.Equal(t, src, FlipVertical(FlipVertical(src)), "%dx%d", size.w, size.h)
	}
}

func TestFlipVertical_MatchesBild(t *testing.T) {
	for _, size := range sizes[1:] {
		src := randomBuffer(size.w, size.h, true)
		rgba := &image.RGBA{Pix: src.Pix, Stride: src.Stride(), Rect: image.Rect(0, 0, src.Width, src.Height)}

		assert.Equal(t, transform.FlipV(rgba).Pix, FlipVertical(src).Pix, "%dx%d", size.w, size.h)
	}
}

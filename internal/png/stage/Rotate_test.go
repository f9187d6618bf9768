package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate_Identity(t *testing.T) {
	for _, angle := range []float64{0, 360, -360, 720} {
		for _, size := range sizes {
			src := randomBuffer(size.w, size.h, false)
			assert.Equal(t, src, Rotate(src, angle), "%dx%d by %g", size.w, size.h, angle)
		}
	}
}

func TestRotate_QuarterTurns(t *testing.T) {
	src := newBuffer(2, 2, red, green, blue, white)

	// centre is (1, 1), so half of the 2x2 grid maps outside the source
	assert.Equal(t, newBuffer(2, 2, empty, empty, green, white), Rotate(src, 90))
	assert.Equal(t, newBuffer(2, 2, empty, blue, empty, white), Rotate(src, -90))
	assert.Equal(t, newBuffer(2, 2, empty, blue, empty, white), Rotate(src, 270))
	assert.Equal(t, newBuffer(2, 2, empty, empty, empty, white), Rotate(src, 180))
}

func TestRotate_HalfTurnOnOddSquareIsDoubleFlip(t *testing.T) {
	for _, n := range []int{1, 3, 5, 9} {
		src := randomBuffer(n, n, false)
		assert.Equal(t, FlipVertical(FlipHorizontal(src)), Rotate(src, 180), "%dx%d", n, n)
	}
}

func TestRotate_ClipsWithTransparentBlack(t *testing.T) {
	// a horizontal strip stood on end keeps only the pixel at its centre
	src := newBuffer(5, 1, red, green, blue, white, red)
	assert.Equal(t, newBuffer(5, 1, empty, empty, blue, empty, empty), Rotate(src, 90))

	square := newBuffer(3, 3, white, white, white, white, white, white, white, white, white)
	assert.Equal(t, square, Rotate(square, 90))
}

func TestRotate_NonRightAngle(t *testing.T) {
	src := newBuffer(3, 3,
		red, green, blue,
		white, red, green,
		blue, white, red,
	)
	expected := newBuffer(3, 3,
		green, blue, green,
		red, red, red,
		white, blue, white,
	)
	assert.Equal(t, expected, Rotate(src, 45))
}

func TestRotate_SinglePrecisionTies(t *testing.T) {
	src := newBuffer(3, 3,
		red, green, blue,
		white, red, green,
		blue, white, red,
	)

	tests := []struct {
		angle    float64
		expected [][4]uint8
	}{
		// sin(30) is exactly 0.5 in float32, which rounds away from zero
		{30, [][4]uint8{green, blue, green, red, red, red, white, blue, white}},
		// cos(60) is 0.49999997 in float32, so it rounds to 0 where float64 gives 1
		{60, [][4]uint8{green, green, green, green, red, white, white, white, white}},
		{150, [][4]uint8{green, red, white, blue, red, blue, green, red, white}},
	}

	for _, tt := range tests {
		assert.Equal(t, newBuffer(3, 3, tt.expected...), Rotate(src, tt.angle), "%g degrees", tt.angle)
	}
}

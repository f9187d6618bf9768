package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rm-hull/png-transform/internal/png"
	"github.com/stretchr/testify/require"
)

var (
	red   = []uint8{255, 0, 0, 255}
	green = []uint8{0, 255, 0, 255}
	blue  = []uint8{0, 0, 255, 255}
	white = []uint8{255, 255, 255, 255}
	empty = []uint8{0, 0, 0, 0}
)

func newBuffer(w, h int, pixels ...[]uint8) *png.PixelBuffer {
	buf := png.NewPixelBuffer(w, h)
	for i, p := range pixels {
		copy(buf.Pix[i*4:], p)
	}
	return buf
}

// fixture is the 2x2 image red, green / blue, white.
func fixture() *png.PixelBuffer {
	return newBuffer(2, 2, red, green, blue, white)
}

func encodePNG(t *testing.T, buf *png.PixelBuffer) []byte {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, buf.Encode(&b))
	return b.Bytes()
}

func writePNG(t *testing.T, buf *png.PixelBuffer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, buf), 0644))
	return path
}

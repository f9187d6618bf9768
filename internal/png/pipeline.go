package png

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

var (
	ErrDecode     = errors.New("error while decoding")
	ErrEmptyImage = errors.New("image contains no pixel data")
	ErrEncode     = errors.New("error while encoding")
)

type PngImage struct {
	Pixels *PixelBuffer
}

type PipelineStage interface {
	Process(img *PngImage) error
}

func NewPngFromReader(r io.Reader) (*PngImage, error) {
	buf, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return &PngImage{Pixels: buf}, nil
}

func (p *PngImage) Write(w io.Writer) error {
	return p.Pixels.Encode(w)
}

func (p *PngImage) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a PNG and converts whatever colour model it was stored in
// (paletted, grey, 16-bit, ...) to 8-bit non-premultiplied RGBA.
func Decode(r io.Reader) (*PixelBuffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyImage)
	}

	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())

	// draw.Draw goes through premultiplied colour, which loses precision in
	// translucent pixels, so the models image/png produces for them are
	// copied straight across.
	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < buf.Height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[buf.Offset(0, y):buf.Offset(0, y+1)], src.Pix[i:i+buf.Stride()])
		}

	case *image.NRGBA64:
		for y := 0; y < buf.Height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := buf.Pix[buf.Offset(0, y):buf.Offset(0, y+1)]
			for j := range row {
				// big-endian: the high byte comes first
				row[j] = src.Pix[i+j*2]
			}
		}

	case *image.Paletted:
		lut := make([]color.NRGBA, len(src.Palette))
		for i, c := range src.Palette {
			lut[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
		for y := 0; y < buf.Height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < buf.Width; x++ {
				idx := int(src.Pix[i+x])
				if idx >= len(lut) {
					continue
				}
				c := lut[idx]
				pos := buf.Offset(x, y)
				buf.Pix[pos+0] = c.R
				buf.Pix[pos+1] = c.G
				buf.Pix[pos+2] = c.B
				buf.Pix[pos+3] = c.A
			}
		}

	default:
		dst := buf.Image()
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	}

	return buf, nil
}

func (b *PixelBuffer) Encode(w io.Writer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

func Load(path string) (*PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(f)
}

// Save encodes into a temporary file next to path and renames it into
// place, so a failed encode never leaves a truncated file behind.
func Save(path string, b *PixelBuffer) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "modified-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := tmpFile.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}

	if err := b.Encode(tmpFile); err != nil {
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return nil
}

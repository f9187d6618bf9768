package cmd

import (
	"log"
	"time"

	"github.com/rm-hull/png-transform/internal"
	"github.com/rm-hull/png-transform/internal/png"
)

func Transform(inputPath, outputPath string, op internal.Operation, angle float64) error {
	startTime := time.Now()

	buf, err := png.Load(inputPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %s (%dx%d)", inputPath, buf.Width, buf.Height)

	img := &png.PngImage{Pixels: buf}
	if err := op.Apply(img, angle); err != nil {
		return err
	}

	if err := png.Save(outputPath, img.Pixels); err != nil {
		return err
	}

	if op.NeedsAngle() {
		log.Printf("%s by %g degrees, saved as %s in %s", op, angle, outputPath, time.Since(startTime))
	} else {
		log.Printf("%s, saved as %s in %s", op, outputPath, time.Since(startTime))
	}
	return nil
}

package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rm-hull/png-transform/internal"
	"github.com/rm-hull/png-transform/internal/png"
)

// Interactive prompts on out for an input path, a menu choice and (for
// rotation) an angle, all read from in, then writes the result to
// outputPath.
func Interactive(in io.Reader, out io.Writer, outputPath string) error {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "** ONLY .png files are supported ** \n")
	fmt.Fprint(out, "Enter the file path: ")

	var inputPath string
	if _, err := fmt.Fscan(reader, &inputPath); err != nil {
		return fmt.Errorf("failed to read file path: %w", err)
	}

	buf, err := png.Load(inputPath)
	if err != nil {
		return err
	}

	fmt.Fprint(out, "\n")
	fmt.Fprint(out, "What do you want to do with the image?\n")
	for _, op := range internal.Operations {
		fmt.Fprintf(out, "%d. %s\n", int(op), op)
	}
	fmt.Fprint(out, "Enter the corresponding number: ")

	var choice int
	if _, err := fmt.Fscan(reader, &choice); err != nil {
		fmt.Fprint(out, "Invalid choice\n")
		return fmt.Errorf("%w: %w", internal.ErrInvalidChoice, err)
	}

	op, err := internal.ParseChoice(choice)
	if err != nil {
		fmt.Fprint(out, "Invalid choice\n")
		return err
	}

	var angle float64
	if op.NeedsAngle() {
		fmt.Fprint(out, "Enter the rotation angle: ")
		// An unreadable angle rotates by zero rather than aborting.
		if _, err := fmt.Fscan(reader, &angle); err != nil {
			angle = 0
		}
	}

	img := &png.PngImage{Pixels: buf}
	if err := op.Apply(img, angle); err != nil {
		return err
	}

	if err := png.Save(outputPath, img.Pixels); err != nil {
		return err
	}

	fmt.Fprint(out, "\n")
	fmt.Fprintf(out, "Image saved as '%s'.\n", outputPath)
	fmt.Fprint(out, "\n")
	fmt.Fprint(out, "\n")
	fmt.Fprint(out, "Press Enter to exit the program.\n")

	// Discard the remainder of the last answer, then wait for Enter.
	// Running out of input is not an error here.
	_, _ = reader.ReadString('\n')
	_, _ = reader.ReadString('\n')

	return nil
}

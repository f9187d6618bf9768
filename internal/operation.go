package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rm-hull/png-transform/internal/png"
	"github.com/rm-hull/png-transform/internal/png/stage"
)

var ErrInvalidChoice = errors.New("invalid choice")

// Operation is one of the numbered menu entries.
type Operation int

const (
	Rotate Operation = iota + 1
	FlipVertical
	FlipHorizontal
	Grayscale
)

var Operations = []Operation{Rotate, FlipVertical, FlipHorizontal, Grayscale}

var operationNames = map[string]Operation{
	"rotate":          Rotate,
	"flip-vertical":   FlipVertical,
	"flipv":           FlipVertical,
	"flip-horizontal": FlipHorizontal,
	"fliph":           FlipHorizontal,
	"grayscale":       Grayscale,
	"greyscale":       Grayscale,
}

func ParseChoice(n int) (Operation, error) {
	op := Operation(n)
	if op < Rotate || op > Grayscale {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, n)
	}
	return op, nil
}

func ParseOperation(name string) (Operation, error) {
	op, ok := operationNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, name)
	}
	return op, nil
}

// String returns the menu label.
func (op Operation) String() string {
	switch op {
	case Rotate:
		return "Rotate"
	case FlipVertical:
		return "Flip Vertically"
	case FlipHorizontal:
		return "Flip Horizontally"
	case Grayscale:
		return "Grayscale"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

func (op Operation) NeedsAngle() bool {
	return op == Rotate
}

// Stages builds the processing pipeline for op. angle is ignored by
// everything except Rotate.
func (op Operation) Stages(angle float64) ([]png.PipelineStage, error) {
	switch op {
	case Rotate:
		return []png.PipelineStage{&stage.RotateStage{Angle: angle}}, nil
	case FlipVertical:
		return []png.PipelineStage{&stage.FlipVerticalStage{}}, nil
	case FlipHorizontal:
		return []png.PipelineStage{&stage.FlipHorizontalStage{}}, nil
	case Grayscale:
		return []png.PipelineStage{&stage.GrayscaleStage{}}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, int(op))
	}
}

// Apply runs op over img, replacing its pixels with the result.
func (op Operation) Apply(img *png.PngImage, angle float64) error {
	stages, err := op.Stages(angle)
	if err != nil {
		return err
	}
	if err := img.Pipeline(stages...); err != nil {
		return fmt.Errorf("failed to process image pipeline: %w", err)
	}
	return nil
}

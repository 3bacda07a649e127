// Package frame models the binarized capture strip for one instant.
package frame

import "github.com/softpedal/lanebot/internal/errors"

// Level is a binarized sample. Thresholding yields exactly two levels;
// anything else is a malformed frame, never coerced by truthiness.
type Level uint8

const (
	Off Level = 0
	On  Level = 255
)

// Frame is an immutable 2-D grid of binary samples. One frame is built per
// capture iteration and discarded after reduction.
type Frame struct {
	pix    []Level
	width  int
	height int
}

// New builds a frame from row-major sample rows. Every row must have the
// same, positive length.
func New(rows [][]Level) (*Frame, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New(errors.CodeMalformedFrame, "frame has no samples")
	}
	width := len(rows[0])
	pix := make([]Level, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Newf(errors.CodeMalformedFrame,
				"row %d has %d samples, want %d", y, len(row), width)
		}
		for x, v := range row {
			if v != Off && v != On {
				return nil, errors.Newf(errors.CodeMalformedFrame,
					"sample (%d,%d) = %d is not a binary level", x, y, v)
			}
		}
		pix = append(pix, row...)
	}
	return &Frame{pix: pix, width: width, height: len(rows)}, nil
}

// FromBytes builds a frame from a packed single-channel buffer, as produced
// by a thresholded grayscale matrix.
func FromBytes(data []byte, width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Newf(errors.CodeMalformedFrame,
			"frame dimensions must be positive, got %dx%d", width, height)
	}
	if len(data) != width*height {
		return nil, errors.Newf(errors.CodeMalformedFrame,
			"buffer has %d samples, want %d for %dx%d", len(data), width*height, width, height)
	}
	pix := make([]Level, len(data))
	for i, b := range data {
		l := Level(b)
		if l != Off && l != On {
			return nil, errors.Newf(errors.CodeMalformedFrame,
				"sample %d = %d is not a binary level", i, b)
		}
		pix[i] = l
	}
	return &Frame{pix: pix, width: width, height: height}, nil
}

// Width returns the frame width in samples.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in samples.
func (f *Frame) Height() int { return f.height }

// At returns the sample at column x, row y.
func (f *Frame) At(x, y int) Level {
	return f.pix[y*f.width+x]
}

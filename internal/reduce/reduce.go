// Package reduce collapses a binary frame into per-lane signals.
//
// The frame is partitioned into equal-width vertical bands, one per lane,
// with a margin trimmed from both band edges to absorb capture-region
// misalignment. A lane signals only when every surviving sample is lit.
package reduce

import (
	"math"

	"github.com/softpedal/lanebot/internal/errors"
	"github.com/softpedal/lanebot/internal/frame"
)

// Fraction of band width trimmed from each edge.
const toleranceRatio = 0.2

// Reduce maps f onto columns booleans, one per lane, in column order.
// Band boundaries come from integer division; truncation gaps at the right
// edge are accepted, not corrected.
func Reduce(f *frame.Frame, columns int) ([]bool, error) {
	if columns < 1 {
		return nil, errors.Newf(errors.CodeInvalidColumns,
			"column count must be positive, got %d", columns)
	}
	if f == nil {
		return nil, errors.New(errors.CodeMalformedFrame, "no frame to reduce")
	}
	if f.Width() < columns {
		return nil, errors.Newf(errors.CodeMalformedFrame,
			"frame width %d is narrower than %d columns", f.Width(), columns)
	}

	width := f.Width() / columns
	tolerance := int(math.Round(float64(width) * toleranceRatio))
	// An empty band would be vacuously lit and hold its key forever, so the
	// trim always leaves at least one sample column.
	if max := (width - 1) / 2; tolerance > max {
		tolerance = max
	}

	signals := make([]bool, columns)
	for i := range signals {
		signals[i] = bandLit(f, i*width+tolerance, (i+1)*width-tolerance)
	}
	return signals, nil
}

// bandLit reports whether every sample in frame columns [x0, x1) is On,
// across all rows. Strict AND reduction, no partial threshold.
func bandLit(f *frame.Frame, x0, x1 int) bool {
	for y := 0; y < f.Height(); y++ {
		for x := x0; x < x1; x++ {
			if f.At(x, y) != frame.On {
				return false
			}
		}
	}
	return true
}

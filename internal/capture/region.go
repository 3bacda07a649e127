// Package capture grabs the configured screen strip.
package capture

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/softpedal/lanebot/internal/errors"
)

// Region is the capture rectangle in screen pixel coordinates. It should sit
// on the judgment line, one to five pixels tall, exactly as wide as the play
// area.
type Region struct {
	X1, Y1, X2, Y2 int
}

// NewRegion validates the rectangle. Zero or negative extent fails fast so a
// degenerate reduction can never start.
func NewRegion(x1, y1, x2, y2 int) (Region, error) {
	if x2 <= x1 {
		return Region{}, errors.Newf(errors.CodeInvalidRegion,
			"region width must be positive: x1=%d x2=%d", x1, x2)
	}
	if y2 <= y1 {
		return Region{}, errors.Newf(errors.CodeInvalidRegion,
			"region height must be positive: y1=%d y2=%d", y1, y2)
	}
	return Region{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// ParseRegion reads a "x1,y1,x2,y2" string, as supplied by flags or env.
func ParseRegion(s string) (Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Region{}, errors.Newf(errors.CodeInvalidRegion,
			"region %q must have four comma-separated coordinates", s)
	}
	coords := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, errors.Wrapf(err, errors.CodeInvalidRegion,
				"region coordinate %d of %q is not an integer", i, s)
		}
		coords[i] = v
	}
	return NewRegion(coords[0], coords[1], coords[2], coords[3])
}

// Width returns the region width in pixels.
func (r Region) Width() int { return r.X2 - r.X1 }

// Height returns the region height in pixels.
func (r Region) Height() int { return r.Y2 - r.Y1 }

// Rect converts to an image.Rectangle for the screenshot API.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// String renders the region in the same form ParseRegion accepts.
func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X1, r.Y1, r.X2, r.Y2)
}

package capture

import (
	"image"

	"github.com/kbinani/screenshot"

	"github.com/softpedal/lanebot/internal/errors"
)

// Grabber returns one capture of the region per call, synchronously.
type Grabber interface {
	Grab() (*image.RGBA, error)
}

// ScreenGrabber grabs the region through the OS screenshot API.
type ScreenGrabber struct {
	region Region
}

// NewScreenGrabber creates a grabber for a validated region.
func NewScreenGrabber(region Region) *ScreenGrabber {
	return &ScreenGrabber{region: region}
}

// Grab captures the region. Failures are not retried; the control loop has
// no recovery policy and surfaces the error instead.
func (g *ScreenGrabber) Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(g.region.Rect())
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeCaptureFailed,
			"grabbing region %s", g.region)
	}
	return img, nil
}

// Region returns the rectangle this grabber captures.
func (g *ScreenGrabber) Region() Region { return g.region }

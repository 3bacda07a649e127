package vision

import (
	"log/slog"

	"gocv.io/x/gocv"

	"github.com/softpedal/lanebot/internal/capture"
	"github.com/softpedal/lanebot/internal/errors"
)

// Preview shows the live thresholded strip in a window so the capture region
// can be tuned by eye. No automation side effects. Returns when quitKey is
// pressed with the window focused.
func (b *Binarizer) Preview(grabber capture.Grabber, quitKey rune) error {
	window := gocv.NewWindow("lanebot: find the region")
	defer window.Close()

	slog.Info("calibration preview running", "quit_key", string(quitKey))

	for {
		img, err := grabber.Grab()
		if err != nil {
			return err
		}
		src, err := gocv.ImageToMatRGBA(img)
		if err != nil {
			return errors.Wrap(err, errors.CodeMalformedFrame, "converting capture to matrix")
		}
		bin := b.binarizeMat(src)
		window.IMShow(bin)
		bin.Close()
		src.Close()

		if window.WaitKey(1) == int(quitKey) {
			return nil
		}
	}
}

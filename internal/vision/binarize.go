// Package vision converts raw captures into binary frames using OpenCV.
package vision

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/softpedal/lanebot/internal/errors"
	"github.com/softpedal/lanebot/internal/frame"
)

const (
	// DefaultThreshold separates lit notes from the dark judgment line with
	// the reference skin.
	DefaultThreshold = 40

	onValue = 255
)

// Binarizer grayscales a capture and applies a fixed binary threshold,
// producing exactly two levels: 0 and 255.
type Binarizer struct {
	threshold float32
}

// NewBinarizer validates the threshold at construction.
func NewBinarizer(threshold int) (*Binarizer, error) {
	if threshold < 0 || threshold >= onValue {
		return nil, errors.Newf(errors.CodeConfigInvalid,
			"threshold must be in [0, %d), got %d", onValue, threshold)
	}
	return &Binarizer{threshold: float32(threshold)}, nil
}

// Binarize reduces an RGBA capture to a binary frame.
func (b *Binarizer) Binarize(img *image.RGBA) (*frame.Frame, error) {
	src, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformedFrame, "converting capture to matrix")
	}
	defer src.Close()

	bin := b.binarizeMat(src)
	defer bin.Close()

	return frame.FromBytes(bin.ToBytes(), bin.Cols(), bin.Rows())
}

// binarizeMat applies grayscale then threshold. Caller closes the result.
func (b *Binarizer) binarizeMat(src gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorRGBAToGray)

	bin := gocv.NewMat()
	gocv.Threshold(gray, &bin, b.threshold, onValue, gocv.ThresholdBinary)
	return bin
}

package capture

import (
	"image"

	"github.com/corona10/goimagehash"
)

// Frames within this pHash Hamming distance count as unchanged.
const maxHashDistance = 3

// Detector reports whether a grabbed frame differs perceptibly from the
// previous one. Diagnostics only: a strip that never changes usually means
// the capture region is off the play area. The control loop still processes
// every frame.
type Detector struct {
	lastHash *goimagehash.ImageHash
}

// NewDetector creates a change detector with no prior frame.
func NewDetector() *Detector { return &Detector{} }

// Changed hashes img against the previous frame. The first frame, and any
// frame that fails to hash, counts as changed.
func (d *Detector) Changed(img image.Image) bool {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return true
	}
	if d.lastHash == nil {
		d.lastHash = hash
		return true
	}
	dist, err := d.lastHash.Distance(hash)
	d.lastHash = hash
	if err != nil {
		return true
	}
	return dist > maxHashDistance
}

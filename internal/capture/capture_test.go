package capture

import (
	"image"
	"image/color"
	"testing"

	"github.com/softpedal/lanebot/internal/errors"
)

func TestNewRegion(t *testing.T) {
	r, err := NewRegion(250, 574, 510, 575)
	if err != nil {
		t.Fatalf("NewRegion error: %v", err)
	}
	if r.Width() != 260 {
		t.Errorf("Width() = %d, want 260", r.Width())
	}
	if r.Height() != 1 {
		t.Errorf("Height() = %d, want 1", r.Height())
	}
}

func TestNewRegionInvalid(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"zero width", 10, 0, 10, 5},
		{"negative width", 20, 0, 10, 5},
		{"zero height", 0, 7, 5, 7},
		{"negative height", 0, 9, 5, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRegion(tc.x1, tc.y1, tc.x2, tc.y2); !errors.IsCode(err, errors.CodeInvalidRegion) {
				t.Errorf("error = %v, want INVALID_REGION", err)
			}
		})
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("225, 574, 575, 575")
	if err != nil {
		t.Fatalf("ParseRegion error: %v", err)
	}
	want := Region{X1: 225, Y1: 574, X2: 575, Y2: 575}
	if r != want {
		t.Errorf("ParseRegion = %+v, want %+v", r, want)
	}
}

func TestParseRegionInvalid(t *testing.T) {
	for _, s := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d", "10,0,5,5"} {
		if _, err := ParseRegion(s); !errors.IsCode(err, errors.CodeInvalidRegion) {
			t.Errorf("ParseRegion(%q) error = %v, want INVALID_REGION", s, err)
		}
	}
}

func TestRegionRoundTrip(t *testing.T) {
	r := Region{X1: 250, Y1: 574, X2: 510, Y2: 575}
	parsed, err := ParseRegion(r.String())
	if err != nil {
		t.Fatalf("ParseRegion(%q) error: %v", r.String(), err)
	}
	if parsed != r {
		t.Errorf("round trip = %+v, want %+v", parsed, r)
	}
}

// makePattern builds visually distinct 64x64 test images for pHash checks.
func makePattern(pattern int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			var c color.RGBA
			switch pattern {
			case 0: // solid gray
				c = color.RGBA{R: 128, G: 128, B: 128, A: 255}
			case 1: // checkerboard
				if (x/8+y/8)%2 == 0 {
					c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
				} else {
					c = color.RGBA{A: 255}
				}
			case 2: // horizontal gradient
				c = color.RGBA{R: uint8(x * 4), B: uint8(255 - x*4), A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDetectorFirstFrame(t *testing.T) {
	d := NewDetector()
	if !d.Changed(makePattern(0)) {
		t.Error("first frame should count as changed")
	}
}

func TestDetectorIdenticalFrames(t *testing.T) {
	d := NewDetector()
	img := makePattern(0)
	d.Changed(img)
	if d.Changed(img) {
		t.Error("identical frames should count as unchanged")
	}
}

func TestDetectorDistinctFrames(t *testing.T) {
	d := NewDetector()
	d.Changed(makePattern(1))
	if !d.Changed(makePattern(2)) {
		t.Error("visually distinct frames should count as changed")
	}
}

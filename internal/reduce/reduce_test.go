package reduce

import (
	"testing"

	"github.com/softpedal/lanebot/internal/errors"
	"github.com/softpedal/lanebot/internal/frame"
)

// uniformFrame builds a width x height frame with every sample set to level.
func uniformFrame(t *testing.T, width, height int, level frame.Level) *frame.Frame {
	t.Helper()
	rows := make([][]frame.Level, height)
	for y := range rows {
		row := make([]frame.Level, width)
		for x := range row {
			row[x] = level
		}
		rows[y] = row
	}
	f, err := frame.New(rows)
	if err != nil {
		t.Fatalf("building %dx%d frame: %v", width, height, err)
	}
	return f
}

func TestPartitionCoverage(t *testing.T) {
	for columns := 1; columns <= 10; columns++ {
		for _, width := range []int{columns, columns + 1, columns * 7, 100} {
			if width < columns {
				continue
			}
			f := uniformFrame(t, width, 2, frame.On)
			signals, err := Reduce(f, columns)
			if err != nil {
				t.Fatalf("Reduce(width=%d, columns=%d) error: %v", width, columns, err)
			}
			if len(signals) != columns {
				t.Errorf("Reduce(width=%d, columns=%d) produced %d signals, want %d",
					width, columns, len(signals), columns)
			}
		}
	}
}

func TestAllLit(t *testing.T) {
	f := uniformFrame(t, 100, 3, frame.On)
	signals, err := Reduce(f, 4)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	for i, s := range signals {
		if !s {
			t.Errorf("signal[%d] = false, want true for all-lit frame", i)
		}
	}
}

func TestAllDark(t *testing.T) {
	f := uniformFrame(t, 100, 3, frame.Off)
	signals, err := Reduce(f, 4)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	for i, s := range signals {
		if s {
			t.Errorf("signal[%d] = true, want false for all-dark frame", i)
		}
	}
}

// Width 100 with 4 columns gives band width 25 and tolerance 5, so band 0
// covers samples [5, 20). Light exactly that range and darken one sample of
// band 2's range to check the arithmetic.
func TestBandArithmetic(t *testing.T) {
	row := make([]frame.Level, 100)
	for x := 5; x < 20; x++ {
		row[x] = frame.On
	}
	// Band 2 covers [55, 70); light all but one sample.
	for x := 55; x < 70; x++ {
		row[x] = frame.On
	}
	row[63] = frame.Off

	f, err := frame.New([][]frame.Level{row})
	if err != nil {
		t.Fatalf("frame.New error: %v", err)
	}
	signals, err := Reduce(f, 4)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}

	want := []bool{true, false, false, false}
	for i := range want {
		if signals[i] != want[i] {
			t.Errorf("signal[%d] = %v, want %v", i, signals[i], want[i])
		}
	}
}

// A sample just outside the trimmed band must not affect the signal.
func TestToleranceExcludesBandEdges(t *testing.T) {
	row := make([]frame.Level, 100)
	for x := 5; x < 20; x++ {
		row[x] = frame.On
	}
	// Lit noise in the trimmed margins of band 0: [0,5) and [20,25).
	row[4] = frame.On
	row[20] = frame.On

	f, err := frame.New([][]frame.Level{row})
	if err != nil {
		t.Fatalf("frame.New error: %v", err)
	}
	signals, err := Reduce(f, 4)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	if !signals[0] {
		t.Error("signal[0] = false, want true: margin samples must be ignored")
	}

	// Now darken one sample inside the band.
	row[12] = frame.Off
	f, err = frame.New([][]frame.Level{row})
	if err != nil {
		t.Fatalf("frame.New error: %v", err)
	}
	signals, err = Reduce(f, 4)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	if signals[0] {
		t.Error("signal[0] = true, want false: one dark sample breaks the AND")
	}
}

// With band width 3 the raw tolerance rounds to 1 on both edges, which would
// leave a single sample; the clamp must never empty a band, so a dark frame
// stays dark instead of going vacuously lit.
func TestNarrowBandNeverVacuous(t *testing.T) {
	for _, width := range []int{4, 6, 8} {
		f := uniformFrame(t, width, 1, frame.Off)
		signals, err := Reduce(f, 2)
		if err != nil {
			t.Fatalf("Reduce(width=%d) error: %v", width, err)
		}
		for i, s := range signals {
			if s {
				t.Errorf("width=%d signal[%d] = true, want false: band must keep samples", width, i)
			}
		}
	}
}

func TestReduceValidation(t *testing.T) {
	f := uniformFrame(t, 10, 1, frame.On)

	if _, err := Reduce(f, 0); !errors.IsCode(err, errors.CodeInvalidColumns) {
		t.Errorf("columns=0 error = %v, want INVALID_COLUMNS", err)
	}
	if _, err := Reduce(f, -1); !errors.IsCode(err, errors.CodeInvalidColumns) {
		t.Errorf("columns=-1 error = %v, want INVALID_COLUMNS", err)
	}
	if _, err := Reduce(nil, 2); !errors.IsCode(err, errors.CodeMalformedFrame) {
		t.Errorf("nil frame error = %v, want MALFORMED_FRAME", err)
	}
	if _, err := Reduce(f, 11); !errors.IsCode(err, errors.CodeMalformedFrame) {
		t.Errorf("frame narrower than columns error = %v, want MALFORMED_FRAME", err)
	}
}

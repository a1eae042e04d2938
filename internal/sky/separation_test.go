// Public domain.

package sky_test

import (
	"math"
	"testing"

	"github.com/soniakeys/snflog/internal/sky"
	"github.com/soniakeys/unit"
)

func TestSeparationSame(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {1.2, .3}, {6, -1.5}, {math.Pi, math.Pi / 2}} {
		r, d := unit.Angle(p[0]), unit.Angle(p[1])
		s, err := sky.Separation(r, d, r, d)
		if err != nil || s != 0 {
			t.Errorf("Separation(%v, %v) with itself = %v, %v", r, d, s, err)
		}
	}
}

var sepTests = []struct {
	ra1, dec1, ra2, dec2 float64
	sep                  float64
}{
	{0, 0, 0, 90, 90},
	{0, 0, 90, 0, 90},
	{0, 0, 180, 0, 180},
	{10, 20, 10, 25, 5},
	{359.5, 0, .5, 0, 1},
	{0, 89, 180, 89, 2},
}

func TestSeparationDeg(t *testing.T) {
	for _, tc := range sepTests {
		s, err := sky.SeparationDeg(tc.ra1, tc.dec1, tc.ra2, tc.dec2)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(s-tc.sep) > 1e-9 {
			t.Errorf("SeparationDeg(%v, %v, %v, %v) = %v, want %v",
				tc.ra1, tc.dec1, tc.ra2, tc.dec2, s, tc.sep)
		}
	}
}

func TestSeparationAntipodal(t *testing.T) {
	s, err := sky.Separation(0, math.Pi/2, 0, -math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Rad()-math.Pi) > 1e-9 {
		t.Errorf("pole to pole = %v", s)
	}
}

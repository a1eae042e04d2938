// Public domain.

package sky

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// cosTolerance is how far a cosine may stray past ±1 and still be taken as
// rounding.
const cosTolerance = .001

// Direction returns the unit vector toward ra, dec.
func Direction(ra, dec unit.Angle) coord.Cart {
	sr, cr := math.Sincos(ra.Rad())
	sd, cd := math.Sincos(dec.Rad())
	return coord.Cart{X: cr * cd, Y: sr * cd, Z: sd}
}

// Separation returns the angular distance between two directions.
//
// A cosine that rounding has pushed just outside [-1, 1] gives 0 or π.
// Anything further out is a RangeError.
func Separation(ra1, dec1, ra2, dec2 unit.Angle) (unit.Angle, error) {
	if ra1 == ra2 && dec1 == dec2 {
		return 0, nil
	}
	u1 := Direction(ra1, dec1)
	u2 := Direction(ra2, dec2)
	return acos(u1.Dot(&u2))
}

func acos(c float64) (unit.Angle, error) {
	if !(c < -1 || c > 1) {
		return unit.Angle(math.Acos(c)), nil
	}
	if math.Abs(math.Abs(c)-1) > cosTolerance {
		return 0, &RangeError{Cos: c}
	}
	if c > 0 {
		return 0, nil
	}
	return math.Pi, nil
}

// SeparationDeg is Separation with arguments and result in degrees.
func SeparationDeg(ra1, dec1, ra2, dec2 float64) (float64, error) {
	s, err := Separation(
		unit.Angle(ra1*math.Pi/180), unit.Angle(dec1*math.Pi/180),
		unit.Angle(ra2*math.Pi/180), unit.Angle(dec2*math.Pi/180))
	if err != nil {
		return 0, err
	}
	return s.Rad() * 180 / math.Pi, nil
}

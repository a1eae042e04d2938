// Public domain.

// Package sky holds the coordinate arithmetic used in reconstructing
// observation records: sexagesimal RA and Dec, angular separation, and
// conversion of log timestamps to Julian dates.
package sky

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Kind tags an Angle as right ascension or declination.
type Kind int

const (
	RA Kind = iota + 1
	Dec
)

func (k Kind) String() string {
	switch k {
	case RA:
		return "RA"
	case Dec:
		return "DEC"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind accepts "RA" or "DEC" in any letter case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RA":
		return RA, nil
	case "DEC":
		return Dec, nil
	}
	return 0, &FormatError{Input: s, Reason: "type is not RA or DEC"}
}

// Angle is a sexagesimal right ascension or declination.
//
// H is hours for RA and degrees for Dec.  The sign is held separately from
// the magnitude and applies only on conversion to degrees.
type Angle struct {
	Neg  bool
	H, M int
	S    float64
	Kind Kind
}

// FromDeg builds an Angle from a signed value in decimal degrees.
//
// Seconds are rounded to centiseconds.  Overflow is carried once from
// seconds to minutes and once from minutes to hours, then a single cycle is
// removed from an out of range hour (24 for RA, 90 for Dec).
func FromDeg(deg float64, k Kind) Angle {
	a := Angle{Neg: deg < 0, Kind: k}
	hour := math.Abs(deg)
	if k == RA {
		hour /= 15
	}
	a.H = int(hour)
	frac := hour - float64(a.H)
	a.M = int(frac * 60)
	a.S = float64(int((frac*3600-float64(a.M)*60)*100+.5)) / 100
	if int(a.S) >= 60 {
		a.S -= 60
		a.M++
	}
	if a.M >= 60 {
		a.M -= 60
		a.H++
	}
	switch {
	case k == RA && a.H >= 24:
		a.H -= 24
	case k != RA && a.H >= 90:
		a.H -= 90
	}
	return a
}

// Parse parses text as an Angle of kind k.
//
// Accepted forms are a decimal degree value, or 2 to 4 colon or white space
// separated fields: "H M.m", "H M S.s", and "H H M S.s" where the first two
// fields are digits of the hour.  A single leading hyphen marks a negative
// value.
func Parse(text string, k Kind) (Angle, error) {
	if k != RA && k != Dec {
		return Angle{}, &FormatError{Input: text, Reason: "type is not RA or DEC"}
	}
	s := strings.TrimSpace(text)
	neg := false
	switch parts := strings.Split(s, "-"); len(parts) {
	case 1:
	case 2:
		s = parts[1]
		neg = true
	default:
		return Angle{}, &FormatError{Input: text, Reason: "more than one hyphen"}
	}
	f := strings.Split(s, ":")
	if len(f) == 1 {
		f = strings.Fields(s)
	}
	if len(f) <= 1 {
		deg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Angle{}, &FormatError{Input: text, Reason: "invalid degree value", Err: err}
		}
		if neg {
			deg = -deg
		}
		return FromDeg(deg, k), nil
	}
	a := Angle{Neg: neg, Kind: k}
	var err error
	switch len(f) {
	case 2:
		if a.H, err = atoi(f[0]); err != nil {
			break
		}
		var m float64
		if m, err = atof(f[1]); err != nil {
			break
		}
		a.M = int(m)
		a.S = (m - float64(a.M)) * 60
	case 3:
		if a.H, err = atoi(f[0]); err != nil {
			break
		}
		if a.M, err = atoi(f[1]); err != nil {
			break
		}
		a.S, err = atof(f[2])
	case 4:
		if a.H, err = atoi(f[0] + f[1]); err != nil {
			break
		}
		if a.M, err = atoi(f[2]); err != nil {
			break
		}
		a.S, err = atof(f[3])
	default:
		return Angle{}, &FormatError{Input: text,
			Reason: fmt.Sprintf("%d fields, want 2 to 4", len(f))}
	}
	if err != nil {
		return Angle{}, &FormatError{Input: text, Reason: "invalid field", Err: err}
	}
	return a, nil
}

func atoi(s string) (int, error)     { return strconv.Atoi(strings.TrimSpace(s)) }
func atof(s string) (float64, error) { return strconv.ParseFloat(strings.TrimSpace(s), 64) }

// Deg returns the signed value in decimal degrees.
func (a Angle) Deg() float64 {
	d := math.Abs(float64(a.H)) + (float64(a.M)+a.S/60)/60
	if a.Kind == RA {
		d *= 15
	}
	if a.Neg {
		return -d
	}
	return d
}

// Rad returns the signed value in radians.
func (a Angle) Rad() float64 {
	return a.Deg() * math.Pi / 180
}

// Unit returns the value as a unit.Angle.
func (a Angle) Unit() unit.Angle {
	return unit.Angle(a.Rad())
}

// Sexa returns a formatter for the angle, in hours for RA and degrees for
// Dec, with unit symbols.
func (a Angle) Sexa() fmt.Formatter {
	if a.Kind == RA {
		return sexa.FmtRA(unit.RA(a.Rad()))
	}
	return sexa.FmtAngle(a.Unit())
}

func (a Angle) String() string {
	if a.Neg {
		return fmt.Sprintf("-%02d:%02d:%05.2f", a.H, a.M, a.S)
	}
	return fmt.Sprintf("%02d:%02d:%05.2f", a.H, a.M, a.S)
}

// Add returns a + b.  Both angles must be of the same kind.
func (a Angle) Add(b Angle) (Angle, error) {
	if a.Kind != b.Kind {
		return Angle{}, fmt.Errorf("sky: cannot add %v to %v", b.Kind, a.Kind)
	}
	return FromDeg(a.Deg()+b.Deg(), a.Kind), nil
}

// Sub returns a - b.  Both angles must be of the same kind.
func (a Angle) Sub(b Angle) (Angle, error) {
	if a.Kind != b.Kind {
		return Angle{}, fmt.Errorf("sky: cannot subtract %v from %v", b.Kind, a.Kind)
	}
	return FromDeg(a.Deg()-b.Deg(), a.Kind), nil
}

// SubOffset returns the angle less a pointing offset.
//
// The offset is taken as seconds of arc whatever the kind, which is how
// telescope offsets are logged for both axes.
func (a Angle) SubOffset(offset unit.Angle) Angle {
	return FromDeg(a.Deg()-offset.Deg(), a.Kind)
}

// Public domain.

package sky

import (
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

var months = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// UTCToJD converts a UTC timestamp to a Julian date.
//
// Two layouts are accepted, the output of `date --utc`,
//
//	Wed Sep 28 08:47:17 UTC 2005
//
// and the FITS header form,
//
//	2005-02-23T15:40:03
//
// Any number of spaces may separate fields of the first form.  Fields past
// the year are ignored.
func UTCToJD(text string) (float64, error) {
	s := strings.TrimSpace(text)
	var y, m, d int
	var hms []string
	var err error
	if strings.Contains(s, " ") {
		f := strings.Fields(s)
		if len(f) < 6 {
			return 0, &FormatError{Input: text, Reason: "too few date fields"}
		}
		if f[4] != "UTC" {
			return 0, &FormatError{Input: text, Reason: "time zone " + f[4] + " is not UTC"}
		}
		var ok bool
		if m, ok = months[f[1]]; !ok {
			return 0, &FormatError{Input: text, Reason: "unknown month " + f[1]}
		}
		if d, err = strconv.Atoi(f[2]); err != nil {
			return 0, &FormatError{Input: text, Reason: "invalid day", Err: err}
		}
		if y, err = strconv.Atoi(f[5]); err != nil {
			return 0, &FormatError{Input: text, Reason: "invalid year", Err: err}
		}
		hms = strings.Split(f[3], ":")
	} else {
		date, clock, ok := strings.Cut(s, "T")
		if !ok {
			return 0, &FormatError{Input: text, Reason: "no T separator"}
		}
		ymd := strings.Split(date, "-")
		if len(ymd) != 3 {
			return 0, &FormatError{Input: text, Reason: "date is not YYYY-MM-DD"}
		}
		if y, err = strconv.Atoi(ymd[0]); err == nil {
			if m, err = strconv.Atoi(ymd[1]); err == nil {
				d, err = strconv.Atoi(ymd[2])
			}
		}
		if err != nil {
			return 0, &FormatError{Input: text, Reason: "invalid date", Err: err}
		}
		hms = strings.Split(clock, ":")
	}
	if len(hms) != 3 {
		return 0, &FormatError{Input: text, Reason: "time is not HH:MM:SS"}
	}
	var hh, mm, ss float64
	if hh, err = strconv.ParseFloat(hms[0], 64); err == nil {
		if mm, err = strconv.ParseFloat(hms[1], 64); err == nil {
			ss, err = strconv.ParseFloat(hms[2], 64)
		}
	}
	if err != nil {
		return 0, &FormatError{Input: text, Reason: "invalid time", Err: err}
	}
	return calendarToJD(y, m, d, hh+mm/60+ss/3600), nil
}

// calendarToJD is the USNO calendar date formula, ut in hours.
func calendarToJD(y, m, d int, ut float64) float64 {
	sig := -1.
	if float64(100*y+m)-190002.5 > 0 {
		sig = 1
	}
	n := 367*y - 7*(y+(m+9)/12)/4 + 275*m/9 + d
	return float64(n) + 1721013.5 + ut/24 - .5*sig + .5
}

// JDToTime converts a Julian date to a UTC time.Time.
func JDToTime(jd float64) time.Time {
	return julian.JDToTime(jd)
}

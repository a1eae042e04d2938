// Public domain.

package sky_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/snflog/internal/sky"
)

func ExampleUTCToJD() {
	jd, _ := sky.UTCToJD("Wed Sep 28 08:47:17 UTC 2005")
	fmt.Printf("%.5f\n", jd)
	// Output:
	// 2453641.86617
}

func TestUTCToJDLayouts(t *testing.T) {
	a, err := sky.UTCToJD("Wed Sep 28 08:47:17 UTC 2005")
	if err != nil {
		t.Fatal(err)
	}
	b, err := sky.UTCToJD("2005-09-28T08:47:17")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-b) > 1e-4 {
		t.Fatalf("layouts disagree: %v, %v", a, b)
	}
	// double space between month and day, as date pads single digit days
	c, err := sky.UTCToJD("  Thu Sep  1 00:00:00 UTC 2005 ")
	if err != nil {
		t.Fatal(err)
	}
	if c != 2453614.5 {
		t.Fatalf("Sep 1 2005 = %v", c)
	}
}

func TestUTCToJDMeeus(t *testing.T) {
	for _, tc := range []struct {
		s  string
		tm time.Time
	}{
		{"2004-03-01T00:00:00", time.Date(2004, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2005-02-23T15:40:3", time.Date(2005, 2, 23, 15, 40, 3, 0, time.UTC)},
		{"2010-12-31T23:59:59.5", time.Date(2010, 12, 31, 23, 59, 59, 5e8, time.UTC)},
		{"Sun Jun 15 12:00:00 UTC 2014", time.Date(2014, 6, 15, 12, 0, 0, 0, time.UTC)},
	} {
		got, err := sky.UTCToJD(tc.s)
		if err != nil {
			t.Fatal(err)
		}
		tm := tc.tm
		day := float64(tm.Day()) +
			(float64(tm.Hour())+float64(tm.Minute())/60+
				(float64(tm.Second())+float64(tm.Nanosecond())/1e9)/3600)/24
		want := julian.CalendarGregorianToJD(tm.Year(), int(tm.Month()), day)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("UTCToJD(%q) = %v, want %v", tc.s, got, want)
		}
	}
}

func TestUTCToJDErrors(t *testing.T) {
	for _, s := range []string{
		"Wed Sep 28 08:47:17 HST 2005",
		"Wed Foo 28 08:47:17 UTC 2005",
		"Wed Sep 28 08:47 UTC 2005",
		"Wed Sep 28 08:47:17",
		"2005-09-28",
		"2005-09T08:47:17",
		"2005-09-28T08:47:xx",
		"",
	} {
		_, err := sky.UTCToJD(s)
		var fe *sky.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("UTCToJD(%q) error = %v, want FormatError", s, err)
		}
	}
}

func TestJDToTime(t *testing.T) {
	jd, err := sky.UTCToJD("2005-09-28T08:47:17")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2005, 9, 28, 8, 47, 17, 0, time.UTC)
	if d := sky.JDToTime(jd).Sub(want); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("JDToTime = %v, want %v", sky.JDToTime(jd), want)
	}
}

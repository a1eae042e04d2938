// Public domain.

package runlog_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/snflog/internal/runlog"
	"github.com/soniakeys/snflog/internal/sky"
)

const (
	hdrObject = "05 271 010 /home/snifs/bin/do_object 3 0 init (-o SN2005cf -d Candidate -t 300) ==> Wed Sep 28 08:47:17 UTC 2005"
	poseObj1  = "05 271 010 /home/snifs/bin/do_object 3 1 P R B ==> Wed Sep 28 08:53:02 UTC 2005"
	poseObj2  = "05 271 010 /home/snifs/bin/do_object 3 2 R B ==> Wed Sep 28 08:59:40 UTC 2005"
)

func TestParseRun(t *testing.T) {
	r, err := runlog.ParseRun(hdrObject)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID() != "05271010" {
		t.Errorf("ID = %q", r.ID())
	}
	if r.Year != 5 || r.Day != 271 || r.Num != 10 || r.NbExp != 3 {
		t.Errorf("identity = %d %d %d, %d exposures", r.Year, r.Day, r.Num, r.NbExp)
	}
	if r.Script != "do_object" {
		t.Errorf("Script = %q", r.Script)
	}
	if r.Option != "-o SN2005cf -d Candidate -t 300" {
		t.Errorf("Option = %q", r.Option)
	}
	if r.Target != "SN2005cf" || r.Kind != "Candidate" || r.Type != "OBJECT" {
		t.Errorf("class = %q %q %q", r.Target, r.Kind, r.Type)
	}
	want, _ := sky.UTCToJD("Wed Sep 28 08:47:17 UTC 2005")
	if r.Date != want {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
	if r.Quality != runlog.QualityGood || r.QualityS != "" || r.TargetID != "" {
		t.Errorf("quality = %v %q, target id %q", r.Quality, r.QualityS, r.TargetID)
	}
	if len(r.Exp) != 0 {
		t.Errorf("new run has %d exposures", len(r.Exp))
	}
}

func TestParseRunNoOption(t *testing.T) {
	r, err := runlog.ParseRun("14 100 001 /snifs/do_dark 1 0 init ==> 2014-04-10T06:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if r.Option != "" || r.Type != "DARK" || r.Target != "no light" || r.Kind != "Calib" {
		t.Errorf("run = %+v", r)
	}
}

func TestParseRunErrors(t *testing.T) {
	var fe *runlog.FormatError
	var ce *runlog.ClassificationError
	for _, tc := range []struct {
		line   string
		target any
	}{
		{poseObj1, &fe},
		{"05 271 010 do_object 3 0", &fe},
		{"05 271 010 /bin/do_dark 3 0 init Wed Sep 28 08:47:17 UTC 2005", &fe},
		{"05 271 010 /bin/do_dark 3 0 init ==> Wed Sep 28 08:47:17 HST 2005", &fe},
		{"05 27x 010 /bin/do_dark 3 0 init ==> Wed Sep 28 08:47:17 UTC 2005", &fe},
		{"05 271 010 /bin/do_dark x 0 init ==> Wed Sep 28 08:47:17 UTC 2005", &fe},
		{"05 271 010 /bin/do_scala 3 0 init ==> Wed Sep 28 08:47:17 UTC 2005", &ce},
	} {
		_, err := runlog.ParseRun(tc.line)
		if !errors.As(err, tc.target) {
			t.Errorf("ParseRun(%q) error = %v, want %T", tc.line, err, tc.target)
		}
	}
	_, err := runlog.ParseRun("05 271 010 /bin/do_dark 3 0 init ==> Wed Sep 28 08:47:17 HST 2005")
	var se *sky.FormatError
	if !errors.As(err, &se) {
		t.Errorf("bad time zone error %v does not wrap sky.FormatError", err)
	}
}

func TestParseExposure(t *testing.T) {
	r, err := runlog.ParseRun(hdrObject)
	if err != nil {
		t.Fatal(err)
	}
	e, err := runlog.ParseExposure(poseObj1, r, 1)
	if err != nil {
		t.Fatal(err)
	}
	if e.ID() != "05271010001" || e.Event != 1 || e.RunID != r.ID() {
		t.Errorf("exposure %s event %d run %s", e.ID(), e.Event, e.RunID)
	}
	if e.Channel != runlog.ChanP|runlog.ChanR|runlog.ChanB {
		t.Errorf("Channel = %v", e.Channel)
	}
	want, _ := sky.UTCToJD("Wed Sep 28 08:53:02 UTC 2005")
	if e.Date != want || e.MidTime != want {
		t.Errorf("Date = %v, MidTime = %v, want %v", e.Date, e.MidTime, want)
	}
	if e.Fclass != runlog.FclassNone {
		t.Errorf("Fclass = %v", e.Fclass)
	}
	if e.Quality != runlog.QualityGood || e.Filter != "Unknown" ||
		e.Seeing != -1 || e.FocusB != -1 || !math.IsNaN(e.AirMass) {
		t.Errorf("telemetry defaults not set: %+v", e.Telemetry)
	}
	e2, err := runlog.ParseExposure(poseObj2, r, 2)
	if err != nil {
		t.Fatal(err)
	}
	if e2.Channel != runlog.ChanR|runlog.ChanB || e2.Channel.String() != "BR" {
		t.Errorf("Channel = %v", e2.Channel)
	}
	if len(r.Exp) != 2 || r.Exp[0] != e || r.Exp[1] != e2 {
		t.Errorf("run exposures = %v", r.Exp)
	}
}

func TestParseExposureFclass(t *testing.T) {
	for typ, want := range map[string]runlog.Fclass{
		"SNIFS_on":   runlog.FclassOn,
		"SNIFS_off":  runlog.FclassOff,
		"SNIFS_kill": runlog.FclassKill,
		"do_arc":     runlog.FclassNone,
	} {
		r, err := runlog.ParseRun("08 010 004 /snifs/" + typ + " 1 0 init ==> 2008-01-10T01:00:00")
		if err != nil {
			t.Fatal(err)
		}
		e, err := runlog.ParseExposure("08 010 004 /snifs/"+typ+" 1 1 ==> 2008-01-10T01:00:01", r, 1)
		if err != nil {
			t.Fatal(err)
		}
		if e.Fclass != want {
			t.Errorf("%s Fclass = %v, want %v", typ, e.Fclass, want)
		}
		if e.Channel != 0 || e.Channel.String() != "-" {
			t.Errorf("%s Channel = %v", typ, e.Channel)
		}
	}
}

func TestParseExposureChannelWindow(t *testing.T) {
	r, err := runlog.ParseRun(hdrObject)
	if err != nil {
		t.Fatal(err)
	}
	// tags past the fifth are not channel tags, and unknown tags are
	// skipped.
	e, err := runlog.ParseExposure(
		"05 271 010 /home/snifs/bin/do_object 3 1 S T R X Y B ==> 2005-09-28T09:00:00", r, 1)
	if err != nil {
		t.Fatal(err)
	}
	if e.Channel != runlog.ChanR {
		t.Errorf("Channel = %v", e.Channel)
	}
}

func TestParseExposureErrors(t *testing.T) {
	r, err := runlog.ParseRun(hdrObject)
	if err != nil {
		t.Fatal(err)
	}
	var fe *runlog.FormatError
	var ce *runlog.ConsistencyError
	for _, tc := range []struct {
		line   string
		target any
	}{
		{hdrObject, &fe},
		{"05 271 011 /home/snifs/bin/do_object 3 1 P ==> 2005-09-28T09:00:00", &ce},
		{"06 271 010 /home/snifs/bin/do_object 3 1 P ==> 2005-09-28T09:00:00", &ce},
		{"05 271 010 /home/snifs/bin/do_object 3 1 P 2005-09-28T09:00:00", &fe},
		{"05 271 010 /home/snifs/bin/do_object 3 1 P ==> 2005-09-28 09:00:00", &fe},
		{"05 271 010 do_object 3", &fe},
	} {
		_, err := runlog.ParseExposure(tc.line, r, 1)
		if !errors.As(err, tc.target) {
			t.Errorf("ParseExposure(%q) error = %v, want %T", tc.line, err, tc.target)
		}
	}
	if len(r.Exp) != 0 {
		t.Errorf("failed parses appended %d exposures", len(r.Exp))
	}
}

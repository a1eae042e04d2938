// Public domain.

package runlog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/snflog/internal/script"
	"github.com/soniakeys/snflog/internal/sky"
)

// field positions shared by header and pose lines
const (
	fYear = iota
	fDay
	fRun
	fScript
	fNbExp
	fEvent
	fInit // "init" on a header, first channel tag on a pose
)

// pose lines may have up to five channel tags
const fChanEnd = fInit + 5

const timeMarker = "==>"

var rxScript = regexp.MustCompile(`([^/]\w+)$`)

// ParseRun parses a run header line.  A script that no rule classifies is
// a ClassificationError.
func ParseRun(line string) (*Run, error) {
	return parseRun(line, strings.Fields(line), false)
}

func parseRun(line string, words []string, allowUnknown bool) (*Run, error) {
	if len(words) <= fInit || words[fInit] != "init" {
		return nil, &FormatError{Line: line, Reason: "no init marker"}
	}
	var r Run
	var err error
	if r.Year, r.Day, r.Num, err = identity(line, words); err != nil {
		return nil, err
	}
	if r.NbExp, err = strconv.Atoi(words[fNbExp]); err != nil {
		return nil, &FormatError{Line: line, Reason: "invalid exposure count", Err: err}
	}
	r.Script = words[fScript]
	if m := rxScript.FindStringSubmatch(r.Script); m != nil {
		r.Script = strings.TrimSpace(m[1])
	}
	r.Option = option(line)

	c, ok := script.Classify(r.Script, r.Option)
	if !ok && !allowUnknown {
		return nil, &ClassificationError{Line: line, Script: r.Script}
	}
	r.Target, r.Kind, r.Type = c.Target, c.Kind, c.Type

	_, ts, ok := strings.Cut(line, timeMarker)
	if !ok {
		return nil, &FormatError{Line: line, Reason: "no " + timeMarker + " marker"}
	}
	if r.Date, err = sky.UTCToJD(ts); err != nil {
		return nil, &FormatError{Line: line, Reason: "invalid script start time", Err: err}
	}
	r.Quality = QualityGood
	return &r, nil
}

// option returns the text between the first "(" and the last ")" of a
// header line, less any further leading "(".
func option(line string) string {
	i := strings.Index(line, "(")
	if i < 0 {
		return ""
	}
	j := strings.LastIndex(line, ")")
	if j < i {
		return ""
	}
	return strings.TrimLeft(line[i:j], "(")
}

// identity parses the year, day and run number fields.
func identity(line string, words []string) (year, day, num int, err error) {
	if year, err = strconv.Atoi(words[fYear]); err == nil {
		if day, err = strconv.Atoi(words[fDay]); err == nil {
			num, err = strconv.Atoi(words[fRun])
		}
	}
	if err != nil {
		err = &FormatError{Line: line, Reason: "invalid year, day or run", Err: err}
	}
	return
}

// ParseExposure parses a pose line as exposure number event of run r, and
// appends the exposure to r.Exp.
func ParseExposure(line string, r *Run, event int) (*Exposure, error) {
	return parseExposure(line, strings.Fields(line), r, event)
}

func parseExposure(line string, words []string, r *Run, event int) (*Exposure, error) {
	ps, err := parsePose(line, words, r)
	if err != nil {
		return nil, err
	}
	return ps.exposure(r, event), nil
}

// pose holds what a pose line says about every exposure it creates.
type pose struct {
	channel Channel
	date    float64
}

// parsePose checks a pose line against the open run r and parses its
// channels and time.
func parsePose(line string, words []string, r *Run) (pose, error) {
	var ps pose
	if len(words) <= fInit {
		return ps, &FormatError{Line: line, Reason: "too few fields"}
	}
	if words[fInit] == "init" {
		return ps, &FormatError{Line: line, Reason: "run header where pose expected"}
	}
	year, day, num, err := identity(line, words)
	if err != nil {
		return ps, err
	}
	if year != r.Year || day != r.Day || num != r.Num {
		return ps, &ConsistencyError{Line: line, RunID: r.ID(),
			Got: runID(year, day, num)}
	}
	// channel tags run up to the first multi-character field, where the
	// timestamp text begins.
	end := fChanEnd
	for i := fInit; i < min(len(words), fChanEnd); i++ {
		if len(words[i]) > 1 {
			end = i
			break
		}
		ps.channel |= channelTag[words[i]]
	}
	end = min(end, len(words))
	_, ts, ok := strings.Cut(strings.Join(words[end:], " "), timeMarker)
	if !ok {
		return ps, &FormatError{Line: line, Reason: "no " + timeMarker + " marker"}
	}
	if ps.date, err = sky.UTCToJD(ts); err != nil {
		return ps, &FormatError{Line: line, Reason: "invalid exposure time", Err: err}
	}
	return ps, nil
}

// exposure creates exposure number event of r and appends it to r.Exp.
func (ps pose) exposure(r *Run, event int) *Exposure {
	e := &Exposure{
		Event:     event,
		RunID:     r.ID(),
		Quality:   QualityGood,
		Channel:   ps.channel,
		Fclass:    fclassOf(r.Type),
		Date:      ps.date,
		MidTime:   ps.date,
		Telemetry: NewTelemetry(),
	}
	r.Exp = append(r.Exp, e)
	return e
}

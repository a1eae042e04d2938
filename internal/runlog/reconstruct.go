// Public domain.

package runlog

import (
	"bufio"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"
)

// DefaultScalaExposures is the number of exposures a do_scala pose line
// produces.  The script logs every pose as event 1.
const DefaultScalaExposures = 100

// maxLine bounds the length of a log line.
const maxLine = 1 << 20

// Reconstructor rebuilds runs and exposures from a run log.
//
// The zero value is usable: unrecognized scripts are errors, do_scala
// gives DefaultScalaExposures exposures and nothing is logged.
type Reconstructor struct {
	// AllowUnknownScripts classifies scripts no rule covers as
	// script.Unknown rather than failing with a ClassificationError.
	AllowUnknownScripts bool
	// ScalaExposures overrides DefaultScalaExposures when > 0.
	ScalaExposures int
	// Logger, if not nil, receives incomplete run warnings and debug
	// tracing.
	Logger *slog.Logger
}

// Incomplete records a run whose exposure count differs from the count
// announced by its header.
type Incomplete struct {
	RunID    string
	Expected int
	Got      int
}

// Log is the result of reconstructing a run log.
//
// Runs and Exposures are in log order.  Runs are also indexed by ID.
type Log struct {
	Runs       []*Run
	Exposures  []*Exposure
	Incomplete []Incomplete

	byID map[string]*Run
}

// Run returns the run with the given ID, or nil.
func (l *Log) Run(id string) *Run { return l.byID[id] }

// RunOf returns the run owning e.
func (l *Log) RunOf(e *Exposure) *Run { return l.byID[e.RunID] }

// state is the reconstruction state between lines.  A nil run is the state
// before the first header.
type state struct {
	run      *Run
	expected int // exposure count announced by the header
	last     int // next event number to create
}

// step advances the state by one log line.  It returns the new state and
// the exposures the line created.
func (rc *Reconstructor) step(st state, line string) (state, []*Exposure, error) {
	line = strings.TrimSpace(line)
	if line == "" || (line[0] != '0' && line[0] != '1') {
		return st, nil, nil
	}
	words := strings.Fields(line)
	if len(words) <= fInit {
		return st, nil, &FormatError{Line: line, Reason: "too few fields"}
	}
	if words[fInit] == "init" {
		r, err := parseRun(line, words, rc.AllowUnknownScripts)
		if err != nil {
			return st, nil, err
		}
		return state{run: r, expected: r.NbExp, last: 1}, nil, nil
	}
	if st.run == nil {
		return st, nil, &SequenceError{Line: line}
	}
	var bound int
	if strings.HasPrefix(path.Base(words[fScript]), "do_scala") {
		bound = rc.scalaExposures() + 1
	} else {
		n, err := strconv.Atoi(words[fEvent])
		if err != nil {
			return st, nil, &FormatError{Line: line, Reason: "invalid event number", Err: err}
		}
		bound = n + 1
	}
	ps, err := parsePose(line, words, st.run)
	if err != nil {
		return st, nil, err
	}
	var created []*Exposure
	for n := st.last; n < bound; n++ {
		created = append(created, ps.exposure(st.run, n))
	}
	st.last = bound
	return st, created, nil
}

func (rc *Reconstructor) scalaExposures() int {
	if rc.ScalaExposures > 0 {
		return rc.ScalaExposures
	}
	return DefaultScalaExposures
}

// close checks a finished run against its announced exposure count.
func (rc *Reconstructor) close(st state) *Incomplete {
	if st.run == nil || len(st.run.Exp) == st.expected {
		return nil
	}
	if rc.Logger != nil {
		rc.Logger.Warn("incomplete run",
			"run", st.run.ID(), "script", st.run.Script,
			"expected", st.expected, "got", len(st.run.Exp))
	}
	return &Incomplete{RunID: st.run.ID(), Expected: st.expected, Got: len(st.run.Exp)}
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	return sc
}

// Reconstruct reads a complete run log.  Any error aborts reconstruction
// and no Log is returned.
func (rc *Reconstructor) Reconstruct(r io.Reader) (*Log, error) {
	l := &Log{byID: map[string]*Run{}}
	var st state
	sc := newScanner(r)
	for sc.Scan() {
		next, created, err := rc.step(st, sc.Text())
		if err != nil {
			return nil, err
		}
		if next.run != st.run {
			if inc := rc.close(st); inc != nil {
				l.Incomplete = append(l.Incomplete, *inc)
			}
			id := next.run.ID()
			if _, dup := l.byID[id]; dup {
				return nil, &ConsistencyError{Line: strings.TrimSpace(sc.Text()),
					RunID: id, Got: id}
			}
			l.byID[id] = next.run
			l.Runs = append(l.Runs, next.run)
			if rc.Logger != nil {
				rc.Logger.Debug("run", "run", id, "script", next.run.Script,
					"type", next.run.Type, "target", next.run.Target)
			}
		}
		l.Exposures = append(l.Exposures, created...)
		st = next
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inc := rc.close(st); inc != nil {
		l.Incomplete = append(l.Incomplete, *inc)
	}
	return l, nil
}

// Reconstruct reads a complete run log with a zero Reconstructor.
func Reconstruct(r io.Reader) (*Log, error) {
	return new(Reconstructor).Reconstruct(r)
}

// Splitter returns a function that reads a run log one run at a time.
//
// Each call returns the next run with its exposures, once the following
// header or the end of input shows the run is complete.  At the end of
// input it returns io.EOF.  After any other error it keeps returning that
// error.  Run IDs are not checked for duplicates.
func (rc *Reconstructor) Splitter(r io.Reader) func() (*Run, error) {
	sc := newScanner(r)
	var st state
	var done error
	return func() (*Run, error) {
		for done == nil {
			if !sc.Scan() {
				if done = sc.Err(); done == nil {
					done = io.EOF
				}
				break
			}
			next, _, err := rc.step(st, sc.Text())
			if err != nil {
				done = err
				return nil, err
			}
			prev := st
			st = next
			if next.run != prev.run && prev.run != nil {
				rc.close(prev)
				return prev.run, nil
			}
		}
		if done == io.EOF && st.run != nil {
			last := st
			st = state{}
			rc.close(last)
			return last.run, nil
		}
		return nil, done
	}
}

// Public domain.

// Package runlog reconstructs runs and exposures from SNIFS run logs.
//
// A run log has one line per run header and one per pose.  Both share the
// first six fields,
//
//	YY DDD RRR <script path> <expected events> <event>
//
// A header carries "init" as the seventh field, an optional option string
// in parentheses and a "==>" marker followed by the script start time.  A
// pose line carries single letter channel tags from the seventh field on
// and a "==>" marker followed by the exposure time.
package runlog

import (
	"fmt"
	"time"

	"github.com/soniakeys/snflog/internal/sky"
)

// Quality is the quality flag of a run or exposure.
type Quality int

const (
	QualityUnknown Quality = iota
	QualityGood
	QualityWarning
	QualityError
)

var qualityNames = [...]string{"unknown", "good", "warning", "error"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// Run is one invocation of an observing script.
type Run struct {
	Year, Day, Num int
	NbExp          int // exposures announced by the header
	Target         string
	Kind           string
	Type           string
	Date           float64 // Julian date of script start
	Script         string
	Option         string

	Quality  Quality
	QualityS string // quality detail codes, PtE, MtE, MpE, TmE
	TargetID string // catalog target, set after target matching

	// Exp holds the run's exposures in log order.
	Exp []*Exposure
}

// runID formats the 8 character run key YYDDDRRR.
func runID(year, day, num int) string {
	return fmt.Sprintf("%02d%03d%03d", year, day, num)
}

// ID returns the run key, YYDDDRRR.
func (r *Run) ID() string { return runID(r.Year, r.Day, r.Num) }

// Time returns the script start time.
func (r *Run) Time() time.Time { return sky.JDToTime(r.Date) }

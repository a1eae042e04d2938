// Public domain.

package runlog

import "fmt"

// FormatError reports a log line that does not have the expected shape.
type FormatError struct {
	Line   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("runlog: %s, line %q: %v", e.Reason, e.Line, e.Err)
	}
	return fmt.Sprintf("runlog: %s, line %q", e.Reason, e.Line)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ConsistencyError reports a line whose run identity conflicts with a run
// already read: a pose line for a run other than the open one, or a second
// header for the same run.
type ConsistencyError struct {
	Line  string
	RunID string // run already read
	Got   string // run identity on the line
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("runlog: run %s conflicts with run %s, line %q",
		e.Got, e.RunID, e.Line)
}

// SequenceError reports an event line before any run header.
type SequenceError struct {
	Line string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("runlog: event line with no open run, line %q", e.Line)
}

// ClassificationError reports a script that no classification rule covers.
type ClassificationError struct {
	Line   string
	Script string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("runlog: unrecognized script %q, line %q", e.Script, e.Line)
}

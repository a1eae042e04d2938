// Public domain.

package sky

import "fmt"

// FormatError reports coordinate or timestamp text that does not have an
// accepted shape.
type FormatError struct {
	Input  string
	Reason string
	Err    error // underlying parse error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sky: %s (%q): %v", e.Reason, e.Input, e.Err)
	}
	return fmt.Sprintf("sky: %s (%q)", e.Reason, e.Input)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RangeError reports a separation cosine outside [-1, 1] by more than
// rounding can explain.
type RangeError struct {
	Cos float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sky: separation cosine %g is not near -1 or 1", e.Cos)
}

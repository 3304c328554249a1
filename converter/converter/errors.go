package converter

import "fmt"

// NotFoundError is returned when the capture file cannot be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot open capture '%s': %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError reports a data line that is not a `timestamp,level` pair.
// Line is 1-based and counts the header.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InsufficientDataError is returned when a capture holds fewer than two samples.
type InsufficientDataError struct {
	Samples int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("capture has %d data rows, at least 2 are needed", e.Samples)
}

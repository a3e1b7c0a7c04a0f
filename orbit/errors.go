package orbit

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("file is not found")
	ErrRead      = errors.New("file read error")
	ErrMalformed = errors.New("bad data")
)

// MalformedError reports a line that is not "<pen> <angle> <length>".
// Line is 1-based.
type MalformedError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad data in line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("bad data in line %d %q", e.Line, e.Text)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

package paper

import (
	"errors"
	"fmt"
)

var (
	// ErrHalt is returned when a Stop instruction executes.
	ErrHalt = errors.New("halted at stop instruction")
	// ErrAlreadyFinished is returned when stepping a machine that has circled its result.
	ErrAlreadyFinished = errors.New("machine already finished")

	ErrFieldOverflow  = errors.New("field overflow")
	ErrEmptyField     = errors.New("empty field")
	ErrMalformedField = errors.New("malformed field")
)

type ConversionError struct {
	Text   string
	Target string
	Err    error
}

func (c *ConversionError) Error() string {
	return fmt.Sprintf("convert %q to %s: %v", c.Text, c.Target, c.Err)
}

func (c *ConversionError) Unwrap() error {
	return c.Err
}

type OutOfBoundsError struct {
	IP  int
	Len int
}

func (o *OutOfBoundsError) Error() string {
	return fmt.Sprintf("instruction pointer %d out of program bounds [0, %d)", o.IP, o.Len)
}

// CallError carries a failure of a child machine up through the Call that
// spawned it.
type CallError struct {
	Depth int
	IP    int
	Err   error
}

func (c *CallError) Error() string {
	return fmt.Sprintf("call at depth %d ip %d: %v", c.Depth, c.IP, c.Err)
}

func (c *CallError) Unwrap() error {
	return c.Err
}

// IsFatal reports whether err ends the machine that produced it.
// Conversion failures are not fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var outOfBounds *OutOfBoundsError
	return errors.Is(err, ErrHalt) ||
		errors.Is(err, ErrAlreadyFinished) ||
		errors.As(err, &outOfBounds)
}

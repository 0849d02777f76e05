package textfit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a Config, marker, or Params value is rejected
	// before any measurement is attempted.
	ErrInvalidConfig = errors.New("textfit: invalid configuration")

	// ErrMeasurement matches every failure reported by a Measurer.
	ErrMeasurement = errors.New("textfit: measurement failed")

	// ErrUnknownFont is returned by the bundled measurers when no face is registered
	// under the requested font name.
	ErrUnknownFont = errors.New("textfit: unknown font")
)

// MeasureError describes a failed measurement call.
// It matches ErrMeasurement with errors.Is and unwraps to the measurer's error.
type MeasureError struct {
	Text   string
	Params Params
	Err    error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("textfit: measure %q (size %g, font %q): %v", e.Text, e.Params.Size, e.Params.Font, e.Err)
}

func (e *MeasureError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMeasurement.
func (e *MeasureError) Is(target error) bool {
	return target == ErrMeasurement
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

package textfit

import "fmt"

// Params are the rendering parameters handed verbatim to a Measurer.
type Params struct {
	// Size is the rendering size. Its unit is defined by the Measurer
	// (points for FaceMeasurer, ignored by CellMeasurer).
	Size float64

	// Font identifies the font to measure with.
	Font string
}

// Validate rejects a negative size or an empty font identifier.
func (p Params) Validate() error {
	if p.Size < 0 {
		return invalidf("negative size %g", p.Size)
	}
	if p.Font == "" {
		return invalidf("empty font identifier")
	}
	return nil
}

// Measurer maps a string and rendering parameters to its rendered dimensions.
// Implementations must be deterministic for a given (text, params) pair.
type Measurer interface {
	// Measure returns the width and height of text rendered with p.
	Measure(text string, p Params) (width, height int, err error)
}

// MeasureFunc adapts an ordinary function to the Measurer interface.
type MeasureFunc func(text string, p Params) (width, height int, err error)

// Measure calls f(text, p).
func (f MeasureFunc) Measure(text string, p Params) (int, int, error) {
	return f(text, p)
}

// measure invokes m and normalizes its failures into a *MeasureError.
func measure(m Measurer, text string, p Params) (int, int, error) {
	w, h, err := m.Measure(text, p)
	if err != nil {
		return 0, 0, &MeasureError{Text: text, Params: p, Err: err}
	}
	if w < 0 || h < 0 {
		return 0, 0, &MeasureError{Text: text, Params: p, Err: fmt.Errorf("negative extent %dx%d", w, h)}
	}
	return w, h, nil
}

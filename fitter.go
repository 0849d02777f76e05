package textfit

import (
	"log/slog"
)

// State is the conceptual state of a Fitter.
type State int

const (
	// StateFull means the visible text is the full text.
	StateFull State = iota
	// StateTruncated means the visible text is a strict prefix followed by the marker.
	StateTruncated
	// StateEmpty means not even the marker fit the last budget.
	StateEmpty
	// StateStale means the text, marker or params changed since the bounds were
	// last computed.
	StateStale
)

func (s State) String() string {
	switch s {
	case StateFull:
		return "full"
	case StateTruncated:
		return "truncated"
	case StateEmpty:
		return "empty"
	case StateStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Fitter fits a single line of text into a width budget by truncating it and
// appending a marker.
//
// The cached bounds (MaxWidth, MinWidth, MinHeight) are only refreshed by
// RecalculateMinimums (or Retruncate). SetText, SetMarker and SetParams never
// refresh them; until the caller does, Truncate decides against the old bounds.
//
// A Fitter is not safe for concurrent use.
type Fitter struct {
	measurer Measurer

	fullText string
	text     string
	marker   string
	params   Params

	maxWidth  int
	minWidth  int
	minHeight int
	stale     bool

	alignment    Alignment
	segmentation Segmentation
	search       Search
	logger       *slog.Logger
}

// Option configures a Fitter.
type Option func(*Fitter)

// WithLogger sets the logger used for truncation diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Fitter) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithSegmentation sets the unit prefixes are cut at. Default SegmentRunes.
func WithSegmentation(s Segmentation) Option {
	return func(f *Fitter) {
		f.segmentation = s
	}
}

// WithSearch sets the prefix search. Default SearchLinear.
// Only use SearchBisect with a Measurer whose widths never decrease as text grows.
func WithSearch(s Search) Option {
	return func(f *Fitter) {
		f.search = s
	}
}

// New creates a Fitter for cfg and computes its bounds with m.
// It returns an error wrapping ErrInvalidConfig for a bad config, or a
// *MeasureError if m fails.
func New(m Measurer, cfg Config, opts ...Option) (*Fitter, error) {
	if m == nil {
		return nil, invalidf("nil measurer")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	f := &Fitter{
		measurer:  m,
		fullText:  cfg.Text,
		text:      cfg.Text,
		marker:    cfg.Marker,
		params:    cfg.Params(),
		alignment: cfg.Alignment,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := f.RecalculateMinimums(); err != nil {
		return nil, err
	}
	return f, nil
}

// Text returns the visible text.
func (f *Fitter) Text() string {
	return f.text
}

// FullText returns the complete, untruncated text.
func (f *Fitter) FullText() string {
	return f.fullText
}

// Marker returns the truncation marker.
func (f *Fitter) Marker() string {
	return f.marker
}

// Params returns the measurement parameters.
func (f *Fitter) Params() Params {
	return f.params
}

// MaxWidth returns the cached width of the full text.
func (f *Fitter) MaxWidth() int {
	return f.maxWidth
}

// MinWidth returns the cached width of the marker alone.
func (f *Fitter) MinWidth() int {
	return f.minWidth
}

// MinHeight returns the cached height of the marker alone.
func (f *Fitter) MinHeight() int {
	return f.minHeight
}

// Alignment returns the label's horizontal anchor.
func (f *Fitter) Alignment() Alignment {
	return f.alignment
}

// SetAlignment sets the label's horizontal anchor.
func (f *Fitter) SetAlignment(a Alignment) error {
	if !a.Valid() {
		return invalidf("unknown alignment code %d", int(a))
	}
	f.alignment = a
	return nil
}

// State returns the Fitter's current state.
func (f *Fitter) State() State {
	switch {
	case f.stale:
		return StateStale
	case f.text == f.fullText:
		return StateFull
	case f.text == "":
		return StateEmpty
	default:
		return StateTruncated
	}
}

// Truncated reports whether the visible text differs from the full text.
func (f *Fitter) Truncated() bool {
	return f.text != f.fullText
}

// SetText replaces the full text and shows it untruncated.
// The bounds are not recomputed: call RecalculateMinimums (or Retruncate)
// before relying on Truncate for the new text.
func (f *Fitter) SetText(s string) {
	f.fullText = s
	f.text = s
	f.stale = true
}

// SetMarker replaces the truncation marker. The bounds are not recomputed.
func (f *Fitter) SetMarker(marker string) error {
	if marker == "" {
		return invalidf("empty marker")
	}
	f.marker = marker
	f.stale = true
	return nil
}

// SetParams replaces the measurement parameters. The bounds are not recomputed.
func (f *Fitter) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f.params = p
	f.stale = true
	return nil
}

// RecalculateMinimums measures the marker for MinWidth and MinHeight, and the
// full text for MaxWidth. On error the previous bounds are kept.
func (f *Fitter) RecalculateMinimums() error {
	minWidth, minHeight, err := measure(f.measurer, f.marker, f.params)
	if err != nil {
		return err
	}
	maxWidth, _, err := measure(f.measurer, f.fullText, f.params)
	if err != nil {
		return err
	}

	f.minWidth, f.minHeight = minWidth, minHeight
	f.maxWidth = maxWidth
	f.stale = false
	return nil
}

// Truncate sets the visible text to the longest prefix of the full text that,
// followed by the marker, is at most width wide. If the full text already fits
// (width >= MaxWidth) it is shown as is without measuring anything. If not even
// the marker alone fits, the visible text becomes "".
//
// On a measurement error the visible text is left unchanged.
func (f *Fitter) Truncate(width int) error {
	if f.stale {
		f.logger.Debug("truncating against stale bounds",
			slog.Int("width", width),
			slog.Int("max_width", f.maxWidth))
	}

	if width >= f.maxWidth {
		f.text = f.fullText
		return nil
	}

	offsets := boundaries(f.fullText, f.segmentation)
	n := len(offsets) - 1

	measured := 0
	fits := func(k int) (bool, error) {
		measured++
		w, _, err := measure(f.measurer, f.candidate(offsets[k]), f.params)
		if err != nil {
			return false, err
		}
		return w <= width, nil
	}

	var (
		k   int
		err error
	)
	if f.search == SearchBisect {
		k, err = longestBisect(n, fits)
	} else {
		k, err = longestLinear(n, fits)
	}
	if err != nil {
		return err
	}

	if k < 0 {
		f.text = ""
	} else {
		f.text = f.candidate(offsets[k])
	}

	f.logger.Debug("truncated text",
		slog.Int("width", width),
		slog.Int("units", n),
		slog.Int("kept", k),
		slog.Int("measurements", measured),
		slog.String("search", f.search.String()))
	return nil
}

// Retruncate recomputes the bounds, then truncates to width.
func (f *Fitter) Retruncate(width int) error {
	if err := f.RecalculateMinimums(); err != nil {
		return err
	}
	return f.Truncate(width)
}

// Rect measures the visible text.
func (f *Fitter) Rect() (width, height int, err error) {
	return measure(f.measurer, f.text, f.params)
}

// FullSizeRect measures the full text.
func (f *Fitter) FullSizeRect() (width, height int, err error) {
	return measure(f.measurer, f.fullText, f.params)
}

// CenterIn returns the anchor point that centers the label in a w x h area,
// shifted vertically by offset. The vertical position uses MinHeight, so it
// is only as fresh as the bounds. Halves round down, also for negative sizes.
func (f *Fitter) CenterIn(w, h, offset int) (x, y int) {
	return floorDiv(w, 2), floorDiv(h+f.minHeight, 2) + offset
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (f *Fitter) candidate(end int) string {
	return f.fullText[:end] + f.marker
}

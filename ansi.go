package textfit

import "github.com/charmbracelet/x/ansi"

// ANSIMeasurer measures styled terminal text by removing ANSI escape
// sequences before delegating to another Measurer, so SGR colors and
// hyperlinks do not count towards the width.
//
// A truncated prefix of styled text may lose its trailing reset sequence;
// callers that render it should reset attributes after the label.
type ANSIMeasurer struct {
	inner Measurer
	plain func(string) string
}

// ANSIOption configures an ANSIMeasurer.
type ANSIOption func(*ANSIMeasurer)

// WithDecoder runs text through a full ANSI decoder instead of stripping
// escape sequences, and measures only the runes it prints. Slower than the
// default, but it follows the decoder's reading of the stream: REP repeats
// the preceding rune and C0 controls such as tab print nothing.
func WithDecoder() ANSIOption {
	return func(m *ANSIMeasurer) {
		m.plain = decodePrinted
	}
}

// NewANSIMeasurer wraps inner.
func NewANSIMeasurer(inner Measurer, opts ...ANSIOption) *ANSIMeasurer {
	m := &ANSIMeasurer{
		inner: inner,
		plain: ansi.Strip,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Measure measures text with its escape sequences removed.
func (m *ANSIMeasurer) Measure(text string, p Params) (int, int, error) {
	return m.inner.Measure(m.plain(text), p)
}

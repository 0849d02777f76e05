package textfit

import (
	"github.com/mattn/go-runewidth"
	"github.com/unilibs/uniwidth"
)

// CellMeasurer measures text on a terminal-style grid: each rune occupies 0,
// 1 or 2 columns (combining marks, normal, wide CJK and emoji), and the
// result is scaled by the cell size. Params are ignored.
type CellMeasurer struct {
	cellWidth  int
	cellHeight int
	width      func(string) int
}

// CellOption configures a CellMeasurer.
type CellOption func(*CellMeasurer)

// WithCellSize sets the pixel size of one cell. Default 1x1, so widths are
// plain column counts.
func WithCellSize(w, h int) CellOption {
	return func(m *CellMeasurer) {
		if w > 0 {
			m.cellWidth = w
		}
		if h > 0 {
			m.cellHeight = h
		}
	}
}

// WithAmbiguousWide treats East Asian ambiguous-width runes (such as '…' and
// '§') as two columns, as CJK locales render them.
func WithAmbiguousWide() CellOption {
	return func(m *CellMeasurer) {
		cond := runewidth.NewCondition()
		cond.EastAsianWidth = true
		m.width = cond.StringWidth
	}
}

// NewCellMeasurer creates a CellMeasurer.
func NewCellMeasurer(opts ...CellOption) *CellMeasurer {
	m := &CellMeasurer{
		cellWidth:  1,
		cellHeight: 1,
		width:      uniwidth.StringWidth,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Measure returns the column width of text times the cell width, and one cell height.
func (m *CellMeasurer) Measure(text string, _ Params) (int, int, error) {
	return m.width(text) * m.cellWidth, m.cellHeight, nil
}

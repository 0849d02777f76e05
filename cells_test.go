package textfit

import (
	"testing"
)

func TestCellMeasurer(t *testing.T) {
	tests := []struct {
		name   string
		opts   []CellOption
		text   string
		width  int
		height int
	}{
		{"columns", nil, "Hello", 5, 1},
		{"empty", nil, "", 0, 1},
		{"wide runes", nil, "中文", 4, 1},
		{"mixed widths", nil, "Hello中文", 9, 1},
		{"hangul", nil, "한글", 4, 1},
		{"cell size", []CellOption{WithCellSize(8, 16)}, "中文", 32, 16},
		{"ignores bad cell size", []CellOption{WithCellSize(0, -1)}, "abc", 3, 1},
		{"ambiguous wide", []CellOption{WithAmbiguousWide()}, "…", 2, 1},
		{"ambiguous wide ascii", []CellOption{WithAmbiguousWide()}, "abc", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCellMeasurer(tt.opts...)
			w, h, err := m.Measure(tt.text, Params{Font: "any"})
			if err != nil {
				t.Fatal(err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("Measure(%q) = %dx%d, want %dx%d", tt.text, w, h, tt.width, tt.height)
			}
		})
	}
}

func TestFitterWithCellMeasurer(t *testing.T) {
	f, err := New(NewCellMeasurer(), Config{Text: "日本語のテキスト", Font: "mono"})
	if err != nil {
		t.Fatal(err)
	}
	if f.MaxWidth() != 16 {
		t.Fatalf("MaxWidth() = %d, want 16", f.MaxWidth())
	}

	// Each wide rune takes two columns, the marker one
	if err := f.Truncate(6); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "日本…" {
		t.Errorf("Truncate(6) = %q, want %q", got, "日本…")
	}
}

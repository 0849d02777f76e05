package textfit

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

// proportional gives narrow and wide letters different advances, like a real
// proportional font. It never shrinks as text grows.
var proportional = MeasureFunc(func(text string, _ Params) (int, int, error) {
	w := 0
	for _, r := range text {
		switch r {
		case 'i', 'l', ' ', '.':
			w += 4
		case 'm', 'w', 'M', 'W':
			w += 12
		default:
			w += 8
		}
	}
	return w, 16, nil
})

func drawFitter(t *rapid.T, opts ...Option) *Fitter {
	text := rapid.StringMatching(`[a-zA-Z .]{0,24}`).Draw(t, "text")
	f, err := New(proportional, Config{Text: text, Size: 12, Font: "test"}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestPropertyFullTextFits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFitter(t)
		width := rapid.IntRange(f.MaxWidth(), f.MaxWidth()+200).Draw(t, "width")

		if err := f.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if f.Text() != f.FullText() {
			t.Fatalf("Truncate(%d) = %q, want full text %q", width, f.Text(), f.FullText())
		}
	})
}

func TestPropertyNarrowerThanMarkerIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFitter(t)
		// A full text narrower than the marker fits whole before any prefix is tried
		upper := min(f.MinWidth(), f.MaxWidth()) - 1
		width := rapid.IntRange(-10, upper).Draw(t, "width")

		if err := f.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if f.Text() != "" {
			t.Fatalf("Truncate(%d) = %q, want empty", width, f.Text())
		}
	})
}

func TestPropertyVisibleTextFitsBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFitter(t)
		width := rapid.IntRange(-10, f.MaxWidth()+10).Draw(t, "width")

		if err := f.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if f.Text() == f.FullText() {
			if f.FullText() != "" && width < f.MaxWidth() {
				t.Fatalf("Truncate(%d) kept full text of width %d", width, f.MaxWidth())
			}
			return
		}
		if f.Text() == "" {
			if width >= f.MinWidth() {
				t.Fatalf("Truncate(%d) = empty, but the marker is %d wide", width, f.MinWidth())
			}
			return
		}
		w, _, err := f.Rect()
		if err != nil {
			t.Fatal(err)
		}
		if w > width {
			t.Fatalf("Truncate(%d) = %q of width %d", width, f.Text(), w)
		}
	})
}

func TestPropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFitter(t)
		width := rapid.IntRange(-10, f.MaxWidth()+10).Draw(t, "width")

		if err := f.Truncate(width); err != nil {
			t.Fatal(err)
		}
		first := f.Text()
		if err := f.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if f.Text() != first {
			t.Fatalf("Truncate(%d) gave %q then %q", width, first, f.Text())
		}
	})
}

func TestPropertyMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFitter(t)
		w1 := rapid.IntRange(-10, f.MaxWidth()+10).Draw(t, "w1")
		w2 := rapid.IntRange(w1, f.MaxWidth()+20).Draw(t, "w2")

		if err := f.Truncate(w1); err != nil {
			t.Fatal(err)
		}
		short := f.Text()
		if err := f.Truncate(w2); err != nil {
			t.Fatal(err)
		}
		long := f.Text()

		if utf8.RuneCountInString(short) > utf8.RuneCountInString(long) {
			t.Fatalf("Truncate(%d) = %q is longer than Truncate(%d) = %q", w1, short, w2, long)
		}
	})
}

func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFitter(t)
		width := rapid.IntRange(-10, f.MaxWidth()).Draw(t, "width")

		if err := f.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if err := f.RecalculateMinimums(); err != nil {
			t.Fatal(err)
		}
		if err := f.Truncate(f.MaxWidth()); err != nil {
			t.Fatal(err)
		}
		if f.Text() != f.FullText() {
			t.Fatalf("Truncate(MaxWidth) = %q, want %q", f.Text(), f.FullText())
		}
	})
}

func TestPropertyBisectMatchesLinear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z .]{0,24}`).Draw(t, "text")
		width := rapid.IntRange(-10, 250).Draw(t, "width")
		cfg := Config{Text: text, Size: 12, Font: "test"}

		linear, err := New(proportional, cfg)
		if err != nil {
			t.Fatal(err)
		}
		bisect, err := New(proportional, cfg, WithSearch(SearchBisect))
		if err != nil {
			t.Fatal(err)
		}

		if err := linear.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if err := bisect.Truncate(width); err != nil {
			t.Fatal(err)
		}
		if linear.Text() != bisect.Text() {
			t.Fatalf("Truncate(%d): linear %q, bisect %q", width, linear.Text(), bisect.Text())
		}
	})
}

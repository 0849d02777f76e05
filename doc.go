// Package textfit fits a single line of text into a width budget.
//
// Given a string, rendering parameters (size and font) and a maximum width,
// a [Fitter] finds the longest prefix of the string that, followed by a
// truncation marker, still fits. It is meant for UI labels: loading screens,
// status lines, table cells, window titles.
//
// # Quick Start
//
// Create a fitter with a measurer and truncate:
//
//	f, err := textfit.New(textfit.NewFaceMeasurer(), textfit.Config{
//	    Text: "Generating Floor...",
//	    Font: textfit.BasicFont,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := f.Truncate(70); err != nil {
//	    return err
//	}
//	fmt.Println(f.Text()) // "Generatin…"
//
// # Measurement
//
// The fitter never measures text itself. Every width comes from a [Measurer]:
//
//	type Measurer interface {
//	    Measure(text string, p Params) (width, height int, err error)
//	}
//
// Three measurers are included:
//
//   - [FaceMeasurer]: pixel metrics from golang.org/x/image font faces
//     (basicfont, or any OpenType font the caller has parsed)
//   - [CellMeasurer]: terminal columns, optionally scaled to a cell size
//   - [ANSIMeasurer]: wraps another measurer and ignores ANSI escape sequences,
//     either stripping them or, with [WithDecoder], decoding the stream
//
// Any function can be used through [MeasureFunc]. Measurement errors are never
// swallowed: they are returned as a [*MeasureError] matching [ErrMeasurement].
//
// # Bounds
//
// A fitter caches three bounds: [Fitter.MaxWidth] (the full text),
// [Fitter.MinWidth] and [Fitter.MinHeight] (the marker alone). They are
// computed by [New] and by [Fitter.RecalculateMinimums], and by nothing else.
// After [Fitter.SetText], [Fitter.SetMarker] or [Fitter.SetParams] the fitter is
// stale until the caller recomputes:
//
//	f.SetText("Generating Stuff...")
//	f.Retruncate(width) // RecalculateMinimums + Truncate
//
// # Truncation
//
// [Fitter.Truncate] works in three steps:
//
//   - If the budget is at least MaxWidth, the full text is shown and nothing is measured.
//   - Otherwise prefixes are tried from longest to shortest, each followed by
//     the marker, and the first one that fits is shown.
//   - If not even the bare marker fits, the visible text is "".
//
// A width equal to the budget fits. The default search makes one measurement
// per candidate and does not assume the metric is monotonic.
// [WithSearch]([SearchBisect]) switches to a binary search for metrics that are.
//
// Prefixes are cut between code points by default; [WithSegmentation]([SegmentGraphemes])
// cuts between grapheme clusters so emoji sequences and combining marks stay intact.
//
// # Configuration
//
// [Config] can be built in code or loaded from YAML with [LoadConfig]:
//
//	text: "Generating Floor..."
//	marker: "…"
//	size: 14
//	font: basic
//	alignment: center
//
// Alignment accepts the names left, center and right or the legacy codes 0, 1 and 2.
//
// # Thread Safety
//
// A [Fitter] is not safe for concurrent use; keep one per label and mutate it
// from the goroutine that draws it. [FaceMeasurer] is safe for concurrent use.
package textfit

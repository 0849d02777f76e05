package textfit

import "github.com/rivo/uniseg"

// Segmentation selects the unit a prefix is measured in.
type Segmentation int

const (
	// SegmentRunes counts one unit per Unicode code point.
	SegmentRunes Segmentation = iota
	// SegmentGraphemes counts one unit per extended grapheme cluster, so a
	// prefix never splits an emoji sequence or a base rune from its combining marks.
	SegmentGraphemes
)

// String returns the segmentation name.
func (s Segmentation) String() string {
	switch s {
	case SegmentRunes:
		return "runes"
	case SegmentGraphemes:
		return "graphemes"
	default:
		return "unknown"
	}
}

// boundaries returns the byte offset at which a prefix of k units ends, for
// k = 0..n, where n is the number of units in s. The result always starts
// with 0 and ends with len(s).
func boundaries(s string, seg Segmentation) []int {
	offsets := make([]int, 0, len(s)+1)

	if seg == SegmentGraphemes {
		offsets = append(offsets, 0)
		pos := 0
		rest := s
		state := -1
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			pos += len(cluster)
			offsets = append(offsets, pos)
		}
		return offsets
	}

	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

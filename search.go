package textfit

// Search selects how Truncate looks for the longest fitting prefix.
type Search int

const (
	// SearchLinear measures candidates from the longest prefix down and stops at the
	// first one that fits. It is correct for any metric and performs at most
	// one measurement per unit of text.
	SearchLinear Search = iota

	// SearchBisect binary-searches the prefix length. It needs only
	// O(log n) measurements but returns the longest fit only when the metric
	// never shrinks as the prefix grows.
	SearchBisect
)

// String returns the search name.
func (s Search) String() string {
	switch s {
	case SearchLinear:
		return "linear"
	case SearchBisect:
		return "bisect"
	default:
		return "unknown"
	}
}

// fitsFunc reports whether the candidate for prefix length k fits the budget.
type fitsFunc func(k int) (bool, error)

// longestLinear returns the largest k in [0, n) for which fits(k) holds,
// scanning k = n-1 down to 0. It returns -1 when nothing fits.
func longestLinear(n int, fits fitsFunc) (int, error) {
	for k := n - 1; k >= 0; k-- {
		ok, err := fits(k)
		if err != nil {
			return -1, err
		}
		if ok {
			return k, nil
		}
	}
	return -1, nil
}

// longestBisect returns the largest k in [0, n) for which fits(k) holds,
// assuming fits is true for a (possibly empty) run of small k and false after it.
// It returns -1 when nothing fits.
func longestBisect(n int, fits fitsFunc) (int, error) {
	low, high := -1, n-1
	for low < high {
		mid := (low + high + 1) / 2
		ok, err := fits(mid)
		if err != nil {
			return -1, err
		}
		if ok {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low, nil
}

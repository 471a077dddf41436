package levenshtein

import "github.com/Sumatoshi-tech/seqdist/pkg/seqview"

// DistanceViews returns the Levenshtein distance between two generic
// views. A predicate failure aborts the computation; no partial distance
// is returned, since DP state is incremental and meaningless mid-run.
//
// The scratch buffer is call-local and sized to the shorter view, so it
// is released on every exit path, including mid-loop failures.
func DistanceViews[T any](a, b seqview.View[T]) (int, error) {
	if a.Len() > b.Len() {
		a, b = b, a
	}

	if a.Len() == 0 {
		return b.Len(), nil
	}

	column := make([]int, a.Len()+1)
	for y := 1; y <= a.Len(); y++ {
		column[y] = y
	}

	for x := 1; x <= b.Len(); x++ {
		column[0] = x
		lastdiag := x - 1

		for y := 1; y <= a.Len(); y++ {
			olddiag := column[y]

			same, err := a.Equal(y-1, b, x-1)
			if err != nil {
				return 0, err
			}

			cost := 0
			if !same {
				cost = 1
			}

			column[y] = min(
				column[y]+1,
				column[y-1]+1,
				lastdiag+cost,
			)
			lastdiag = olddiag
		}
	}

	return column[a.Len()], nil
}

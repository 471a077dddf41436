package distance

// normalize maps a raw distance and its length-derived denominator to
// [0,1]. Both inputs empty means denom is 0; that collapses to 0 by
// convention, not by the division formula.
func normalize(dist, denom int) float64 {
	if denom == 0 {
		return 0
	}

	return float64(dist) / float64(denom)
}

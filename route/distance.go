package route

import "strconv"

// Round1 rounds v to one decimal place using the correctly rounded decimal
// representation of v.
func Round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Accumulate rounds each segment length and builds the running total by
// adding the rounded length to the previous total and rounding again, so
// rounding error carries from row to row.
func Accumulate(lengths []float64) (segments, totals []float64) {
	segments = make([]float64, len(lengths))
	totals = make([]float64, len(lengths))

	running := 0.0
	for i, l := range lengths {
		segments[i] = Round1(l)
		running = Round1(running + segments[i])
		totals[i] = running
	}

	return segments, totals
}

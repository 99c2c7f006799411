package route

// BuildRows assembles one row per segment in segment order and returns the
// final running total alongside.
func BuildRows(segments []*Segment) ([]Row, float64) {
	lengths := make([]float64, len(segments))
	for i, s := range segments {
		lengths[i] = s.LengthMiles()
	}

	dists, totals := Accumulate(lengths)

	rows := make([]Row, len(segments))
	total := 0.0
	for i, s := range segments {
		rows[i] = Row{
			Direction:    s.Direction,
			Segment:      dists[i],
			RunningTotal: totals[i],
		}
		if s.Boundary != nil {
			rows[i].Name = s.Boundary.Name
			rows[i].Description = s.Boundary.Description
		}
		total = totals[i]
	}

	return rows, total
}

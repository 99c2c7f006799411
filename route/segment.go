package route

// Split partitions tps into segments at matched trackpoints. A matched
// trackpoint closes the current segment, labelling it with its point of
// interest, and opens the next segment. The trailing run after the last
// match has no label and is dropped.
func Split(tps []*Trackpoint) []*Segment {
	current := &Segment{}
	segments := []*Segment{current}

	for _, tp := range tps {
		if poi, ok := tp.Match.Get(); ok {
			current.Boundary = poi
			current = &Segment{}
			segments = append(segments, current)
		}
		current.Points = append(current.Points, tp)
	}

	return segments[:len(segments)-1]
}

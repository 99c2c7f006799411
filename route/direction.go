package route

import (
	"math"

	"github.com/bgraf/gpxseg/geo"
	"github.com/bgraf/gpxseg/option"
)

// BearingWindow is the number of trackpoints on each side of a segment
// boundary used to measure the heading into and out of it.
const BearingWindow = 3

const (
	ContinueStraight = "continue straight"
	SlightRight      = "slight right"
	TurnRight        = "turn right"
	SharpRight       = "sharp right"
	UTurnRight       = "u-turn to the right"
	TurnAround       = "turn around"
	UTurnLeft        = "u-turn to the left"
	SharpLeft        = "sharp left"
	TurnLeft         = "turn left"
	SlightLeft       = "slight left"
)

var directions = [...]string{
	ContinueStraight,
	SlightRight,
	TurnRight,
	SharpRight,
	UTurnRight,
	TurnAround,
	UTurnLeft,
	SharpLeft,
	TurnLeft,
	SlightLeft,
	ContinueStraight,
}

// upper bounds (inclusive) of each band in directions
var bandEdges = [...]float64{10, 30, 110, 160, 170, 190, 200, 250, 330, 350, 360}

// Classify maps a heading change in degrees onto a direction label. With
// reverse set the label list is mirrored, so the same band reads left
// instead of right. Values outside [0, 360] yield an empty label.
func Classify(delta float64, reverse bool) string {
	if delta < 0 || delta > 360 || math.IsNaN(delta) {
		return ""
	}

	for i, edge := range bandEdges {
		if delta <= edge {
			if reverse {
				i = len(directions) - 1 - i
			}
			return directions[i]
		}
	}

	return ""
}

// headingIn is the bearing over the last BearingWindow points of s.
func headingIn(s *Segment) option.Option[float64] {
	n := s.Len()
	if n < BearingWindow {
		return option.None[float64]()
	}
	return option.Some(geo.BearingDegrees(s.Points[n-BearingWindow].Point, s.Points[n-1].Point))
}

// headingOut is the bearing over the first BearingWindow points of s.
func headingOut(s *Segment) option.Option[float64] {
	if s.Len() < BearingWindow {
		return option.None[float64]()
	}
	return option.Some(geo.BearingDegrees(s.Points[0].Point, s.Points[BearingWindow-1].Point))
}

// BoundaryDelta returns the heading change at the boundary between closing
// and next. If only one side has enough points its bearing is returned as
// is; if neither has, the result is None.
func BoundaryDelta(closing, next *Segment) option.Option[float64] {
	h0, ok0 := headingIn(closing).Get()
	h1, ok1 := headingOut(next).Get()

	switch {
	case ok0 && ok1:
		return option.Some(math.Mod((h1-h0)+360, 360))
	case ok0:
		return option.Some(h0)
	case ok1:
		return option.Some(h1)
	}

	return option.None[float64]()
}

// AssignDirections labels every segment that has a following segment with
// the turn at its boundary. The last segment keeps an empty direction.
func AssignDirections(segments []*Segment, reverse bool) {
	for i := 0; i < len(segments)-1; i++ {
		delta, ok := BoundaryDelta(segments[i], segments[i+1]).Get()
		if !ok {
			segments[i].Direction = ""
			continue
		}
		segments[i].Direction = Classify(delta, reverse)
	}
}

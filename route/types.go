// Package route splits a recorded track into segments bounded by nearby
// points of interest and derives a cue table from them: per-segment
// distance, running total and the turn to take at each point.
package route

import (
	"math"

	"github.com/bgraf/gpxseg/geo"
	"github.com/bgraf/gpxseg/option"
)

// PointOfInterest is a named marker along or near the route.
type PointOfInterest struct {
	Name        string
	Description string
	Symbol      string
	Point       geo.Point

	// NearestIndex is the walk position of the closest trackpoint, set by
	// MatchNearest. NearestFeet only ever decreases.
	NearestIndex option.Option[int]
	NearestFeet  float64
}

// NewPointOfInterest returns an unmatched point of interest.
func NewPointOfInterest(name, description, symbol string, p geo.Point) *PointOfInterest {
	return &PointOfInterest{
		Name:        name,
		Description: description,
		Symbol:      symbol,
		Point:       p,
		NearestFeet: math.Inf(1),
	}
}

// Trackpoint is one recorded sample along the route.
type Trackpoint struct {
	// Index is the position of the point in the recorded track, independent
	// of the walk direction.
	Index int
	Point geo.Point

	Match     option.Option[*PointOfInterest]
	MatchFeet option.Option[float64]
}

// Segment is a contiguous run of trackpoints closed by Boundary.
type Segment struct {
	Points    []*Trackpoint
	Boundary  *PointOfInterest
	Direction string
}

// Len returns the number of trackpoints in s.
func (s *Segment) Len() int {
	return len(s.Points)
}

// LengthMiles returns the summed distance between consecutive points.
func (s *Segment) LengthMiles() float64 {
	total := 0.0
	for i := 1; i < len(s.Points); i++ {
		total += geo.DistanceMiles(s.Points[i-1].Point, s.Points[i].Point)
	}
	return total
}

// Row is one line of the cue table.
type Row struct {
	Name         string
	Description  string
	Direction    string
	Segment      float64
	RunningTotal float64
}

// Walk builds the trackpoint sequence in walk order. With reverse set the
// sequence runs from the last recorded point to the first; Index keeps the
// recorded position.
func Walk(points []geo.Point, reverse bool) []*Trackpoint {
	tps := make([]*Trackpoint, len(points))
	for i, p := range points {
		pos := i
		if reverse {
			pos = len(points) - 1 - i
		}
		tps[pos] = &Trackpoint{Index: i, Point: p}
	}
	return tps
}

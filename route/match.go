package route

import (
	"math"

	"github.com/bgraf/gpxseg/geo"
	"github.com/bgraf/gpxseg/option"
)

// MatchNearest assigns every point of interest the closest trackpoint by an
// exhaustive scan, then records the claim on the trackpoint. Ties keep the
// first trackpoint seen. When several points of interest claim the same
// trackpoint the last one in pois wins.
//
// Any earlier match state on pois and tps is cleared first.
//
// progress, if non-nil, is called after each point of interest is resolved.
func MatchNearest(pois []*PointOfInterest, tps []*Trackpoint, progress func(done, total int)) {
	for _, poi := range pois {
		poi.NearestIndex = option.None[int]()
		poi.NearestFeet = math.Inf(1)
	}
	for _, tp := range tps {
		tp.Match = option.None[*PointOfInterest]()
		tp.MatchFeet = option.None[float64]()
	}

	for n, poi := range pois {
		for j, tp := range tps {
			dist := geo.DistanceFeet(tp.Point, poi.Point)
			if dist < poi.NearestFeet {
				poi.NearestIndex = option.Some(j)
				poi.NearestFeet = dist
			}
		}

		if progress != nil {
			progress(n+1, len(pois))
		}
	}

	for _, poi := range pois {
		j, ok := poi.NearestIndex.Get()
		if !ok {
			continue
		}

		tps[j].Match = option.Some(poi)
		tps[j].MatchFeet = option.Some(poi.NearestFeet)
	}
}

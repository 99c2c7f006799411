// Package geo provides distance and bearing computations between WGS84
// coordinates.
package geo

import (
	"math"

	"github.com/jftuga/geodist"
)

const feetPerMile = 5280.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat, Lon float64
}

func (p Point) coord() geodist.Coord {
	return geodist.Coord{Lat: p.Lat, Lon: p.Lon}
}

// DistanceMiles returns the ellipsoidal distance between a and b in miles.
// Vincenty's inverse formula is used; for nearly antipodal points where it
// does not converge the haversine distance is returned instead.
func DistanceMiles(a, b Point) float64 {
	if a == b {
		return 0
	}

	mi, _, err := geodist.VincentyDistance(a.coord(), b.coord())
	if err != nil || math.IsNaN(mi) {
		mi, _ = geodist.HaversineDistance(a.coord(), b.coord())
	}

	return math.Abs(mi)
}

// DistanceFeet returns the ellipsoidal distance between a and b in feet.
func DistanceFeet(a, b Point) float64 {
	return DistanceMiles(a, b) * feetPerMile
}

// BearingDegrees returns the rhumb-line heading from a to b.
//
// The longitude difference is taken as an absolute value before reducing it
// modulo pi, so the result lies in [0, 180] and does not distinguish east
// from west. Direction labels downstream depend on exactly this behavior.
func BearingDegrees(a, b Point) float64 {
	const deg2rad = math.Pi / 180

	latA := a.Lat * deg2rad
	latB := b.Lat * deg2rad
	lonA := a.Lon * deg2rad
	lonB := b.Lon * deg2rad

	deltaRatio := math.Log(math.Tan(latB/2+math.Pi/4) / math.Tan(latA/2+math.Pi/4))
	deltaLon := math.Mod(math.Abs(lonA-lonB), math.Pi)

	return math.Atan2(deltaLon, deltaRatio) / deg2rad
}

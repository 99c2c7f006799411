package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	p := Point{Lat: 42.4534, Lon: -76.4735}

	assert.Equal(t, 0.0, DistanceFeet(p, p))
	assert.Equal(t, 0.0, DistanceMiles(p, p))
}

func TestDistanceKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Point
		miles float64
	}{
		{
			// One degree of latitude at the equator on WGS84 is 110574.4 m.
			name:  "one degree latitude at equator",
			a:     Point{Lat: 0, Lon: 0},
			b:     Point{Lat: 1, Lon: 0},
			miles: 110574.4 / 1609.344,
		},
		{
			// One degree along the 45th parallel on WGS84 is about 78846.8 m.
			name:  "one degree longitude at 45N",
			a:     Point{Lat: 45, Lon: 0},
			b:     Point{Lat: 45, Lon: 1},
			miles: 78846.8 / 1609.344,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMiles(tt.a, tt.b)
			assert.InEpsilon(t, tt.miles, got, 0.001)
			assert.InEpsilon(t, tt.miles*5280, DistanceFeet(tt.a, tt.b), 0.001)
		})
	}
}

func TestDistanceNonNegativeAndSymmetric(t *testing.T) {
	points := []Point{
		{Lat: 42.0, Lon: -76.0},
		{Lat: 42.001, Lon: -76.002},
		{Lat: -33.9, Lon: 18.4},
		{Lat: 51.5, Lon: -0.12},
	}

	for _, a := range points {
		for _, b := range points {
			d := DistanceFeet(a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.InDelta(t, d, DistanceFeet(b, a), 0.01)
			if a != b {
				assert.Greater(t, d, 0.0)
			}
		}
	}
}

func TestBearingDegrees(t *testing.T) {
	origin := Point{Lat: 42.0, Lon: -76.0}

	assert.InDelta(t, 0.0, BearingDegrees(origin, Point{Lat: 42.01, Lon: -76.0}), 1e-9)
	assert.InDelta(t, 180.0, BearingDegrees(origin, Point{Lat: 41.99, Lon: -76.0}), 1e-9)
	assert.InDelta(t, 90.0, BearingDegrees(origin, Point{Lat: 42.0, Lon: -75.99}), 1e-9)

	// East and west are indistinguishable.
	east := BearingDegrees(origin, Point{Lat: 42.01, Lon: -75.99})
	west := BearingDegrees(origin, Point{Lat: 42.01, Lon: -76.01})
	assert.InDelta(t, east, west, 1e-9)
	assert.Greater(t, east, 0.0)
	assert.Less(t, east, 90.0)
}

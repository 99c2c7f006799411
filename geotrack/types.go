// Package geotrack loads recorded tracks and waypoints from GPX and NMEA
// files.
package geotrack

import "github.com/bgraf/gpxseg/geo"

type Waypoint struct {
	Name        string
	Description string
	Symbol      string
	Point       geo.Point
}

type Track struct {
	Name     string
	Segments [][]geo.Point
}

// Points returns all points of t in recording order. The position in the
// returned slice is the global point index across segments.
func (t Track) Points() []geo.Point {
	var points []geo.Point
	for _, seg := range t.Segments {
		points = append(points, seg...)
	}
	return points
}

type Document struct {
	Tracks    []Track
	Waypoints []Waypoint
}

func (d *Document) TrackNames() []string {
	names := make([]string, len(d.Tracks))
	for i, t := range d.Tracks {
		names[i] = t.Name
	}
	return names
}

// FindTrack returns the index of the track called name. If several
// tracks share the name the last one is returned.
func (d *Document) FindTrack(name string) (int, bool) {
	index, found := 0, false
	for i, t := range d.Tracks {
		if t.Name == name {
			index, found = i, true
		}
	}
	return index, found
}

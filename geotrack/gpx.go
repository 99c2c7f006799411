package geotrack

import (
	"fmt"

	"github.com/bgraf/gpxseg/geo"
	"github.com/tkrajina/gpxgo/gpx"
)

func loadGPX(trackFilePath string) (*Document, error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	return fromGPX(gpxData), nil
}

func fromGPX(gpxData *gpx.GPX) *Document {
	doc := &Document{}

	for _, track := range gpxData.Tracks {
		t := Track{Name: track.Name}
		for _, segment := range track.Segments {
			points := make([]geo.Point, 0, len(segment.Points))
			for _, p := range segment.Points {
				points = append(points, geo.Point{Lat: p.Latitude, Lon: p.Longitude})
			}
			t.Segments = append(t.Segments, points)
		}
		doc.Tracks = append(doc.Tracks, t)
	}

	for _, w := range gpxData.Waypoints {
		doc.Waypoints = append(doc.Waypoints, Waypoint{
			Name:        w.Name,
			Description: w.Description,
			Symbol:      w.Symbol,
			Point:       geo.Point{Lat: w.Latitude, Lon: w.Longitude},
		})
	}

	return doc
}

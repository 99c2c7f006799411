package geotrack

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/gpxseg/geo"
)

// loadNMEA reads a sentence log as a single track named after the file.
// Valid RMC fixes become trackpoints and WPL sentences become waypoints.
func loadNMEA(trackFilePath string) (*Document, error) {
	f, err := os.Open(trackFilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(trackFilePath)
	track := Track{Name: strings.TrimSuffix(base, filepath.Ext(base))}
	doc := &Document{}

	var points []geo.Point
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("read NMEA file line %d: %w", lineNo, err)
		}

		switch sentence.DataType() {
		case nmea.TypeRMC:
			rmc := sentence.(nmea.RMC)
			// Only active fixes carry a usable position.
			if rmc.Validity != nmea.ValidRMC {
				continue
			}
			points = append(points, geo.Point{Lat: rmc.Latitude, Lon: rmc.Longitude})
		case nmea.TypeWPL:
			wpl := sentence.(nmea.WPL)
			doc.Waypoints = append(doc.Waypoints, Waypoint{
				Name:  wpl.Ident,
				Point: geo.Point{Lat: wpl.Latitude, Lon: wpl.Longitude},
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(points) > 0 {
		track.Segments = [][]geo.Point{points}
	}
	doc.Tracks = []Track{track}

	return doc, nil
}

package geotrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bgraf/gpxseg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
	<wpt lat="42.0021" lon="-76.0001">
		<name>Lot</name>
		<desc>Gravel lot</desc>
		<sym>Parking Area</sym>
	</wpt>
	<wpt lat="42.005" lon="-76.0">
		<name>Corner</name>
		<sym>Crossing</sym>
	</wpt>
	<trk>
		<name>Main Trail</name>
		<trkseg>
			<trkpt lat="42.000" lon="-76.000"></trkpt>
			<trkpt lat="42.001" lon="-76.000"></trkpt>
		</trkseg>
		<trkseg>
			<trkpt lat="42.002" lon="-76.000"></trkpt>
		</trkseg>
	</trk>
	<trk>
		<name>Spur</name>
		<trkseg>
			<trkpt lat="42.010" lon="-76.010"></trkpt>
		</trkseg>
	</trk>
	<trk>
		<name>Main Trail</name>
		<trkseg>
			<trkpt lat="43.000" lon="-77.000"></trkpt>
		</trkseg>
	</trk>
</gpx>`

const testNMEA = `$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W,A*07
$GPRMC,123520,V,4807.100,N,01131.000,E,022.4,084.4,230394,003.1,W,N*1F

$GPRMC,123521,A,4807.200,N,01131.000,E,022.4,084.4,230394,003.1,W,A*05
$GPWPL,4807.200,N,01131.000,E,BRIDGE*5F
$GPRMC,123522,A,4807.300,N,01131.100,E,022.4,084.4,230394,003.1,W,A*06
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadGPX(t *testing.T) {
	doc, err := Load(writeFile(t, "trail.GPX", testGPX))
	require.NoError(t, err)

	require.Len(t, doc.Tracks, 3)
	assert.Equal(t, []string{"Main Trail", "Spur", "Main Trail"}, doc.TrackNames())

	trail := doc.Tracks[0]
	require.Len(t, trail.Segments, 2)
	assert.Equal(t, []geo.Point{
		{Lat: 42.000, Lon: -76.000},
		{Lat: 42.001, Lon: -76.000},
		{Lat: 42.002, Lon: -76.000},
	}, trail.Points())

	require.Len(t, doc.Waypoints, 2)
	assert.Equal(t, Waypoint{
		Name:        "Lot",
		Description: "Gravel lot",
		Symbol:      "Parking Area",
		Point:       geo.Point{Lat: 42.0021, Lon: -76.0001},
	}, doc.Waypoints[0])
	assert.Equal(t, "", doc.Waypoints[1].Description)
}

func TestFindTrack(t *testing.T) {
	doc, err := Load(writeFile(t, "trail.gpx", testGPX))
	require.NoError(t, err)

	i, ok := doc.FindTrack("Main Trail")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = doc.FindTrack("Spur")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = doc.FindTrack("Nope")
	assert.False(t, ok)
}

func TestLoadNMEA(t *testing.T) {
	doc, err := Load(writeFile(t, "morning.nmea", testNMEA))
	require.NoError(t, err)

	require.Len(t, doc.Tracks, 1)
	assert.Equal(t, "morning", doc.Tracks[0].Name)

	points := doc.Tracks[0].Points()
	require.Len(t, points, 3)
	assert.InDelta(t, 48.1173, points[0].Lat, 1e-6)
	assert.InDelta(t, 11.516667, points[0].Lon, 1e-6)
	assert.InDelta(t, 48.12, points[1].Lat, 1e-6)

	require.Len(t, doc.Waypoints, 1)
	assert.Equal(t, "BRIDGE", doc.Waypoints[0].Name)
	assert.InDelta(t, 48.12, doc.Waypoints[0].Point.Lat, 1e-6)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "trail.kml", "<kml/>"))
	assert.ErrorIs(t, err, ErrUnknownExtension)

	_, err = Load(filepath.Join(t.TempDir(), "missing.gpx"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.txt", "$GPRMC,garbage*00\n"))
	assert.Error(t, err)
}

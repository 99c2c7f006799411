package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, LevelWarning, LevelForVerbosity(0))
	assert.Equal(t, LevelInfo, LevelForVerbosity(1))
	assert.Equal(t, LevelDebug, LevelForVerbosity(2))
	assert.Equal(t, LevelDebug, LevelForVerbosity(3))
	assert.Equal(t, LevelWarning, LevelForVerbosity(-1))
}

func TestLoggerFiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("Processed %d waypoints", 3)
	l.Criticalf("Could not open GPX File: %s", "x.gpx")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[    INFO]:  Processed 3 waypoints")
	assert.Contains(t, lines[1], "[CRITICAL]:  Could not open GPX File: x.gpx")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARNING", LevelWarning.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}

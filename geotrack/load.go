package geotrack

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bgraf/gpxseg/config"
)

var ErrUnknownExtension = errors.New("unknown track extension")

// Load reads a track file, choosing the parser by file extension.
func Load(trackFilePath string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(trackFilePath))
	switch {
	case slices.Contains(config.GPXExtensions(), ext):
		return loadGPX(trackFilePath)
	case slices.Contains(config.NMEAExtensions(), ext):
		return loadNMEA(trackFilePath)
	}

	return nil, fmt.Errorf("%w '%s'", ErrUnknownExtension, ext)
}

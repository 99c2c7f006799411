package route

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bgraf/gpxseg/geo"
)

var ErrNoTrackpoints = errors.New("track has no points")

// Logger receives progress messages from Process.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

type Options struct {
	Reverse bool
	Filter  SymbolFilter

	// Progress is passed to MatchNearest.
	Progress func(done, total int)
	Logger   Logger
}

type Result struct {
	Waypoints   []*PointOfInterest
	Trackpoints []*Trackpoint
	Segments    []*Segment
	Rows        []Row
	Total       float64
}

// Process runs the full pipeline for one track: filter, match, split,
// classify and accumulate.
func Process(points []geo.Point, pois []*PointOfInterest, opts Options) (*Result, error) {
	if err := opts.Filter.Validate(); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, ErrNoTrackpoints
	}

	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	selected := opts.Filter.Apply(pois)
	symbols := Symbols(selected)
	log.Infof("Including %d Symbols: \"%s\"", len(symbols), strings.Join(symbols, "\",\""))
	if len(opts.Filter.Exclude) > 0 {
		excluded := append([]string(nil), opts.Filter.Exclude...)
		sort.Strings(excluded)
		log.Infof("Ignoring %d Symbols: \"%s\"", len(excluded), strings.Join(excluded, "\",\""))
	}
	log.Infof("Processed %d waypoints", len(selected))

	if opts.Reverse {
		log.Warningf("Reversing track direction")
	}
	tps := Walk(points, opts.Reverse)
	log.Infof("Processed %d trackpoints", len(tps))

	MatchNearest(selected, tps, opts.Progress)
	for _, poi := range selected {
		if j, ok := poi.NearestIndex.Get(); ok {
			log.Debugf("%s: nearest trackpoint %d at %.1f ft", poi.Name, tps[j].Index, poi.NearestFeet)
		}
	}

	matched := 0
	for _, tp := range tps {
		if tp.Match.IsSome() {
			matched++
		}
	}
	log.Infof("Matched %d trackpoints to waypoints", matched)

	segments := Split(tps)
	AssignDirections(segments, opts.Reverse)
	log.Infof("Built %d segments", len(segments))

	rows, total := BuildRows(segments)

	return &Result{
		Waypoints:   selected,
		Trackpoints: tps,
		Segments:    segments,
		Rows:        rows,
		Total:       total,
	}, nil
}

// Describe is a short human readable summary of the result.
func (r *Result) Describe() string {
	return fmt.Sprintf("%d segments, %.1f mi", len(r.Segments), r.Total)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}

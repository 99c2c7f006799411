package cmd

import (
	"errors"
	"fmt"

	"github.com/bgraf/gpxseg/cmd/selection"
	"github.com/bgraf/gpxseg/config"
	"github.com/bgraf/gpxseg/filesystem"
	"github.com/bgraf/gpxseg/geotrack"
	"github.com/bgraf/gpxseg/logging"
	"github.com/bgraf/gpxseg/output"
	"github.com/bgraf/gpxseg/route"
	"github.com/spf13/cobra"
)

func (a *app) runProcess(cmd *cobra.Command, args []string) error {
	opts, err := config.Load(a.v, args[0])
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.LevelForVerbosity(opts.Verbosity))
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debugf("Using config file: %s", used)
	}

	if !filesystem.IsRegularFile(opts.InputFile) {
		logger.Criticalf("Could not open GPX File: %s", opts.InputFile)
		return errReported{fmt.Errorf("input %s: %w", opts.InputFile, errNotAFile)}
	}

	doc, err := geotrack.Load(opts.InputFile)
	if err != nil {
		logger.Criticalf("Could not open GPX File: %s: %s", opts.InputFile, err)
		return errReported{err}
	}

	if len(doc.Tracks) == 0 {
		logger.Criticalf("No tracks in %s", opts.InputFile)
		return errReported{errNoTracks}
	}

	selector := &selection.Selector{
		Out:      cmd.OutOrStdout(),
		Prompter: a.prompter,
		Source:   opts.InputFile,
	}
	trackNum, err := selector.Select(doc.TrackNames(), opts.Track)
	if err != nil {
		return err
	}

	track := doc.Tracks[trackNum]
	logger.Debugf("Resolved input path: %s", filesystem.Abs(opts.InputFile))
	logger.Infof("Beginning Processing of %s for track %s", opts.InputFile, track.Name)
	logger.Infof("Processing waypoints...")

	pois := make([]*route.PointOfInterest, len(doc.Waypoints))
	for i, w := range doc.Waypoints {
		pois[i] = route.NewPointOfInterest(w.Name, w.Description, w.Symbol, w.Point)
	}

	logger.Infof("Processing trackpoints for %s...", track.Name)
	res, err := route.Process(track.Points(), pois, route.Options{
		Reverse: opts.Reverse,
		Filter: route.SymbolFilter{
			Include: opts.Include,
			Exclude: opts.Exclude,
		},
		Progress: matchProgress(cmd.ErrOrStderr()),
		Logger:   logger,
	})
	if err != nil {
		logger.Errorf("Processing track %s failed: %s", track.Name, err)
		return errReported{err}
	}
	logger.Infof("Processed track %s: %s", track.Name, res.Describe())

	format := output.FormatXLSX
	var writer output.Writer = output.XLSXWriter{
		Font:          opts.Sheet.Font,
		Widths:        opts.Sheet.Widths,
		FormulaTotals: opts.FormulaTotals,
	}
	kind := "Excel"
	if opts.CSV {
		format = output.FormatCSV
		writer = output.CSVWriter{}
		kind = "CSV"
	}

	if opts.OutputDir != "" {
		if filesystem.Exists(opts.OutputDir) && !filesystem.IsDirectory(opts.OutputDir) {
			logger.Errorf("Output directory %s is not a directory", opts.OutputDir)
			return errReported{fmt.Errorf("output %s: %w", opts.OutputDir, errNotADirectory)}
		}
		if err := filesystem.CreateDirectoryIfNotExists(opts.OutputDir); err != nil {
			return fmt.Errorf("could not ensure output directory: %w", err)
		}
	}

	filename := output.Filename(opts.InputFile, opts.Reverse, format, opts.OutputDir)
	logger.Infof("Writing data to %s file: %s...", kind, filename)
	logger.Debugf("Resolved output path: %s", filesystem.Abs(filename))
	if err := writer.Write(filename, output.NewTable(opts.Sheet.Title, res.Rows, res.Total)); err != nil {
		logger.Errorf("Writing %s failed: %s", filename, err)
		return errReported{err}
	}
	logger.Infof("Finished writing to %s file", kind)

	return nil
}

var (
	errNotAFile = errors.New("not a readable file")
	errNoTracks = errors.New("no tracks")

	errNotADirectory = errors.New("not a directory")
)

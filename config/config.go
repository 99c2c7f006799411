// Package config binds command line flags, environment and the optional
// configuration file into an Options value.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys.
var (
	KeyCSV           = "output.csv"
	KeyOutputDir     = "output.directory"
	KeyFormulaTotals = "output.formula_totals"
	KeyReverse       = "track.reverse"
	KeyTrack         = "track.name"
	KeyVerbosity     = "log.verbosity"
	KeyInclude       = "symbols.include"
	KeyExclude       = "symbols.exclude"
	KeySheetTitle    = "sheet.title"
	KeySheetFont     = "sheet.font"
	KeySheetWidths   = "sheet.widths"
)

const MaxVerbosity = 3

type Sheet struct {
	Title  string             `yaml:"title"`
	Font   string             `yaml:"font"`
	Widths map[string]float64 `yaml:"widths"`
}

// Options is the effective configuration of one run.
type Options struct {
	InputFile     string   `yaml:"input"`
	CSV           bool     `yaml:"csv"`
	OutputDir     string   `yaml:"output_directory,omitempty"`
	FormulaTotals bool     `yaml:"formula_totals"`
	Reverse       bool     `yaml:"reverse"`
	Track         string   `yaml:"track,omitempty"`
	Verbosity     int      `yaml:"verbosity"`
	Include       []string `yaml:"include,omitempty"`
	Exclude       []string `yaml:"exclude,omitempty"`
	Sheet         Sheet    `yaml:"sheet"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormulaTotals, true)
	v.SetDefault(KeySheetTitle, DefaultSheetTitle())
	v.SetDefault(KeySheetFont, DefaultSheetFont())
}

// Load reads the options for processing inputFile from v.
func Load(v *viper.Viper, inputFile string) (Options, error) {
	opts := Options{
		InputFile:     inputFile,
		CSV:           v.GetBool(KeyCSV),
		OutputDir:     v.GetString(KeyOutputDir),
		FormulaTotals: v.GetBool(KeyFormulaTotals),
		Reverse:       v.GetBool(KeyReverse),
		Track:         v.GetString(KeyTrack),
		Verbosity:     v.GetInt(KeyVerbosity),
		Include:       v.GetStringSlice(KeyInclude),
		Exclude:       v.GetStringSlice(KeyExclude),
		Sheet: Sheet{
			Title:  v.GetString(KeySheetTitle),
			Font:   v.GetString(KeySheetFont),
			Widths: DefaultSheetWidths(),
		},
	}

	if v.IsSet(KeySheetWidths) {
		widths := make(map[string]float64)
		if err := v.UnmarshalKey(KeySheetWidths, &widths); err != nil {
			return opts, fmt.Errorf("parse %s: %w", KeySheetWidths, err)
		}
		// viper lower-cases keys, column letters are upper case
		for col, w := range widths {
			opts.Sheet.Widths[strings.ToUpper(col)] = w
		}
	}

	if opts.Verbosity < 0 {
		opts.Verbosity = 0
	}
	if opts.Verbosity > MaxVerbosity {
		opts.Verbosity = MaxVerbosity
	}

	if len(opts.Include) > 0 && len(opts.Exclude) > 0 {
		return opts, fmt.Errorf("%s and %s are mutually exclusive", KeyInclude, KeyExclude)
	}

	return opts, nil
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".txt", ".nmea"}
}

func DefaultSheetTitle() string {
	return "FLT Tracking"
}

func DefaultSheetFont() string {
	return "Arial"
}

func DefaultSheetWidths() map[string]float64 {
	return map[string]float64{"A": 20, "B": 40, "C": 20}
}

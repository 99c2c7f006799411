package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/gpxseg/cmd/selection"
	"github.com/bgraf/gpxseg/config"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errReported marks errors that were already logged.
type errReported struct {
	err error
}

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

type app struct {
	v        *viper.Viper
	cfgFile  string
	prompter selection.Prompter
}

func newRootCmd(prompter selection.Prompter) *cobra.Command {
	a := &app{
		v:        viper.New(),
		prompter: prompter,
	}

	rootCmd := &cobra.Command{
		Use:   "gpxseg GPXFILE",
		Short: "GPX segment processor",
		Long: `Splits a GPX track at its waypoints and writes a cue table with the
direction to take at each waypoint, the segment distance and the running
total.

If no track is given, or no track has the given name, the tracks of the file
are listed for selection. The output is an Excel workbook unless --csv is
given.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runProcess,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.gpxseg.yaml)")
	flags.BoolP("csv", "c", false, "Output as CSV instead of Excel")
	flags.BoolP("reverse", "r", false, "Reverse the direction of the track")
	flags.StringP("track", "t", "", "Track name to process")
	flags.CountP("verbose", "v", "Verbose mode, repeat to increase verbosity (maximum 3)")
	flags.StringArrayP("include", "i", nil, "Symbol to include, repeatable. Cannot be used with --exclude")
	flags.StringArrayP("exclude", "x", nil, "Symbol to exclude, repeatable. Cannot be used with --include")
	flags.StringP("output-dir", "o", "", "Output directory (default is the input file's directory)")

	rootCmd.MarkFlagsMutuallyExclusive("include", "exclude")

	bindings := map[string]string{
		config.KeyCSV:       "csv",
		config.KeyReverse:   "reverse",
		config.KeyTrack:     "track",
		config.KeyVerbosity: "verbose",
		config.KeyInclude:   "include",
		config.KeyExclude:   "exclude",
		config.KeyOutputDir: "output-dir",
	}
	for key, flag := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the root command and exits the process on failure. It is
// called by main.main().
func Execute() {
	err := newRootCmd(selection.SurveyPrompter{}).Execute()
	if err == nil {
		return
	}

	if errors.Is(err, selection.ErrExit) {
		os.Exit(0)
	}

	var reported errReported
	if !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in the working and home directory with name
		// ".gpxseg" (without extension).
		if dir, err := os.Getwd(); err == nil {
			a.v.AddConfigPath(dir)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".gpxseg")
	}

	a.v.SetEnvPrefix("gpxseg")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

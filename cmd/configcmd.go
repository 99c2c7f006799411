package cmd

import (
	"github.com/bgraf/gpxseg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config [GPXFILE]",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			opts, err := config.Load(a.v, input)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()

			return enc.Encode(opts)
		},
	}
}

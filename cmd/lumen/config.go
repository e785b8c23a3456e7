package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/config"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

func newConfigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration lumen would run with: the defaults overlaid with the
config file, if one was found. The output is a valid lumen.yaml.`,
		Example: `  lumen config > lumen.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(app.Config)
			if err != nil {
				return lumenerrors.NewCommandError("config", "rendering configuration", err, "")
			}

			source := "defaults"
			if app.ConfigPath != "" {
				source = app.ConfigPath
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n", source)
			_, err = out.Write(data)
			return err
		},
	}

	return cmd
}

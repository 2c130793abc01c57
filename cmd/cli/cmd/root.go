package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kosmosec/assetguard/internal/builder"
	"github.com/kosmosec/assetguard/internal/logging"
)

var verbose bool

func NewRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "assetguard",
		Short:         "Minify stylesheets and obfuscate scripts",
		Long:          "A build step that minifies CSS and protects JavaScript before shipping",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return builder.Build(cmd.Context(), cfg, builder.Options{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: logging.New(cmd.ErrOrStderr(), verbose),
			})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug diagnostics")

	rootCmd.AddCommand(
		NewConfig(),
		NewPlan(),
	)

	return rootCmd
}

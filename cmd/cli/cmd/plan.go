package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kosmosec/assetguard/internal/builder"
)

func NewPlan() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "List the files a build would process",
		Long:  "Print every configured file with its output path and whether its input is present. Nothing is written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			builder.PrintPlan(cmd.OutOrStdout(), builder.Plan(cfg))
			return nil
		},
	}
}

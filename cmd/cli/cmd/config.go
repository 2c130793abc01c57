package cmd

import (
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/kosmosec/assetguard/internal/api"
)

//go:embed config.yml
var defaultCfg []byte

func NewConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print config",
		Long:  "Print the configuration compiled into assetguard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(defaultCfg)
			return err
		},
	}
}

func loadConfig() (api.Config, error) {
	return api.Decode(defaultCfg)
}

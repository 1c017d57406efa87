package commands

import (
	"github.com/spf13/cobra"

	"github.com/microscaler/netbox-operator/cmd/netbox-operator/handlers"
	"github.com/microscaler/netbox-operator/internal/config"
)

// Validate returns the command that checks the configuration without
// starting the operator.
//
// Optional flags:
//
//	--env-file: File with KEY=value lines loaded before the environment is read
//	--print-config: Print the effective configuration as YAML, token masked
func Validate() *cobra.Command {
	var envFile string
	var printConfig bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the operator configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(envFile, cmd.Flags(), printConfig, cmd.OutOrStdout())
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&envFile, "env-file", "", "File with KEY=value lines to load before reading the environment")
	cmd.Flags().BoolVar(&printConfig, "print-config", false, "Print the effective configuration as YAML")

	return cmd
}

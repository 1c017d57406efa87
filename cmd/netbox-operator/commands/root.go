// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers
// package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the netbox-operator CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "netbox-operator",
		Short:         "Reconcile Kubernetes resources into NetBox",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Run())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Version())

	return cmd
}

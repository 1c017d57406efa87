package commands

import (
	"github.com/spf13/cobra"

	"github.com/microscaler/netbox-operator/cmd/netbox-operator/handlers"
	"github.com/microscaler/netbox-operator/internal/config"
)

// Run returns the command that starts the controller manager.
//
// NetBox settings come from the environment (NETBOX_URL, NETBOX_TOKEN, ...),
// an optional env file and the flags registered by config.RegisterFlags.
//
// Optional flags:
//
//	--env-file: File with KEY=value lines loaded before the environment is read
//	--metrics-bind-address: Address of the Prometheus endpoint (default :8080)
//	--health-probe-bind-address: Address of the probe endpoint (default :8081)
//	--leader-elect: Enable leader election (default true)
//	--debug: Verbose development logging
func Run() *cobra.Command {
	opts := handlers.RunOptions{}
	var debug bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the operator",
		Long: `Start the operator.

The NetBox token is checked before the manager starts. Once the caches have
synced, existing NetBox prefixes are mapped onto NetBoxPrefix resources that
have no NetBox id yet.

Examples:
  # Run against a local NetBox
  NETBOX_URL=http://localhost:8000 NETBOX_TOKEN=... netbox-operator run

  # Only watch one namespace with Fibonacci requeues
  netbox-operator run --namespace dcops --requeue-strategy fibonacci`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handlers.SetupLogging(debug)
			opts.Flags = cmd.Flags()
			opts.Version = version
			return handlers.Run(cmd.Context(), opts)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "File with KEY=value lines to load before reading the environment")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-bind-address", ":8080", "The address the metric endpoint binds to")
	cmd.Flags().StringVar(&opts.ProbeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to")
	cmd.Flags().BoolVar(&opts.LeaderElect, "leader-elect", true, "Enable leader election for controller manager")
	cmd.Flags().StringVar(&opts.LeaderElectionID, "leader-election-id", "netbox-operator", "The name of the leader election resource")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

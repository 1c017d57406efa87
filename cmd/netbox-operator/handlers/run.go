package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/config"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/operator/controller"
)

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(dcopsv1alpha1.AddToScheme(scheme))
}

// RunOptions holds the manager settings that are not part of config.Config.
type RunOptions struct {
	EnvFile          string
	Flags            *pflag.FlagSet
	MetricsAddr      string
	ProbeAddr        string
	LeaderElect      bool
	LeaderElectionID string
	Version          string
}

// Run starts the controller manager and blocks until ctx is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	setupLog := ctrl.Log.WithName("setup")

	cfg, err := loadConfig(opts.EnvFile, opts.Flags)
	if err != nil {
		return err
	}
	setupLog.Info("starting netbox-operator", "version", opts.Version, "config", cfg.Summary())

	nb, err := netbox.NewClient(cfg.NetBox.URL, cfg.NetBox.Token,
		netbox.WithTimeout(cfg.NetBox.Timeout),
		netbox.WithRetry(cfg.NetBox.Retry.Retries(), cfg.NetBox.Retry.InitialDelay),
		netbox.WithObserver(controller.ObserveNetBoxCall),
		netbox.WithLogger(ctrl.Log.WithName("netbox")),
	)
	if err != nil {
		return err
	}
	if err := nb.ValidateToken(ctx); err != nil {
		return err
	}
	if v, err := nb.ServerVersion(ctx); err != nil {
		setupLog.Error(err, "unable to read NetBox version, version gated fields fall back to the newest API")
	} else {
		setupLog.Info("connected to NetBox", "url", nb.BaseURL(), "version", v.String())
	}

	restConfig, err := ctrl.GetConfig()
	if err != nil {
		return fmt.Errorf("unable to load kubeconfig: %w", err)
	}
	mgr, err := ctrl.NewManager(restConfig, managerOptions(cfg, opts))
	if err != nil {
		return fmt.Errorf("unable to create manager: %w", err)
	}

	reconcilers := newReconcilers(mgr.GetClient(), mgr.GetScheme(), nb, cfg,
		controller.WithEventRecorder(mgr.GetEventRecorderFor("netbox-operator")))
	dispatcher := controller.NewDispatcher(reconcilers, newStartup(mgr.GetClient(), nb, cfg), controller.DispatchOptions{
		Debounce:    cfg.Dispatch.Debounce,
		Concurrency: cfg.Dispatch.Concurrency,
	})
	if err := dispatcher.SetupWithManager(mgr); err != nil {
		return fmt.Errorf("unable to set up controllers: %w", err)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		return fmt.Errorf("unable to set up health check: %w", err)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		return fmt.Errorf("unable to set up ready check: %w", err)
	}

	setupLog.Info("starting manager", "kinds", len(reconcilers))
	return mgr.Start(ctx)
}

func managerOptions(cfg *config.Config, opts RunOptions) ctrl.Options {
	o := ctrl.Options{
		Scheme: scheme,
		Metrics: metricsserver.Options{
			BindAddress: opts.MetricsAddr,
		},
		HealthProbeBindAddress: opts.ProbeAddr,
		LeaderElection:         opts.LeaderElect,
		LeaderElectionID:       opts.LeaderElectionID,
		// The process exits as soon as the manager stops, so the lease can
		// be released on cancel.
		LeaderElectionReleaseOnCancel: true,
	}
	if cfg.Watch.Namespace != "" {
		o.Cache = cache.Options{
			DefaultNamespaces: map[string]cache.Config{cfg.Watch.Namespace: {}},
		}
	}
	return o
}

// newReconcilers builds one reconciler per managed kind.
func newReconcilers(c client.Client, s *runtime.Scheme, nb controller.NetBox, cfg *config.Config,
	extra ...controller.Option) []*controller.Reconciler {
	opts := []controller.Option{
		controller.WithRequeue(cfg.Dispatch.RequeueStrategy, cfg.Dispatch.RequeueAfter),
		controller.WithBackoff(cfg.Backoff.MinMinutes, cfg.Backoff.MaxMinutes),
		controller.WithTerminalPatterns(cfg.Terminal.Patterns),
	}
	opts = append(opts, extra...)
	mappers := controller.Mappers(c, s, nb)
	out := make([]*controller.Reconciler, 0, len(mappers))
	for _, m := range mappers {
		out = append(out, controller.NewReconciler(c, nb, m, opts...))
	}
	return out
}

func newStartup(c client.Client, nb controller.NetBox, cfg *config.Config) *controller.PrefixStartup {
	if !cfg.Startup.ReconcilePrefixes {
		return nil
	}
	return controller.NewPrefixStartup(c, nb, cfg.Watch.Namespace, cfg.Dispatch.Concurrency)
}

package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/client-go/util/workqueue"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/event"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"
)

const (
	// Default window collapsing bursts of notifications for one object.
	defaultDebounce = 5 * time.Second

	// Default number of objects of one kind reconciled at a time.
	defaultConcurrency = 3
)

// DispatchOptions controls how notifications become reconciles.
type DispatchOptions struct {
	Debounce    time.Duration
	Concurrency int
}

func (o DispatchOptions) withDefaults() DispatchOptions {
	if o.Debounce < 0 {
		o.Debounce = defaultDebounce
	}
	if o.Concurrency < 1 {
		o.Concurrency = defaultConcurrency
	}
	return o
}

// +kubebuilder:rbac:groups=dcops.microscaler.io,resources=*,verbs=get;list;watch
// +kubebuilder:rbac:groups=dcops.microscaler.io,resources=*/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=coordination.k8s.io,resources=leases,verbs=get;create;update
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

// SetupWithManager registers a controller for r's kind. Notifications are
// debounced and at most opts.Concurrency objects are reconciled at once; the
// workqueue never hands the same key to two workers.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager, opts DispatchOptions) error {
	opts = opts.withDefaults()
	return ctrl.NewControllerManagedBy(mgr).
		Named(strings.ToLower(r.kind)).
		Watches(r.mapper.New(), &debounceHandler{
			kind:   r.kind,
			window: opts.Debounce,
			logger: mgr.GetLogger().WithName("dispatch").WithValues("kind", r.kind),
		}).
		WithOptions(controller.Options{MaxConcurrentReconciles: opts.Concurrency}).
		Complete(r)
}

// debounceHandler schedules the object key after a quiet window instead of
// immediately. Keys already waiting or queued are deduplicated, so a burst of
// edits ends in one reconcile that sees the latest spec.
type debounceHandler struct {
	kind   string
	window time.Duration
	logger logr.Logger
}

func (h *debounceHandler) Create(_ context.Context, e event.CreateEvent, q workqueue.TypedRateLimitingInterface[reconcile.Request]) {
	h.enqueue(e.Object, q)
}

func (h *debounceHandler) Update(_ context.Context, e event.UpdateEvent, q workqueue.TypedRateLimitingInterface[reconcile.Request]) {
	h.enqueue(e.ObjectNew, q)
}

// Delete only logs; NetBox records outlive their resources.
func (h *debounceHandler) Delete(_ context.Context, e event.DeleteEvent, _ workqueue.TypedRateLimitingInterface[reconcile.Request]) {
	if e.Object == nil {
		return
	}
	h.logger.Info("resource deleted, NetBox record is kept", "name", client.ObjectKeyFromObject(e.Object).String())
}

func (h *debounceHandler) Generic(_ context.Context, e event.GenericEvent, q workqueue.TypedRateLimitingInterface[reconcile.Request]) {
	h.enqueue(e.Object, q)
}

func (h *debounceHandler) enqueue(obj client.Object, q workqueue.TypedRateLimitingInterface[reconcile.Request]) {
	if obj == nil {
		return
	}
	req := reconcile.Request{NamespacedName: client.ObjectKeyFromObject(obj)}
	if h.window <= 0 {
		q.Add(req)
		return
	}
	q.AddAfter(req, h.window)
}

// Dispatcher owns the controllers of every kind.
type Dispatcher struct {
	reconcilers []*Reconciler
	startup     *PrefixStartup
	opts        DispatchOptions
}

// NewDispatcher creates a Dispatcher. startup may be nil to skip the
// startup prefix mapping.
func NewDispatcher(reconcilers []*Reconciler, startup *PrefixStartup, opts DispatchOptions) *Dispatcher {
	return &Dispatcher{reconcilers: reconcilers, startup: startup, opts: opts}
}

// SetupWithManager registers every controller and the initial sync runnable.
func (d *Dispatcher) SetupWithManager(mgr ctrl.Manager) error {
	kinds := make([]string, 0, len(d.reconcilers))
	for _, r := range d.reconcilers {
		if err := r.SetupWithManager(mgr, d.opts); err != nil {
			return fmt.Errorf("failed to set up %s controller: %w", r.Kind(), err)
		}
		kinds = append(kinds, r.Kind())
	}
	return mgr.Add(&initialSync{
		cache:   mgr.GetCache(),
		kinds:   kinds,
		startup: d.startup,
		logger:  mgr.GetLogger().WithName("initial-sync"),
	})
}

// cacheSyncer is the part of the manager cache the initial sync waits on.
type cacheSyncer interface {
	WaitForCacheSync(ctx context.Context) bool
}

// initialSync waits for the informers, reports readiness per kind and runs
// the startup prefix mapping once.
type initialSync struct {
	cache   cacheSyncer
	kinds   []string
	startup *PrefixStartup
	logger  logr.Logger
}

var _ manager.LeaderElectionRunnable = &initialSync{}

// Start implements manager.Runnable.
func (s *initialSync) Start(ctx context.Context) error {
	if !s.cache.WaitForCacheSync(ctx) {
		s.logger.Info("cache did not sync, skipping initial sync")
		return nil
	}
	for _, kind := range s.kinds {
		s.logger.Info("initial sync complete", "kind", kind)
	}
	if s.startup == nil {
		return nil
	}

	ctx = ctrl.LoggerInto(ctx, s.logger)
	if _, err := s.startup.Run(ctx); err != nil {
		// Resources left unmapped are handled by their regular reconciles.
		s.logger.Error(err, "startup prefix reconciliation failed")
	}
	return nil
}

// NeedLeaderElection keeps status writes on the leader.
func (s *initialSync) NeedLeaderElection() bool {
	return true
}

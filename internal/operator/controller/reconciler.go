package controller

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/config"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/util/backoff"
	"github.com/microscaler/netbox-operator/internal/util/naming"
)

const (
	// Default delay before a failed resource is retried.
	defaultRequeueAfter = 60 * time.Second

	// Default Fibonacci bounds in minutes.
	defaultBackoffMin = 1
	defaultBackoffMax = 10
)

// Reconciler reconciles the resources of one kind against NetBox.
type Reconciler struct {
	client     client.Client
	mapper     Mapper
	kind       string
	engine     *engine.Engine
	stabilizer *engine.Stabilizer
	tracker    *backoff.Tracker

	requeueAfter     time.Duration
	strategy         string
	backoffMin       int64
	backoffMax       int64
	terminalPatterns []string
	enableMetrics    bool
	recorder         record.EventRecorder
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMetrics enables or disables Prometheus metrics recording.
func WithMetrics(enable bool) Option {
	return func(r *Reconciler) {
		r.enableMetrics = enable
	}
}

// WithRequeue sets how failures are retried: after a fixed delay, or with
// config.StrategyFibonacci after the resource's backoff delay.
func WithRequeue(strategy string, after time.Duration) Option {
	return func(r *Reconciler) {
		r.strategy = strategy
		if after > 0 {
			r.requeueAfter = after
		}
	}
}

// WithBackoff sets the Fibonacci bounds in minutes.
func WithBackoff(minMinutes, maxMinutes int64) Option {
	return func(r *Reconciler) {
		r.backoffMin = minMinutes
		r.backoffMax = maxMinutes
	}
}

// WithTerminalPatterns sets the error fragments that stop retries until the
// resource is edited.
func WithTerminalPatterns(patterns []string) Option {
	return func(r *Reconciler) {
		r.terminalPatterns = patterns
	}
}

// NewReconciler creates the reconciler of mapper's kind.
func NewReconciler(c client.Client, nb NetBox, mapper Mapper, opts ...Option) *Reconciler {
	r := &Reconciler{
		client:           c,
		mapper:           mapper,
		kind:             mapper.Kind(),
		engine:           engine.New(nb),
		requeueAfter:     defaultRequeueAfter,
		strategy:         config.StrategyFixed,
		backoffMin:       defaultBackoffMin,
		backoffMax:       defaultBackoffMax,
		terminalPatterns: config.DefaultTerminalPatterns,
		enableMetrics:    true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.stabilizer = engine.NewStabilizer(c, r.terminalPatterns)
	r.tracker = backoff.NewTracker(r.backoffMin, r.backoffMax)
	return r
}

// Kind returns the kind reconciled by r.
func (r *Reconciler) Kind() string {
	return r.kind
}

// Reconcile runs one attempt for the resource named by req.
func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	started := time.Now()
	logger := log.FromContext(ctx).WithValues("kind", r.kind)
	ctx = log.IntoContext(ctx, logger)

	obj := r.mapper.New()
	if err := r.client.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			// Deleted; NetBox records are intentionally left in place.
			r.tracker.Success(naming.ObjectKey(req.Namespace, req.Name))
			r.recordBackoff()
			return ctrl.Result{}, nil
		}
		logger.Error(err, "unable to fetch resource")
		r.recordReconcile(resultError, started)
		return ctrl.Result{}, err
	}

	if skip, reason := r.stabilizer.ShouldSkip(obj); skip {
		logger.V(1).Info("skipping resource with terminal error until its spec changes", "error", reason)
		r.recordReconcile(resultSkipped, started)
		return ctrl.Result{}, nil
	}

	if err := r.reconcile(ctx, obj); err != nil {
		r.recordReconcile(resultError, started)
		return r.fail(ctx, obj, err), nil
	}

	r.tracker.Success(naming.ObjectKey(obj.GetNamespace(), obj.GetName()))
	r.recordBackoff()
	r.recordReconcile(resultSuccess, started)
	return ctrl.Result{}, nil
}

// reconcile plans, syncs and records the outcome.
func (r *Reconciler) reconcile(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) error {
	logger := log.FromContext(ctx)
	current := obj.ObservedStatus()

	plan, err := r.mapper.Plan(ctx, obj)
	if err != nil {
		return err
	}

	onDrift := func(ctx context.Context, message string) error {
		r.recordDrift()
		written, err := r.stabilizer.Apply(ctx, obj, engine.PendingStatus(message, obj.GetGeneration()))
		r.recordStatusPatch(written)
		return err
	}
	outcome, err := r.engine.Sync(ctx, current, *plan, onDrift)
	if err != nil {
		return err
	}

	desired := engine.CreatedStatus(outcome.Record, obj.GetGeneration())
	if d, ok := r.mapper.(Decorator); ok {
		if err := d.Decorate(ctx, obj, outcome.Record, &desired); err != nil {
			return err
		}
	}

	written, err := r.stabilizer.Apply(ctx, obj, desired)
	if err != nil {
		return err
	}
	r.recordStatusPatch(written)
	r.recordOutcome(obj, outcome)

	if written || outcome.Action != engine.ActionReused || len(outcome.Changed) > 0 {
		logger.Info("reconciled", "netboxId", outcome.Record.ID, "action", outcome.Action,
			"changed", outcome.Changed, "drifted", outcome.Drifted)
	} else {
		logger.V(1).Info("already in sync", "netboxId", outcome.Record.ID)
	}
	return nil
}

// fail records a failed attempt and decides when to retry. Store errors are
// not written as Failed status since the store is what failed. A resource
// backed by a record keeps its status when that record could not be fetched.
func (r *Reconciler) fail(ctx context.Context, obj dcopsv1alpha1.NetBoxObject, cause error) ctrl.Result {
	logger := log.FromContext(ctx)

	count, delay := r.tracker.Failure(naming.ObjectKey(obj.GetNamespace(), obj.GetName()))
	r.recordBackoff()

	requeue := r.requeueAfter
	if r.strategy == config.StrategyFibonacci {
		requeue = delay
	}

	logger.Error(cause, "reconcile failed", "reason", engine.ReasonOf(cause),
		"errorCount", count, "requeueAfter", requeue.String())

	switch {
	case engine.IsStore(cause):
	case engine.IsProbe(cause) && obj.ObservedStatus().State.HasRecord():
		logger.V(1).Info("keeping status while the recorded NetBox record cannot be checked")
	default:
		failed := engine.FailedStatus(obj.ObservedStatus(), cause, obj.GetGeneration())
		written, err := r.stabilizer.Apply(ctx, obj, failed)
		if err != nil {
			logger.Error(err, "failed to record failure in status")
		} else {
			r.recordStatusPatch(written)
		}
		if written {
			r.recordFailure(obj, cause)
		}
	}
	return ctrl.Result{RequeueAfter: requeue}
}

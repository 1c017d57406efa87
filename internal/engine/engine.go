package engine

import (
	"context"
	"fmt"
	"maps"
	"net/url"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
)

// DriftMessage is recorded when the NetBox record behind a Created resource
// has disappeared.
const DriftMessage = "Resource was deleted in NetBox, will recreate"

// Inventory is the subset of the NetBox client used by the engine.
type Inventory interface {
	Get(ctx context.Context, ep netbox.Endpoint, id int64) (*netbox.Record, error)
	Query(ctx context.Context, ep netbox.Endpoint, filters url.Values, fetchAll bool) ([]netbox.Record, error)
	Create(ctx context.Context, ep netbox.Endpoint, body map[string]any) (*netbox.Record, error)
	Update(ctx context.Context, ep netbox.Endpoint, id int64, fields map[string]any) (*netbox.Record, error)
}

// Lookup is one natural-key query.
type Lookup struct {
	Name    string
	Filters url.Values
}

// Plan describes the record one resource should correspond to. Plans are
// built per attempt from the resource's spec and its resolved references.
type Plan struct {
	// Endpoint is where the record lives.
	Endpoint netbox.Endpoint

	// Describe names the record in messages, e.g. `site "dc1"`.
	Describe string

	// Desired holds the fields to create with and to keep in sync.
	Desired map[string]any

	// Lookups find an existing record by natural key, most specific first.
	// The first is tried before creating; all are retried after a conflict.
	Lookups []Lookup

	// Match picks the record in an unfiltered listing, the last resort after
	// a conflict. A nil Match skips that step.
	Match func(netbox.Record) bool

	// Create replaces the default create call, e.g. to allocate from a
	// prefix instead of posting to the endpoint.
	Create func(ctx context.Context) (*netbox.Record, error)

	// ReadOnly plans never create or update. The record must be found by
	// the lookups; the recorded id is not probed.
	ReadOnly bool
}

// Action says how the record was obtained.
type Action string

const (
	ActionReused    Action = "reused"
	ActionAdopted   Action = "adopted"
	ActionCreated   Action = "created"
	ActionRecovered Action = "recovered"
)

// Outcome is the result of a successful Sync.
type Outcome struct {
	Record *netbox.Record
	Action Action
	// Changed lists the fields written by an update, if any.
	Changed []string
	// Drifted is set when the recorded record had disappeared.
	Drifted bool
}

// DriftFunc is called when the recorded record no longer exists, before the
// engine looks for a replacement. A returned error aborts the sync.
type DriftFunc func(ctx context.Context, message string) error

// Engine ensures NetBox records exist and match their plans.
type Engine struct {
	inv Inventory
}

// New creates an Engine on top of inv.
func New(inv Inventory) *Engine {
	return &Engine{inv: inv}
}

// Sync makes sure exactly one record matches plan and returns it.
//
// The id in current is probed first when the status claims a record or the
// last attempt failed with an id still recorded. A vanished record is drift:
// onDrift is told, and the record is looked up and recreated as if it had
// never existed. Without a usable id the first lookup runs; a match is
// adopted instead of creating a duplicate. A create that conflicts with an
// existing record retries every lookup and finally scans the endpoint with
// plan.Match before giving up with the original error.
func (e *Engine) Sync(ctx context.Context, current dcopsv1alpha1.ObservedStatus, plan Plan, onDrift DriftFunc) (*Outcome, error) {
	logger := log.FromContext(ctx).WithValues("endpoint", string(plan.Endpoint))

	if plan.ReadOnly {
		rec, err := e.find(ctx, plan, plan.Lookups)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, Configurationf("%s not found in NetBox", plan.Describe)
		}
		return &Outcome{Record: rec, Action: ActionReused}, nil
	}

	drifted := false
	if current.ID != nil && (current.State.HasRecord() || current.State == dcopsv1alpha1.StateFailed) {
		rec, err := e.inv.Get(ctx, plan.Endpoint, *current.ID)
		switch {
		case err == nil:
			return e.converge(ctx, logger, plan, rec, ActionReused, false)
		case netbox.IsNotFound(err):
			if current.State.HasRecord() {
				drifted = true
				logger.Info("NetBox record disappeared, recreating", "id", *current.ID, "record", plan.Describe)
				if onDrift != nil {
					if err := onDrift(ctx, DriftMessage); err != nil {
						return nil, err
					}
				}
			} else {
				logger.V(1).Info("stale id of failed resource not found in NetBox", "id", *current.ID)
			}
		default:
			return nil, &probeError{err: fmt.Errorf("failed to get %s %d: %w", plan.Describe, *current.ID, err)}
		}
	}

	if len(plan.Lookups) > 0 {
		rec, err := e.find(ctx, plan, plan.Lookups[:1])
		if err != nil {
			return nil, err
		}
		if rec != nil {
			logger.Info("adopting existing NetBox record", "id", rec.ID, "record", plan.Describe, "lookup", plan.Lookups[0].Name)
			return e.converge(ctx, logger, plan, rec, ActionAdopted, drifted)
		}
	}

	rec, err := e.create(ctx, plan)
	if err == nil {
		logger.Info("created NetBox record", "id", rec.ID, "record", plan.Describe)
		return &Outcome{Record: rec, Action: ActionCreated, Drifted: drifted}, nil
	}
	if !netbox.IsConflict(err) {
		return nil, fmt.Errorf("failed to create %s: %w", plan.Describe, err)
	}

	logger.Info("create conflicted with an existing record, searching for it", "record", plan.Describe)
	found, findErr := e.find(ctx, plan, plan.Lookups)
	if findErr == nil && found == nil && plan.Match != nil {
		found, findErr = e.scan(ctx, plan)
	}
	if findErr != nil {
		logger.Error(findErr, "conflict recovery lookup failed", "record", plan.Describe)
	}
	if found == nil {
		return nil, conflictError(fmt.Sprintf("failed to create %s", plan.Describe), err)
	}
	logger.Info("recovered existing NetBox record after conflict", "id", found.ID, "record", plan.Describe)
	return e.converge(ctx, logger, plan, found, ActionRecovered, drifted)
}

func (e *Engine) create(ctx context.Context, plan Plan) (*netbox.Record, error) {
	if plan.Create != nil {
		return plan.Create(ctx)
	}
	return e.inv.Create(ctx, plan.Endpoint, maps.Clone(plan.Desired))
}

// converge updates rec with the desired fields that differ.
func (e *Engine) converge(ctx context.Context, logger logr.Logger, plan Plan, rec *netbox.Record,
	action Action, drifted bool) (*Outcome, error) {
	changed := Diff(rec, plan.Desired)
	if len(changed) == 0 {
		return &Outcome{Record: rec, Action: action, Drifted: drifted}, nil
	}

	keys := ChangedKeys(changed)
	logger.Info("updating NetBox record", "id", rec.ID, "record", plan.Describe, "fields", keys)
	updated, err := e.inv.Update(ctx, plan.Endpoint, rec.ID, changed)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", plan.Describe, rec.ID, err)
	}
	return &Outcome{Record: updated, Action: action, Changed: keys, Drifted: drifted}, nil
}

// find runs lookups in order and returns the first acceptable record.
func (e *Engine) find(ctx context.Context, plan Plan, lookups []Lookup) (*netbox.Record, error) {
	for _, l := range lookups {
		recs, err := e.inv.Query(ctx, plan.Endpoint, l.Filters, false)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s by %s: %w", plan.Describe, l.Name, err)
		}
		for i := range recs {
			if plan.Match == nil || plan.Match(recs[i]) {
				return &recs[i], nil
			}
		}
	}
	return nil, nil
}

// scan lists the whole endpoint and filters client side.
func (e *Engine) scan(ctx context.Context, plan Plan) (*netbox.Record, error) {
	recs, err := e.inv.Query(ctx, plan.Endpoint, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", plan.Endpoint, err)
	}
	for i := range recs {
		if plan.Match(recs[i]) {
			return &recs[i], nil
		}
	}
	return nil, nil
}

package controller

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/async"
)

// StartupResult counts what the startup mapping did.
type StartupResult struct {
	Mapped   int
	NotFound int
}

// PrefixStartup links NetBoxPrefix resources that have no recorded id to
// prefixes already present in NetBox, so a fresh install adopts existing
// address plans before the regular reconciles run.
type PrefixStartup struct {
	client      client.Client
	nb          engine.Inventory
	stabilizer  *engine.Stabilizer
	namespace   string
	concurrency int
}

// prefixListing fetches the full prefix list at most once per run.
type prefixListing struct {
	once sync.Once
	recs []netbox.Record
	err  error
}

func (l *prefixListing) get(ctx context.Context, nb engine.Inventory) ([]netbox.Record, error) {
	l.once.Do(func() {
		l.recs, l.err = nb.Query(ctx, netbox.Prefixes, nil, true)
	})
	return l.recs, l.err
}

// NewPrefixStartup creates the startup mapping. An empty namespace covers all
// namespaces.
func NewPrefixStartup(c client.Client, nb engine.Inventory, namespace string, concurrency int) *PrefixStartup {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &PrefixStartup{
		client:      c,
		nb:          nb,
		stabilizer:  engine.NewStabilizer(c, nil),
		namespace:   namespace,
		concurrency: concurrency,
	}
}

// Run maps every unmapped prefix once. Individual failures are logged and
// counted as not found; only listing the resources can fail the run.
func (p *PrefixStartup) Run(ctx context.Context) (StartupResult, error) {
	logger := log.FromContext(ctx).WithName("startup")

	var list dcopsv1alpha1.NetBoxPrefixList
	var opts []client.ListOption
	if p.namespace != "" {
		opts = append(opts, client.InNamespace(p.namespace))
	}
	if err := p.client.List(ctx, &list, opts...); err != nil {
		return StartupResult{}, fmt.Errorf("failed to list NetBoxPrefix resources: %w", err)
	}

	var mapped, notFound atomic.Int32
	listing := &prefixListing{}
	var tasks []async.Task
	for i := range list.Items {
		prefix := &list.Items[i]
		if prefix.Status.NetBoxID != nil {
			continue
		}
		tasks = append(tasks, async.Task{
			Name: client.ObjectKeyFromObject(prefix).String(),
			Func: func(ctx context.Context) error {
				ok, err := p.mapPrefix(ctx, prefix, listing)
				if err != nil || !ok {
					notFound.Add(1)
					return err
				}
				mapped.Add(1)
				return nil
			},
		})
	}

	if err := async.RunParallel(ctx, tasks, p.concurrency); err != nil {
		logger.Error(err, "some prefixes could not be mapped")
	}

	result := StartupResult{Mapped: int(mapped.Load()), NotFound: int(notFound.Load())}
	logger.Info("startup prefix reconciliation finished", "mapped", result.Mapped, "notFound", result.NotFound)
	return result, nil
}

// mapPrefix looks the prefix up by CIDR, falling back to a client-side match
// over all prefixes, and records it as Created when found.
func (p *PrefixStartup) mapPrefix(ctx context.Context, prefix *dcopsv1alpha1.NetBoxPrefix, listing *prefixListing) (bool, error) {
	cidr := prefix.Spec.Prefix
	recs, err := p.nb.Query(ctx, netbox.Prefixes, url.Values{"prefix": {cidr}}, false)
	if err != nil {
		return false, err
	}
	rec := firstPrefix(recs, cidr)
	if rec == nil {
		all, err := listing.get(ctx, p.nb)
		if err != nil {
			return false, err
		}
		rec = firstPrefix(all, cidr)
	}
	if rec == nil {
		log.FromContext(ctx).V(1).Info("prefix not found in NetBox", "prefix", cidr, "name", prefix.Name)
		return false, nil
	}

	if _, err := p.stabilizer.Apply(ctx, prefix, engine.CreatedStatus(rec, prefix.Generation)); err != nil {
		return false, err
	}
	log.FromContext(ctx).Info("mapped existing NetBox prefix", "prefix", cidr, "name", prefix.Name, "netboxId", rec.ID)
	return true, nil
}

func firstPrefix(recs []netbox.Record, cidr string) *netbox.Record {
	for i := range recs {
		if recs[i].String("prefix") == cidr {
			return &recs[i]
		}
	}
	return nil
}

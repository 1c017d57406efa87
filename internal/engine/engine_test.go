package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/netbox/fake"
)

func sitePlan(name, slug string) Plan {
	return Plan{
		Endpoint: netbox.Sites,
		Describe: `site "` + name + `"`,
		Desired:  map[string]any{"name": name, "slug": slug, "status": "active"},
		Lookups: []Lookup{
			{Name: "slug", Filters: url.Values{"slug": {slug}}},
			{Name: "name", Filters: url.Values{"name": {name}}},
		},
		Match: func(r netbox.Record) bool {
			return r.String("slug") == slug || r.String("name") == name
		},
	}
}

func createdAt(id int64) dcopsv1alpha1.ObservedStatus {
	return dcopsv1alpha1.ObservedStatus{ID: &id, State: dcopsv1alpha1.StateCreated}
}

func TestSync_CreatesWhenNothingMatches(t *testing.T) {
	nb := fake.New()
	e := New(nb)

	out, err := e.Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, sitePlan("DC1", "dc1"), nil)
	require.NoError(t, err)

	assert.Equal(t, ActionCreated, out.Action)
	assert.Equal(t, "dc1", out.Record.String("slug"))
	assert.Equal(t, 1, nb.Calls(http.MethodPost, netbox.Sites))
	assert.Equal(t, 1, nb.Len(netbox.Sites))
}

func TestSync_SecondPassIssuesNoWrites(t *testing.T) {
	nb := fake.New()
	e := New(nb)
	ctx := context.Background()

	first, err := e.Sync(ctx, dcopsv1alpha1.ObservedStatus{}, sitePlan("DC1", "dc1"), nil)
	require.NoError(t, err)
	nb.ResetCalls()

	second, err := e.Sync(ctx, CreatedStatus(first.Record, 1), sitePlan("DC1", "dc1"), nil)
	require.NoError(t, err)
	assert.Equal(t, ActionReused, second.Action)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Empty(t, second.Changed)
	assert.Zero(t, nb.Writes())
	assert.Equal(t, CreatedStatus(first.Record, 1), CreatedStatus(second.Record, 1))
}

func TestSync_UpdatesOnlyChangedFields(t *testing.T) {
	nb := fake.New()
	id := nb.Seed(netbox.Sites, map[string]any{
		"name": "DC1", "slug": "dc1", "status": "planned", "tenant": 5, "description": "old",
	})
	plan := sitePlan("DC1", "dc1")
	plan.Desired["tenant"] = int64(5)
	plan.Desired["description"] = "new"

	out, err := New(nb).Sync(context.Background(), createdAt(id), plan, nil)
	require.NoError(t, err)

	assert.Equal(t, ActionReused, out.Action)
	assert.Equal(t, []string{"description", "status"}, out.Changed)
	assert.Equal(t, "new", out.Record.String("description"))
	assert.Equal(t, "active", out.Record.Choice("status"))
	assert.Equal(t, 1, nb.Calls(http.MethodPatch, netbox.Sites))
}

func TestSync_DriftRecreates(t *testing.T) {
	nb := fake.New()
	id := nb.Seed(netbox.Sites, map[string]any{"name": "DC1", "slug": "dc1", "status": "active"})
	nb.Delete(netbox.Sites, id)

	var messages []string
	onDrift := func(_ context.Context, msg string) error {
		messages = append(messages, msg)
		return nil
	}

	out, err := New(nb).Sync(context.Background(), createdAt(id), sitePlan("DC1", "dc1"), onDrift)
	require.NoError(t, err)

	assert.True(t, out.Drifted)
	assert.Equal(t, ActionCreated, out.Action)
	assert.NotEqual(t, id, out.Record.ID)
	assert.Equal(t, []string{DriftMessage}, messages)
}

func TestSync_DriftHandlerErrorAborts(t *testing.T) {
	nb := fake.New()
	storeErr := StoreError("failed to patch status", errors.New("forbidden"))

	_, err := New(nb).Sync(context.Background(), createdAt(42), sitePlan("DC1", "dc1"),
		func(context.Context, string) error { return storeErr })
	require.Error(t, err)
	assert.True(t, IsStore(err))
	assert.Zero(t, nb.Calls(http.MethodPost, netbox.Sites))
}

func TestSync_AdoptsByNaturalKey(t *testing.T) {
	nb := fake.New()
	id := nb.Seed(netbox.Sites, map[string]any{"name": "DC1", "slug": "dc1", "status": "active"})

	out, err := New(nb).Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, sitePlan("DC1", "dc1"), nil)
	require.NoError(t, err)

	assert.Equal(t, ActionAdopted, out.Action)
	assert.Equal(t, id, out.Record.ID)
	assert.Zero(t, nb.Writes())
}

func TestSync_FailedWithStaleIDIsProbed(t *testing.T) {
	nb := fake.New()
	id := nb.Seed(netbox.Sites, map[string]any{"name": "DC1", "slug": "dc1", "status": "active"})
	current := dcopsv1alpha1.ObservedStatus{ID: &id, State: dcopsv1alpha1.StateFailed, Error: "boom"}

	out, err := New(nb).Sync(context.Background(), current, sitePlan("DC1", "dc1"), nil)
	require.NoError(t, err)
	assert.Equal(t, ActionReused, out.Action)
	assert.Equal(t, id, out.Record.ID)
	assert.Equal(t, 1, nb.Calls(http.MethodGet, netbox.Sites))
	assert.Zero(t, nb.Writes())
}

func TestSync_FailedWithVanishedIDIsNotDrift(t *testing.T) {
	nb := fake.New()
	id := int64(99)
	current := dcopsv1alpha1.ObservedStatus{ID: &id, State: dcopsv1alpha1.StateFailed, Error: "boom"}

	called := false
	out, err := New(nb).Sync(context.Background(), current, sitePlan("DC1", "dc1"),
		func(context.Context, string) error { called = true; return nil })
	require.NoError(t, err)
	assert.False(t, called)
	assert.False(t, out.Drifted)
	assert.Equal(t, ActionCreated, out.Action)
}

func TestSync_ProbeErrorPropagates(t *testing.T) {
	nb := fake.New()
	id := nb.Seed(netbox.Sites, map[string]any{"name": "DC1", "slug": "dc1"})
	nb.GetErr = func(netbox.Endpoint, int64) error {
		return &netbox.APIError{StatusCode: http.StatusServiceUnavailable, Method: "GET", Path: "dcim/sites/1"}
	}

	_, err := New(nb).Sync(context.Background(), createdAt(id), sitePlan("DC1", "dc1"), nil)
	require.Error(t, err)
	assert.Equal(t, ReasonTransient, ReasonOf(err))
	assert.True(t, IsProbe(err))
	assert.Zero(t, nb.Writes())
}

func TestIsProbe_OnlyMarksRecordedIDFetches(t *testing.T) {
	assert.False(t, IsProbe(Configurationf("bad")))
	assert.False(t, IsProbe(&netbox.APIError{StatusCode: http.StatusServiceUnavailable}))
	assert.True(t, IsProbe(fmt.Errorf("reconcile: %w", &probeError{err: errors.New("timeout")})))
}

func TestSync_ConflictRecoveredByLookup(t *testing.T) {
	nb := fake.New()
	// Another writer creates the site between our lookup and our create.
	nb.BeforeCreate = func(ep netbox.Endpoint, body map[string]any) error {
		nb.BeforeCreate = nil
		nb.Seed(ep, map[string]any{"name": "DC1", "slug": "dc1", "status": "active"})
		return nil
	}

	out, err := New(nb).Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, sitePlan("DC1", "dc1"), nil)
	require.NoError(t, err)

	assert.Equal(t, ActionRecovered, out.Action)
	assert.Equal(t, 1, nb.Calls(http.MethodPost, netbox.Sites))
	assert.Equal(t, 1, nb.Len(netbox.Sites))
}

func TestSync_ConflictRecoveredByScan(t *testing.T) {
	nb := fake.New()
	// Same name, different slug: the slug lookup misses and create conflicts
	// on the name.
	id := nb.Seed(netbox.Sites, map[string]any{"name": "DC1", "slug": "legacy-dc1", "status": "active"})
	plan := sitePlan("DC1", "dc1")
	plan.Lookups = plan.Lookups[:1]

	out, err := New(nb).Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, plan, nil)
	require.NoError(t, err)

	assert.Equal(t, ActionRecovered, out.Action)
	assert.Equal(t, id, out.Record.ID)
	assert.Equal(t, []string{"slug"}, out.Changed)
	assert.Equal(t, 1, nb.Len(netbox.Sites))
}

func TestSync_UnrecoverableConflictSurfacesCreateError(t *testing.T) {
	nb := fake.New()
	nb.Seed(netbox.Sites, map[string]any{"name": "DC1", "slug": "other"})
	plan := sitePlan("DC1", "dc1")
	plan.Lookups = plan.Lookups[:1]
	plan.Match = nil

	_, err := New(nb).Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, plan, nil)
	require.Error(t, err)
	assert.Equal(t, ReasonConflict, ReasonOf(err))
	assert.True(t, netbox.IsConflict(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestSync_CreateOverride(t *testing.T) {
	nb := fake.New()
	plan := sitePlan("DC1", "dc1")
	plan.Create = func(ctx context.Context) (*netbox.Record, error) {
		return nb.Create(ctx, netbox.Sites, map[string]any{"name": "DC1", "slug": "dc1", "status": "active", "facility": "x"})
	}

	out, err := New(nb).Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, "x", out.Record.String("facility"))
}

func TestSync_ReadOnly(t *testing.T) {
	nb := fake.New()
	id := nb.Seed(netbox.Prefixes, map[string]any{"prefix": "10.0.0.0/24"})
	plan := Plan{
		Endpoint: netbox.Prefixes,
		Describe: "prefix 10.0.0.0/24",
		Lookups:  []Lookup{{Name: "prefix", Filters: url.Values{"prefix": {"10.0.0.0/24"}}}},
		ReadOnly: true,
	}

	out, err := New(nb).Sync(context.Background(), dcopsv1alpha1.ObservedStatus{}, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, id, out.Record.ID)

	nb.Delete(netbox.Prefixes, id)
	_, err = New(nb).Sync(context.Background(), createdAt(id), plan, nil)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
	assert.Contains(t, err.Error(), "not found in NetBox")
	assert.Zero(t, nb.Writes())
}

func TestDiff_NormalizesNestedValues(t *testing.T) {
	live := &netbox.Record{Fields: map[string]any{
		"site":      map[string]any{"id": float64(3), "name": "dc1"},
		"status":    map[string]any{"value": "active", "label": "Active"},
		"tags":      []any{map[string]any{"id": float64(2)}, map[string]any{"id": float64(1)}},
		"vid":       float64(100),
		"latitude":  float64(52.5),
		"comments":  "",
		"untouched": "x",
	}}
	desired := map[string]any{
		"site":     int64(3),
		"status":   "active",
		"tags":     []int64{1, 2},
		"vid":      int32(100),
		"latitude": 52.5,
		"comments": "hello",
	}

	assert.Equal(t, map[string]any{"comments": "hello"}, Diff(live, desired))
}

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
)

// Stabilizer persists status transitions, skipping writes that would not
// change anything. Status writes are watched like spec writes, so an
// unconditional write would trigger another reconcile of the same object.
type Stabilizer struct {
	writer   client.StatusClient
	patterns []string
}

// NewStabilizer creates a Stabilizer. Failed objects whose error contains one
// of terminalPatterns are skipped by ShouldSkip.
func NewStabilizer(writer client.StatusClient, terminalPatterns []string) *Stabilizer {
	return &Stabilizer{writer: writer, patterns: terminalPatterns}
}

// Apply merge-patches the status of obj to desired unless it already matches.
// It reports whether a patch was sent; obj reflects the stored object after a
// successful patch.
func (s *Stabilizer) Apply(ctx context.Context, obj dcopsv1alpha1.NetBoxObject, desired dcopsv1alpha1.ObservedStatus) (bool, error) {
	if StatusEqual(obj.ObservedStatus(), desired) {
		return false, nil
	}

	data, err := json.Marshal(map[string]any{"status": obj.StatusPatch(desired)})
	if err != nil {
		return false, fmt.Errorf("failed to encode status patch: %w", err)
	}
	if err := s.writer.Status().Patch(ctx, obj, client.RawPatch(types.MergePatchType, data)); err != nil {
		return false, StoreError(fmt.Sprintf("failed to patch status of %s/%s", obj.GetNamespace(), obj.GetName()), err)
	}
	return true, nil
}

// ShouldSkip reports whether obj failed with a terminal-looking error for its
// current generation. Such objects are left alone until their spec changes.
// The matched error is returned for logging.
func (s *Stabilizer) ShouldSkip(obj dcopsv1alpha1.NetBoxObject) (bool, string) {
	status := obj.ObservedStatus()
	if status.State != dcopsv1alpha1.StateFailed || status.Error == "" {
		return false, ""
	}
	if status.ObservedGeneration != obj.GetGeneration() {
		return false, ""
	}
	for _, p := range s.patterns {
		if strings.Contains(status.Error, p) {
			return true, status.Error
		}
	}
	return false, ""
}

// StatusEqual compares two statuses field by field. Nil and empty extras are
// equal.
func StatusEqual(a, b dcopsv1alpha1.ObservedStatus) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// CreatedStatus is the status of a resource backed by rec.
func CreatedStatus(rec *netbox.Record, generation int64) dcopsv1alpha1.ObservedStatus {
	id := rec.ID
	return dcopsv1alpha1.ObservedStatus{
		ID:                 &id,
		URL:                rec.URL,
		State:              dcopsv1alpha1.StateCreated,
		ObservedGeneration: generation,
	}
}

// PendingStatus is the status of a resource without a confirmed record.
func PendingStatus(message string, generation int64) dcopsv1alpha1.ObservedStatus {
	return dcopsv1alpha1.ObservedStatus{
		State:              dcopsv1alpha1.StatePending,
		Error:              message,
		ObservedGeneration: generation,
	}
}

// FailedStatus marks current as Failed with err. The recorded id and url are
// kept so the next attempt probes them before creating anything.
func FailedStatus(current dcopsv1alpha1.ObservedStatus, err error, generation int64) dcopsv1alpha1.ObservedStatus {
	failed := current
	failed.State = dcopsv1alpha1.StateFailed
	failed.Error = err.Error()
	failed.ObservedGeneration = generation
	return failed
}

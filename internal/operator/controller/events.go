package controller

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"

	"github.com/microscaler/netbox-operator/internal/engine"
)

// Event reasons emitted on success. Failures use the engine.Reason.
const (
	EventReasonCreated   = "Created"
	EventReasonAdopted   = "Adopted"
	EventReasonRecovered = "Recovered"
	EventReasonUpdated   = "Updated"
)

// WithEventRecorder sets the recorder for Kubernetes events. Without one no
// events are emitted.
func WithEventRecorder(rec record.EventRecorder) Option {
	return func(r *Reconciler) {
		r.recorder = rec
	}
}

// recordOutcome emits a Normal event when NetBox was written to or the
// resource was bound to a different record.
func (r *Reconciler) recordOutcome(obj runtime.Object, outcome *engine.Outcome) {
	if r.recorder == nil {
		return
	}
	switch {
	case outcome.Action == engine.ActionCreated && outcome.Drifted:
		r.recorder.Eventf(obj, corev1.EventTypeNormal, EventReasonCreated,
			"Recreated NetBox record %d after drift", outcome.Record.ID)
	case outcome.Action == engine.ActionCreated:
		r.recorder.Eventf(obj, corev1.EventTypeNormal, EventReasonCreated, "Created NetBox record %d", outcome.Record.ID)
	case outcome.Action == engine.ActionAdopted:
		r.recorder.Eventf(obj, corev1.EventTypeNormal, EventReasonAdopted, "Adopted NetBox record %d", outcome.Record.ID)
	case outcome.Action == engine.ActionRecovered:
		r.recorder.Eventf(obj, corev1.EventTypeNormal, EventReasonRecovered, "Found NetBox record %d after a conflict", outcome.Record.ID)
	case len(outcome.Changed) > 0:
		r.recorder.Eventf(obj, corev1.EventTypeNormal, EventReasonUpdated,
			"Updated NetBox record %d: %v", outcome.Record.ID, outcome.Changed)
	}
}

// recordFailure emits a Warning event named after the error reason.
func (r *Reconciler) recordFailure(obj runtime.Object, cause error) {
	if r.recorder == nil {
		return
	}
	r.recorder.Event(obj, corev1.EventTypeWarning, string(engine.ReasonOf(cause)), cause.Error())
}

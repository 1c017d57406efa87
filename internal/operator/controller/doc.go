// Package controller implements the Kubernetes controllers reconciling
// dcops.microscaler.io resources against NetBox.
//
// Every kind runs the same Reconciler: a kind Mapper turns the resource spec
// into an engine.Plan after resolving its references, the sync engine makes
// sure exactly one matching NetBox record exists, and the status stabilizer
// persists the outcome only when it changed. Failures are requeued after a
// fixed delay, or after a per-object Fibonacci delay when configured.
//
// Change notifications are debounced: every event schedules the object key
// after the configured window, and the workqueue collapses the burst into a
// single reconcile.
package controller

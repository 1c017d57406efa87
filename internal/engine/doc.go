// Package engine holds the kind-independent reconciliation machinery shared by
// every NetBox-backed resource.
//
// A reconcile attempt runs three steps. The [Resolver] turns typed references
// into NetBox ids by reading the referenced resources' status. [Engine.Sync]
// makes sure exactly one NetBox record matches the resource, probing the
// recorded id first, then the natural-key lookups of the kind's [Plan], and
// only then creating. The [Stabilizer] writes the resulting status, and only
// when it differs from what is stored, so status writes do not retrigger the
// watch that caused them.
package engine

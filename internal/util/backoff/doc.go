// Package backoff provides the Fibonacci retry pacing used by reconcilers.
//
// [Fibonacci] yields delays of 1, 1, 2, 3, 5, 8 minutes and so on, capped at a
// maximum. [Tracker] keeps one sequence per object together with its error
// count so that a reconciler can pace retries for each object independently.
package backoff

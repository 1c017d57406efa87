// Package retry provides exponential backoff retry logic for transient failures.
//
// The [Do] function retries an operation with configurable max attempts,
// initial delay, and maximum delay. The NetBox client wraps every HTTP
// round trip with it so that 5xx responses, rate limiting and dropped
// connections are absorbed before an error reaches a reconciler.
package retry

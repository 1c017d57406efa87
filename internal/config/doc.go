// Package config loads the operator configuration.
//
// Values come from, in increasing precedence: built-in defaults, the process
// environment, an optional env-file, and command-line flags bound with
// [Load]. Every key has an environment variable, e.g. netbox.url is read from
// NETBOX_URL and dispatch.requeueStrategy from DISPATCH_REQUEUE_STRATEGY.
package config

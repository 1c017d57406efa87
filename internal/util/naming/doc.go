// Package naming derives NetBox names from Kubernetes objects.
//
// NetBox requires a slug on most organizational records. When a resource does
// not set one, the slug is derived from its name so that repeated attempts
// always look up and create the same record.
package naming

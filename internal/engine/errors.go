package engine

import (
	"errors"
	"fmt"

	"github.com/microscaler/netbox-operator/internal/netbox"
)

// Reason classifies reconcile errors.
type Reason string

const (
	// ReasonConfiguration means the resource itself is invalid: a reference
	// of the wrong kind, a missing required reference, an unparsable value.
	ReasonConfiguration Reason = "Configuration"
	// ReasonDependency means a referenced resource is missing or not Created.
	ReasonDependency Reason = "Dependency"
	// ReasonConflict means a create collided with an existing record that
	// could not be found afterwards.
	ReasonConflict Reason = "Conflict"
	// ReasonTransient means NetBox was unavailable after transport retries.
	ReasonTransient Reason = "Transient"
	// ReasonStore means the Kubernetes API rejected a read or status write.
	ReasonStore Reason = "Store"
	// ReasonUnknown is any other NetBox error.
	ReasonUnknown Reason = "Unknown"
)

// Error is a classified reconcile error.
type Error struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Configurationf returns a configuration error.
func Configurationf(format string, args ...any) error {
	return &Error{Reason: ReasonConfiguration, Message: fmt.Sprintf(format, args...)}
}

// Dependencyf returns a dependency error.
func Dependencyf(format string, args ...any) error {
	return &Error{Reason: ReasonDependency, Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a Kubernetes API error.
func StoreError(message string, err error) error {
	return &Error{Reason: ReasonStore, Message: message, Err: err}
}

// probeError marks a failed fetch of the recorded id. Nothing is known about
// the record, so the stored status stays as it is.
type probeError struct {
	err error
}

func (e *probeError) Error() string { return e.err.Error() }

func (e *probeError) Unwrap() error { return e.err }

// IsProbe reports whether err came from fetching the recorded id for reasons
// other than the record being gone.
func IsProbe(err error) bool {
	var p *probeError
	return errors.As(err, &p)
}

func conflictError(message string, err error) error {
	return &Error{Reason: ReasonConflict, Message: message, Err: err}
}

// ReasonOf classifies err. Unclassified NetBox errors are Transient when
// retrying could help and Unknown otherwise.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	if netbox.IsRetryable(err) {
		return ReasonTransient
	}
	return ReasonUnknown
}

// IsStore reports whether err is a Kubernetes API error.
func IsStore(err error) bool {
	return ReasonOf(err) == ReasonStore
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return ReasonOf(err) == ReasonConfiguration
}

// IsDependency reports whether err is an unresolved hard reference.
func IsDependency(err error) bool {
	return ReasonOf(err) == ReasonDependency
}

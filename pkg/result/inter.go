package result

import "time"

// AnyResult is satisfied by every Result instantiation. It is the runtime
// handle used where the payload types are not known at the call site, such
// as the guard and extract packages.
type AnyResult interface {
	// IsOk reports whether the value is the success variant
	IsOk() bool
	// IsFail reports whether the value is the failure variant
	IsFail() bool
	// Payload returns the payload of the active variant, untyped
	Payload() any
}

// Provider defines the read surface of a success-carrying value
type Provider[T any] interface {
	// Value returns the success payload
	Value() T
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// WithCause extends Provider with the failure side
type WithCause[T, F any] interface {
	Provider[T]
	// Cause returns the failure payload
	Cause() F
	// IsOk reports whether the value is the success variant
	IsOk() bool
}

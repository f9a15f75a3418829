package result

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
)

// ErrNoValue is the class of errors raised when the success payload of a
// failure is demanded unconditionally.
var ErrNoValue = errs.Class("no value")

// Result is an immutable two-variant container: either an Ok carrying a
// success payload of type S, or a Fail carrying a failure cause of type F.
// Exactly one variant is active. The zero value is an empty Ok, matching
// what OkEmpty constructs.
//
// Compare results with Equal or Equality, not with ==: the provenance
// fields give Go's built-in comparison identity semantics.
type Result[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     S
	cause     F
	isFail    bool
	hasValue  bool
}

// Ok wraps v in a success variant.
func Ok[S, F any](v S) Result[S, F] {
	return Result[S, F]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OkEmpty constructs a success variant with an absent payload.
func OkEmpty[S, F any]() Result[S, F] {
	return Result[S, F]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps cause in a failure variant. The cause is a required argument;
// there is no failure without one.
func Fail[S, F any](cause F) Result[S, F] {
	return Result[S, F]{
		cause:     cause,
		isFail:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the failure of from into a Result with a different
// success type, preserving the cause and the provenance of the source.
func FailFrom[In, Out, F any](from Result[In, F]) Result[Out, F] {
	return Result[Out, F]{
		id:        from.id,
		createdAt: from.createdAt,
		cause:     from.cause,
		isFail:    true,
	}
}

// IsOk reports whether r is the success variant.
func (r Result[S, F]) IsOk() bool {
	return !r.isFail
}

// IsFail reports whether r is the failure variant.
func (r Result[S, F]) IsFail() bool {
	return r.isFail
}

// Value returns the success payload, or the zero S for a failure.
func (r Result[S, F]) Value() S {
	return r.value
}

// Cause returns the failure cause, or the zero F for a success.
func (r Result[S, F]) Cause() F {
	return r.cause
}

// HasValue reports whether a success payload is present. It is false for
// failures and for the empty Ok.
func (r Result[S, F]) HasValue() bool {
	return r.hasValue
}

// Payload returns the payload of the active variant as an untyped value:
// the success payload of an Ok, the cause of a Fail, nil for an empty Ok.
func (r Result[S, F]) Payload() any {
	if r.isFail {
		return r.cause
	}
	if !r.hasValue {
		return nil
	}
	return r.value
}

// ValueOr returns the success payload when it is present and non-nil,
// otherwise fallback. This coalesces on absence of the payload, not on the
// variant; a failure simply has no payload to return.
func (r Result[S, F]) ValueOr(fallback S) S {
	if r.isFail || !r.hasValue || IsNil(r.value) {
		return fallback
	}
	return r.value
}

// Must returns the success payload and panics with an ErrNoValue error if r
// is a failure.
func (r Result[S, F]) Must() S {
	if r.isFail {
		panic(ErrNoValue.New("Must called on Fail: %v", r.cause))
	}
	return r.value
}

// All yields exactly one element, the payload of the active variant. It
// exists for single-slot destructuring; it does not short-circuit on the
// variant.
func (r Result[S, F]) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		yield(r.Payload())
	}
}

// ID returns the id stamped on r at construction. Provenance never
// participates in equality or hashing.
func (r Result[S, F]) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns the UTC creation time of r.
func (r Result[S, F]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[S, F]) String() string {
	if r.isFail {
		return fmt.Sprintf("<Fail(%v)>", r.cause)
	}
	return fmt.Sprintf("<Ok(%v)>", r.Payload())
}

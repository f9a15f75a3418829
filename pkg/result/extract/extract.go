package extract

import (
	"github.com/zeebo/errs"

	"github.com/ib-77/outcome/pkg/result"
)

// ErrNotResult is the class of errors raised when ValueOr receives
// something that is not a Result.
var ErrNotResult = errs.Class("not a result")

// ValueOr returns the success payload of x when it is an Ok, or fallback
// when it is a Fail. x must be a Result of some instantiation; anything
// else is caller misuse and panics with an ErrNotResult error rather than
// silently substituting the fallback.
func ValueOr(x any, fallback any) any {
	r, ok := x.(result.AnyResult)
	if !ok {
		panic(ErrNotResult.New("expected Ok or Fail, got %T", x))
	}
	if r.IsFail() {
		return fallback
	}
	return r.Payload()
}

// UnwrapOr returns the raw payload of x when x is a Result of either
// variant — the success payload of an Ok or the cause of a Fail, without
// distinguishing the two — and fallback when x is not a Result at all.
// Callers that care which side the payload came from must check the
// variant first.
func UnwrapOr(x any, fallback any) any {
	if r, ok := x.(result.AnyResult); ok {
		return r.Payload()
	}
	return fallback
}

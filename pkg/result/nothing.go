package result

import "github.com/zeebo/errs"

// ErrNothing is the class of errors raised when the absence marker is
// dereferenced.
var ErrNothing = errs.Class("nothing has no value")

// Nothing is the unit type representing "no value". It is only meaningful
// as the failure payload of an Option; it carries nothing and is never
// meant to be dereferenced, only matched against.
type Nothing struct{}

// None is the process-wide absence marker. It is stateless and immutable,
// safe to share from any number of goroutines.
var None = Nothing{}

// Value always panics. Nothing has no value to return.
func (Nothing) Value() any {
	panic(ErrNothing.New("dereferenced the absence marker"))
}

func (Nothing) String() string {
	return "Nothing"
}

// Option is a Result whose failure side is always the absence marker,
// modeling "value or nothing".
type Option[T any] = Result[T, Nothing]

// Some wraps v in the success side of an Option.
func Some[T any](v T) Option[T] {
	return Ok[T, Nothing](v)
}

// NoneOf constructs the empty Option for T.
func NoneOf[T any]() Option[T] {
	return Fail[T](None)
}

package result

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are the same variant carrying equal
// payloads. Two results of different variants are never equal, whatever
// their payloads. Provenance (id, creation time) is ignored.
func Equal[S, F comparable](a, b Result[S, F]) bool {
	if a.isFail != b.isFail {
		return false
	}
	if a.isFail {
		return a.cause == b.cause
	}
	if a.hasValue != b.hasValue {
		return false
	}
	return !a.hasValue || a.value == b.value
}

// Variant tags mixed into the digest so an Ok and a Fail carrying equal
// payloads never hash alike.
const (
	hashTagOk   = 0x4f // 'O'
	hashTagFail = 0x46 // 'F'
)

// Hash returns a digest of r consistent with Equal: equal results hash
// equal, and the variant tag keeps cross-variant payloads apart.
func Hash[S, F comparable](r Result[S, F]) uint64 {
	d := xxhash.New()
	if r.isFail {
		_, _ = d.Write([]byte{hashTagFail, 1})
		_, _ = fmt.Fprintf(d, "%v", r.cause)
		return d.Sum64()
	}
	if r.hasValue {
		_, _ = d.Write([]byte{hashTagOk, 1})
		_, _ = fmt.Fprintf(d, "%v", r.value)
	} else {
		_, _ = d.Write([]byte{hashTagOk, 0})
	}
	return d.Sum64()
}

// Equality is the untyped counterpart of Equal. It returns true only when
// both inputs are Results of the same variant with deeply equal payloads;
// any other combination, including one or both inputs not being a Result,
// returns false. It never panics.
func Equality(a, b any) bool {
	ra, ok := a.(AnyResult)
	if !ok {
		return false
	}
	rb, ok := b.(AnyResult)
	if !ok {
		return false
	}
	if ra.IsOk() != rb.IsOk() {
		return false
	}
	return reflect.DeepEqual(ra.Payload(), rb.Payload())
}

package guard

import "github.com/ib-77/outcome/pkg/result"

// Is reports whether x is a Result of any instantiation. It never panics
// and returns false for nil and for everything that is not a Result.
func Is(x any) bool {
	_, ok := x.(result.AnyResult)
	return ok
}

// IsOk reports whether r is the success variant, delegating to the
// variant's own query. A nil r is not a success.
func IsOk(r result.AnyResult) bool {
	return r != nil && r.IsOk()
}

// IsFail reports whether r is the failure variant. A nil r is not a
// failure either; it is not a Result at all.
func IsFail(r result.AnyResult) bool {
	return r != nil && r.IsFail()
}

// Oks returns the success elements of rs, in input order.
func Oks[S, F any](rs []result.Result[S, F]) []result.Result[S, F] {
	out := make([]result.Result[S, F], 0, len(rs))
	for _, r := range rs {
		if r.IsOk() {
			out = append(out, r)
		}
	}
	return out
}

// Fails returns the failure elements of rs, in input order.
func Fails[S, F any](rs []result.Result[S, F]) []result.Result[S, F] {
	out := make([]result.Result[S, F], 0, len(rs))
	for _, r := range rs {
		if r.IsFail() {
			out = append(out, r)
		}
	}
	return out
}

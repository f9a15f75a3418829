package combine

import (
	"iter"

	"github.com/ib-77/outcome/pkg/result"
)

// All merges results into a single Result. When every element is a success
// it returns Ok of the payloads in input order; an empty input yields Ok of
// an empty slice. On the first failure it returns that failure immediately,
// cause and provenance intact, and never inspects later elements.
func All[S, F any](results []result.Result[S, F]) result.Result[[]S, F] {
	values := make([]S, 0, len(results))
	for _, r := range results {
		if r.IsFail() {
			return result.FailFrom[S, []S](r)
		}
		values = append(values, r.Value())
	}
	return result.Ok[[]S, F](values)
}

// AllSeq is All over an iterator. The sequence is abandoned at the first
// failure, so it is safe to pass an unbounded source.
func AllSeq[S, F any](seq iter.Seq[result.Result[S, F]]) result.Result[[]S, F] {
	values := []S{}
	for r := range seq {
		if r.IsFail() {
			return result.FailFrom[S, []S](r)
		}
		values = append(values, r.Value())
	}
	return result.Ok[[]S, F](values)
}

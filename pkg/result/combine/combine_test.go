package combine

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/result"
)

func TestAll_AllOk(t *testing.T) {
	t.Parallel()

	combined := All([]result.Result[int, string]{
		result.Ok[int, string](1),
		result.Ok[int, string](2),
	})

	require.True(t, combined.IsOk())
	assert.Equal(t, []int{1, 2}, combined.Value())
}

func TestAll_Empty(t *testing.T) {
	t.Parallel()

	combined := All([]result.Result[int, string]{})

	require.True(t, combined.IsOk())
	assert.NotNil(t, combined.Value())
	assert.Empty(t, combined.Value())
}

func TestAll_FirstFailWins(t *testing.T) {
	t.Parallel()

	first := result.Fail[int]("e1")
	combined := All([]result.Result[int, string]{
		result.Ok[int, string](1),
		first,
		result.Fail[int]("e2"),
		result.Ok[int, string](2),
	})

	require.True(t, combined.IsFail())
	assert.Equal(t, "e1", combined.Cause())
	assert.Equal(t, first.ID(), combined.ID())
}

func TestAllSeq_ShortCircuits(t *testing.T) {
	t.Parallel()

	var pulled int
	seq := iter.Seq[result.Result[int, string]](func(yield func(result.Result[int, string]) bool) {
		for _, r := range []result.Result[int, string]{
			result.Ok[int, string](1),
			result.Fail[int]("e"),
			result.Ok[int, string](2),
		} {
			pulled++
			if !yield(r) {
				return
			}
		}
	})

	combined := AllSeq(seq)

	require.True(t, combined.IsFail())
	assert.Equal(t, "e", combined.Cause())
	// the trailing success is never inspected
	assert.Equal(t, 2, pulled)
}

func TestAllSeq_AllOk(t *testing.T) {
	t.Parallel()

	seq := iter.Seq[result.Result[int, string]](func(yield func(result.Result[int, string]) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(result.Ok[int, string](i)) {
				return
			}
		}
	})

	combined := AllSeq(seq)

	require.True(t, combined.IsOk())
	assert.Equal(t, []int{1, 2, 3}, combined.Value())
}

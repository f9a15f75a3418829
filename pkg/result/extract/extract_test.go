package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/result"
)

func TestValueOr_Ok(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, ValueOr(result.Ok[int, string](2), 5))
}

func TestValueOr_Fail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, ValueOr(result.Fail[int]("error"), 5))
}

func TestValueOr_EmptyOk(t *testing.T) {
	t.Parallel()

	// the strict extractor hands back the raw payload, absent or not
	assert.Nil(t, ValueOr(result.OkEmpty[int, string](), 5))
}

func TestValueOr_NonResultPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, ErrNotResult.Has(err))
	}()
	_ = ValueOr(nil, 5)
}

func TestUnwrapOr_Ok(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, UnwrapOr(result.Ok[int, string](2), 5))
}

func TestUnwrapOr_FailReturnsRawCause(t *testing.T) {
	t.Parallel()

	// variant-blind on purpose: the cause comes back, not the fallback
	assert.Equal(t, "error", UnwrapOr(result.Fail[int]("error"), 5))
}

func TestUnwrapOr_NonResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, UnwrapOr(nil, 5))
	assert.Equal(t, 5, UnwrapOr("junk", 5))
}

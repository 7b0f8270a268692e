package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	t.Run("defaults applied to zero values", func(t *testing.T) {
		p := PageRequest{}.Normalize()
		assert.Equal(t, DefaultPage, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
	})

	t.Run("page zero clamped to first page", func(t *testing.T) {
		// Upstream behavior would compute a negative offset here; we clamp
		// instead of crashing.
		p := PageRequest{Page: 0, PageSize: 5}.Normalize()
		assert.Equal(t, int64(1), p.Page)
		assert.Equal(t, int64(0), p.Offset())
	})

	t.Run("negative page clamped", func(t *testing.T) {
		p := PageRequest{Page: -3, PageSize: 5}.Normalize()
		assert.Equal(t, int64(1), p.Page)
	})

	t.Run("page size capped", func(t *testing.T) {
		p := PageRequest{Page: 1, PageSize: 1000}.Normalize()
		assert.Equal(t, MaxPageSize, p.PageSize)
	})

	t.Run("valid values untouched", func(t *testing.T) {
		p := PageRequest{Page: 2, PageSize: 1}.Normalize()
		assert.Equal(t, int64(2), p.Page)
		assert.Equal(t, int64(1), p.PageSize)
		assert.Equal(t, int64(1), p.Offset())
	})
}

package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, size := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, size)

	offset, size = CalculateOffsetLimit(3, 25)
	assert.Equal(t, uint64(50), offset)
	assert.Equal(t, 25, size)

	// Invalid inputs fall back to defaults
	offset, size = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, size)

	offset, size = CalculateOffsetLimit(2, MaxPageSize+1)
	assert.Equal(t, uint64(DefaultPageSize), offset)
	assert.Equal(t, DefaultPageSize, size)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(142, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(142), info.TotalItems)
	assert.Equal(t, 15, info.TotalPages) // ceil(142/10)

	info = NewPaginationInfo(100, 2, 10)
	assert.Equal(t, 10, info.TotalPages) // exact division

	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 0, info.TotalPages)

	// A page past the end keeps its requested number
	info = NewPaginationInfo(5, 7, 10)
	assert.Equal(t, 7, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
}

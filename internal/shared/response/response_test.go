package response_test

import (
	"testing"

	"go-payroll/internal/shared/response"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)

	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name                  string
		total, page, pageSize int
		start, end            int
	}{
		{"first page", 25, 1, 10, 0, 10},
		{"last partial page", 25, 3, 10, 20, 25},
		{"past the end", 25, 9, 10, 25, 25},
		{"invalid page defaults to first", 25, 0, 10, 0, 10},
		{"invalid size defaults to ten", 25, 1, 0, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := response.PageBounds(tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationDTO(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		page         int
		limit        int
		expectedPage int
		totalPages   int
		hasNext      bool
		hasPrev      bool
	}{
		{name: "partial last page", total: 23, page: 1, limit: 10, expectedPage: 1, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", total: 23, page: 2, limit: 10, expectedPage: 2, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", total: 23, page: 3, limit: 10, expectedPage: 3, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "exact multiple of limit", total: 30, page: 3, limit: 10, expectedPage: 3, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "empty collection", total: 0, page: 1, limit: 10, expectedPage: 1, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "single item", total: 1, page: 1, limit: 10, expectedPage: 1, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "page beyond range", total: 10, page: 5, limit: 10, expectedPage: 5, totalPages: 1, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginationDTO(tt.total, tt.page, tt.limit)
			require.NotNil(t, p)

			assert.Equal(t, tt.expectedPage, p.CurrentPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalSchemes)
			assert.Equal(t, tt.hasNext, p.HasNextPage)
			assert.Equal(t, tt.hasPrev, p.HasPrevPage)
		})
	}
}

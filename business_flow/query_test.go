package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krishisetu/kisan-yojana/utils"
)

func TestNormalizePageLimit(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		limit         int
		defaultLimit  int
		expectedPage  int
		expectedLimit int
	}{
		{name: "valid values pass through", page: 3, limit: 25, defaultLimit: 10, expectedPage: 3, expectedLimit: 25},
		{name: "zero page falls back to first", page: 0, limit: 10, defaultLimit: 10, expectedPage: 1, expectedLimit: 10},
		{name: "negative page falls back to first", page: -5, limit: 10, defaultLimit: 10, expectedPage: 1, expectedLimit: 10},
		{name: "zero limit uses default", page: 1, limit: 0, defaultLimit: 20, expectedPage: 1, expectedLimit: 20},
		{name: "negative limit uses default", page: 1, limit: -1, defaultLimit: 10, expectedPage: 1, expectedLimit: 10},
		{name: "oversized limit is capped", page: 1, limit: 5000, defaultLimit: 10, expectedPage: 1, expectedLimit: utils.MaxPageSize},
		{name: "limit at cap is kept", page: 1, limit: utils.MaxPageSize, defaultLimit: 10, expectedPage: 1, expectedLimit: utils.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePageLimit(tt.page, tt.limit, tt.defaultLimit)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestBuildOrderBy(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		expected  string
	}{
		{name: "default descending", sortBy: "createdAt", sortOrder: "", expected: "created_at DESC"},
		{name: "explicit ascending", sortBy: "name", sortOrder: "asc", expected: "name ASC"},
		{name: "explicit descending", sortBy: "viewCount", sortOrder: "desc", expected: "view_count DESC"},
		{name: "launch date column mapping", sortBy: "launchDate", sortOrder: "asc", expected: "launch_date ASC"},
		{name: "unknown column falls back", sortBy: "password_hash", sortOrder: "asc", expected: "created_at ASC"},
		{name: "empty sortBy falls back", sortBy: "", sortOrder: "", expected: "created_at DESC"},
		{name: "uppercase order is not ascending", sortBy: "name", sortOrder: "ASC", expected: "name DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildOrderBy(tt.sortBy, tt.sortOrder))
		})
	}
}

// Package businessflow contains the business logic for the application.
package businessflow

import (
	"github.com/krishisetu/kisan-yojana/utils"
)

// filterAll is the sentinel query value that disables a category/state filter
const filterAll = "All"

// sortColumns whitelists the sortBy values accepted by the public listing and
// maps them onto their database columns. Unknown values fall back to createdAt.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"name":       "name",
	"viewCount":  "view_count",
	"launchDate": "launch_date",
	"category":   "category",
	"state":      "state",
	"ministry":   "ministry",
}

// normalizePageLimit coerces raw page/limit values to sane positive integers.
// Non-positive (or unparsed) values fall back to defaults, and limit is capped
// to keep a single request from paging the whole collection.
func normalizePageLimit(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > utils.MaxPageSize {
		limit = utils.MaxPageSize
	}
	return page, limit
}

// buildOrderBy translates sortBy/sortOrder request values into an ORDER BY
// fragment. Descending is the default; ascending is selected only by the
// literal "asc".
func buildOrderBy(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

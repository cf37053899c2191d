// Package dto
package dto

// SchemeDTO is the full scheme representation returned by detail and admin endpoints
type SchemeDTO struct {
	ID                 string   `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Name               string   `json:"name" example:"PM-KISAN"`
	ShortDescription   string   `json:"shortDescription" example:"Income support for farmer families"`
	Description        string   `json:"description,omitempty"`
	OfficialLink       string   `json:"officialLink" example:"https://pmkisan.gov.in"`
	Category           string   `json:"category" example:"Subsidy"`
	Ministry           string   `json:"ministry" example:"Ministry of Agriculture & Farmers Welfare"`
	Eligibility        string   `json:"eligibility,omitempty"`
	Benefits           string   `json:"benefits,omitempty"`
	ApplicationProcess string   `json:"applicationProcess,omitempty"`
	Documents          []string `json:"documents,omitempty"`
	LaunchDate         *string  `json:"launchDate,omitempty" example:"2019-02-24T00:00:00Z"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	State              string   `json:"state" example:"All India"`
	IsActive           *bool    `json:"isActive" example:"true"`
	ViewCount          int64    `json:"viewCount" example:"0"`
	CreatedAt          string   `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt          string   `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
}

// SchemeListItemDTO is the trimmed representation used by the public listing;
// description, applicationProcess and documents are withheld from list views.
type SchemeListItemDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"shortDescription"`
	OfficialLink     string  `json:"officialLink"`
	Category         string  `json:"category"`
	Ministry         string  `json:"ministry"`
	Eligibility      string  `json:"eligibility"`
	Benefits         string  `json:"benefits"`
	LaunchDate       *string `json:"launchDate,omitempty"`
	ImageURL         string  `json:"imageUrl,omitempty"`
	State            string  `json:"state"`
	IsActive         *bool   `json:"isActive"`
	ViewCount        int64   `json:"viewCount"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ListSchemesRequest carries the public listing query parameters.
// Malformed numerics fall back to defaults instead of erroring.
type ListSchemesRequest struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Search    string `json:"search"`
	Category  string `json:"category"`
	State     string `json:"state"`
	Ministry  string `json:"ministry"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// AdminListSchemesRequest carries the admin listing query parameters
type AdminListSchemesRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Search   string `json:"search"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// CreateSchemeRequest is the typed input for scheme creation. Updates run the
// same validation, so the two operations share the struct.
type CreateSchemeRequest struct {
	Name               string   `json:"name" validate:"required,max=200"`
	ShortDescription   string   `json:"shortDescription" validate:"required,max=300"`
	Description        string   `json:"description" validate:"required"`
	OfficialLink       string   `json:"officialLink" validate:"required,url"`
	Category           string   `json:"category" validate:"required"`
	Ministry           string   `json:"ministry" validate:"required"`
	Eligibility        string   `json:"eligibility" validate:"required"`
	Benefits           string   `json:"benefits" validate:"required"`
	ApplicationProcess string   `json:"applicationProcess"`
	Documents          []string `json:"documents"`
	LaunchDate         *string  `json:"launchDate"`
	ImageURL           string   `json:"imageUrl"`
	State              string   `json:"state"`
}

// UpdateSchemeRequest aliases the create payload: update operations run full
// create-grade validation
type UpdateSchemeRequest = CreateSchemeRequest

// SchemeListResponse bundles a page of schemes with its pagination envelope
type SchemeListResponse struct {
	Schemes    []SchemeListItemDTO `json:"schemes"`
	Pagination *PaginationDTO      `json:"pagination"`
}

// AdminSchemeListResponse bundles a page of full scheme records for the back office
type AdminSchemeListResponse struct {
	Schemes    []SchemeDTO    `json:"schemes"`
	Pagination *PaginationDTO `json:"pagination"`
}

// CategoryCountDTO is a per-category or per-state count row
type CategoryCountDTO struct {
	Name  string `json:"name" example:"Subsidy"`
	Count int64  `json:"count" example:"12"`
}

// SchemeStatSummaryDTO is the trimmed scheme shape used inside stats responses
type SchemeStatSummaryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	ViewCount int64  `json:"viewCount,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// SchemeStatsResponse is the public statistics payload
type SchemeStatsResponse struct {
	TotalSchemes  int64                  `json:"totalSchemes"`
	CategoryStats []CategoryCountDTO     `json:"categoryStats"`
	StateStats    []CategoryCountDTO     `json:"stateStats"`
	MostViewed    []SchemeStatSummaryDTO `json:"mostViewed"`
	RecentlyAdded []SchemeStatSummaryDTO `json:"recentlyAdded"`
}

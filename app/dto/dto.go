package dto

// APIResponse represents the standard API response structure
type APIResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message,omitempty"`
	Data       any            `json:"data,omitempty" validate:"omitempty"`
	Pagination *PaginationDTO `json:"pagination,omitempty" validate:"omitempty"`
	Error      any            `json:"error,omitempty" validate:"omitempty"`
}

// ErrorDetail represents error details in API responses
type ErrorDetail struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty" validate:"omitempty"`
}

// PaginationDTO is the envelope returned alongside every paginated listing
type PaginationDTO struct {
	CurrentPage  int   `json:"currentPage" example:"1"`
	TotalPages   int   `json:"totalPages" example:"3"`
	TotalSchemes int64 `json:"totalSchemes" example:"23"`
	HasNextPage  bool  `json:"hasNextPage" example:"true"`
	HasPrevPage  bool  `json:"hasPrevPage" example:"false"`
}

// NewPaginationDTO computes the pagination envelope for a listing result.
// totalPages is ceil(total/limit); the flags derive from the current page.
func NewPaginationDTO(total int64, page, limit int) *PaginationDTO {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PaginationDTO{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalSchemes: total,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

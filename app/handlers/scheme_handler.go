package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/app/middleware"
	businessflow "github.com/krishisetu/kisan-yojana/business_flow"
)

// SchemeHandlerInterface defines the contract for the public scheme handlers
type SchemeHandlerInterface interface {
	ListSchemes(c fiber.Ctx) error
	GetSchemeByID(c fiber.Ctx) error
	GetCategories(c fiber.Ctx) error
	GetStats(c fiber.Ctx) error
}

// SchemeHandler implements SchemeHandlerInterface
type SchemeHandler struct {
	flow          businessflow.SchemeFlow
	isDevelopment bool
}

func NewSchemeHandler(flow businessflow.SchemeFlow, isDevelopment bool) SchemeHandlerInterface {
	return &SchemeHandler{
		flow:          flow,
		isDevelopment: isDevelopment,
	}
}

// ListSchemes returns a page of active schemes
// @Summary List schemes
// @Description List active schemes with filtering, full-text search, sorting and pagination
// @Tags Schemes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Full-text search over name, descriptions, category and ministry"
// @Param category query string false "Filter by category ('All' disables the filter)"
// @Param state query string false "Filter by state ('All' disables the filter)"
// @Param ministry query string false "Filter by ministry substring"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortOrder query string false "Sort direction (asc or desc)" default(desc)
// @Success 200 {object} dto.APIResponse{data=dto.SchemeListResponse} "Schemes fetched"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes [get]
func (h *SchemeHandler) ListSchemes(c fiber.Ctx) error {
	req := &dto.ListSchemesRequest{
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		State:     c.Query("state"),
		Ministry:  c.Query("ministry"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	result, err := h.flow.ListSchemes(createRequestContext(c, "/api/schemes"), req)
	if err != nil {
		log.Println("Scheme listing failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch schemes", "SCHEME_LIST_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success:    true,
		Message:    "Schemes fetched successfully",
		Data:       result.Schemes,
		Pagination: result.Pagination,
	})
}

// GetSchemeByID returns a single scheme and counts the view
// @Summary Get scheme
// @Description Fetch a single scheme by ID and increment its view counter
// @Tags Schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=dto.SchemeDTO} "Scheme fetched"
// @Failure 404 {object} dto.APIResponse "Scheme not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/{id} [get]
func (h *SchemeHandler) GetSchemeByID(c fiber.Ctx) error {
	result, err := h.flow.GetSchemeByID(createRequestContext(c, "/api/schemes/:id"), c.Params("id"))
	if err != nil {
		if businessflow.IsSchemeNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Scheme not found", "SCHEME_NOT_FOUND", nil)
		}
		log.Println("Scheme fetch failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch scheme", "SCHEME_FETCH_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	middleware.RecordSchemeView()
	return successResponse(c, fiber.StatusOK, "Scheme fetched successfully", result)
}

// GetCategories returns active scheme counts per category
// @Summary List categories
// @Description List categories with the number of active schemes in each
// @Tags Schemes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CategoryCountDTO} "Categories fetched"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/categories [get]
func (h *SchemeHandler) GetCategories(c fiber.Ctx) error {
	result, err := h.flow.GetCategories(createRequestContext(c, "/api/schemes/categories"))
	if err != nil {
		log.Println("Category listing failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch categories", "SCHEME_CATEGORIES_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Categories fetched successfully", result)
}

// GetStats returns aggregate statistics over active schemes
// @Summary Scheme statistics
// @Description Aggregate counts per category and state plus most viewed and recently added schemes
// @Tags Schemes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SchemeStatsResponse} "Statistics fetched"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/stats [get]
func (h *SchemeHandler) GetStats(c fiber.Ctx) error {
	result, err := h.flow.GetStats(createRequestContext(c, "/api/schemes/stats"))
	if err != nil {
		log.Println("Stats aggregation failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch statistics", "SCHEME_STATS_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Statistics fetched successfully", result)
}

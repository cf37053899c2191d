package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/krishisetu/kisan-yojana/app/dto"
	businessflow "github.com/krishisetu/kisan-yojana/business_flow"
)

// SchemeAdminHandlerInterface defines the contract for back-office scheme handlers
type SchemeAdminHandlerInterface interface {
	ListSchemes(c fiber.Ctx) error
	CreateScheme(c fiber.Ctx) error
	UpdateScheme(c fiber.Ctx) error
	DeleteScheme(c fiber.Ctx) error
	ToggleScheme(c fiber.Ctx) error
}

// SchemeAdminHandler implements SchemeAdminHandlerInterface
type SchemeAdminHandler struct {
	flow          businessflow.AdminSchemeFlow
	validator     *validator.Validate
	isDevelopment bool
}

func NewSchemeAdminHandler(flow businessflow.AdminSchemeFlow, isDevelopment bool) SchemeAdminHandlerInterface {
	return &SchemeAdminHandler{
		flow:          flow,
		validator:     validator.New(),
		isDevelopment: isDevelopment,
	}
}

// ListSchemes returns a page of schemes for the back office
// @Summary List schemes (admin)
// @Description List all schemes, active and inactive, with substring search over name and category
// @Tags Scheme Administration
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Substring search over name and category"
// @Param status query string false "Filter by status (active or inactive)"
// @Param category query string false "Filter by category ('All' disables the filter)"
// @Success 200 {object} dto.APIResponse{data=dto.AdminSchemeListResponse} "Schemes fetched"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/admin/all [get]
func (h *SchemeAdminHandler) ListSchemes(c fiber.Ctx) error {
	req := &dto.AdminListSchemesRequest{
		Page:     queryInt(c, "page", 0),
		Limit:    queryInt(c, "limit", 0),
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	result, err := h.flow.ListSchemes(createRequestContext(c, "/api/schemes/admin/all"), req)
	if err != nil {
		log.Println("Admin scheme listing failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch schemes", "SCHEME_LIST_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success:    true,
		Message:    "Schemes fetched successfully",
		Data:       result.Schemes,
		Pagination: result.Pagination,
	})
}

// CreateScheme creates a new scheme
// @Summary Create scheme
// @Description Create a new scheme; it starts active with a zero view count
// @Tags Scheme Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchemeRequest true "Scheme data"
// @Success 201 {object} dto.APIResponse{data=dto.SchemeDTO} "Scheme created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes [post]
func (h *SchemeAdminHandler) CreateScheme(c fiber.Ctx) error {
	var req dto.CreateSchemeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorDetails(err))
	}

	metadata := clientMetadata(c)
	result, err := h.flow.CreateScheme(createRequestContext(c, "/api/schemes"), &req, metadata)
	if err != nil {
		if status, code, message, ok := schemeErrorStatus(err); ok {
			return errorResponse(c, status, message, code, nil)
		}
		log.Println("Scheme creation failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create scheme", "SCHEME_CREATE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusCreated, "Scheme created successfully", result)
}

// UpdateScheme replaces an existing scheme's fields
// @Summary Update scheme
// @Description Update an existing scheme; the payload is validated like a create
// @Tags Scheme Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scheme ID"
// @Param request body dto.UpdateSchemeRequest true "Scheme data"
// @Success 200 {object} dto.APIResponse{data=dto.SchemeDTO} "Scheme updated"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Scheme not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/{id} [put]
func (h *SchemeAdminHandler) UpdateScheme(c fiber.Ctx) error {
	var req dto.UpdateSchemeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorDetails(err))
	}

	metadata := clientMetadata(c)
	result, err := h.flow.UpdateScheme(createRequestContext(c, "/api/schemes/:id"), c.Params("id"), &req, metadata)
	if err != nil {
		if businessflow.IsSchemeNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Scheme not found", "SCHEME_NOT_FOUND", nil)
		}
		if status, code, message, ok := schemeErrorStatus(err); ok {
			return errorResponse(c, status, message, code, nil)
		}
		log.Println("Scheme update failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update scheme", "SCHEME_UPDATE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Scheme updated successfully", result)
}

// DeleteScheme permanently removes a scheme
// @Summary Delete scheme
// @Description Permanently delete a scheme
// @Tags Scheme Administration
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scheme ID"
// @Success 200 {object} dto.APIResponse "Scheme deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Scheme not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/{id} [delete]
func (h *SchemeAdminHandler) DeleteScheme(c fiber.Ctx) error {
	metadata := clientMetadata(c)
	err := h.flow.DeleteScheme(createRequestContext(c, "/api/schemes/:id"), c.Params("id"), metadata)
	if err != nil {
		if businessflow.IsSchemeNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Scheme not found", "SCHEME_NOT_FOUND", nil)
		}
		log.Println("Scheme deletion failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete scheme", "SCHEME_DELETE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Scheme deleted successfully", nil)
}

// ToggleScheme flips a scheme's active flag
// @Summary Toggle scheme visibility
// @Description Activate or deactivate a scheme
// @Tags Scheme Administration
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=dto.SchemeDTO} "Scheme toggled"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Scheme not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/schemes/{id}/toggle [patch]
func (h *SchemeAdminHandler) ToggleScheme(c fiber.Ctx) error {
	metadata := clientMetadata(c)
	result, message, err := h.flow.ToggleScheme(createRequestContext(c, "/api/schemes/:id/toggle"), c.Params("id"), metadata)
	if err != nil {
		if businessflow.IsSchemeNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Scheme not found", "SCHEME_NOT_FOUND", nil)
		}
		log.Println("Scheme toggle failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to toggle scheme", "SCHEME_TOGGLE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, message, result)
}

// schemeErrorStatus maps field-level business errors to HTTP bad requests
func schemeErrorStatus(err error) (int, string, string, bool) {
	switch {
	case businessflow.IsInvalidCategory(err):
		return fiber.StatusBadRequest, "INVALID_CATEGORY", "Unknown scheme category", true
	case businessflow.IsInvalidState(err):
		return fiber.StatusBadRequest, "INVALID_STATE", "Unknown scheme state", true
	case businessflow.IsInvalidDate(err):
		return fiber.StatusBadRequest, "INVALID_LAUNCH_DATE", "Invalid launch date", true
	default:
		return 0, "", "", false
	}
}

package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/app/middleware"
	businessflow "github.com/krishisetu/kisan-yojana/business_flow"
)

// AdminManagementHandlerInterface defines the contract for superadmin account management handlers
type AdminManagementHandlerInterface interface {
	Register(c fiber.Ctx) error
	ListAdmins(c fiber.Ctx) error
	ToggleAdmin(c fiber.Ctx) error
	DeleteAdmin(c fiber.Ctx) error
}

// AdminManagementHandler implements AdminManagementHandlerInterface
type AdminManagementHandler struct {
	flow          businessflow.AdminManagementFlow
	validator     *validator.Validate
	isDevelopment bool
}

func NewAdminManagementHandler(flow businessflow.AdminManagementFlow, isDevelopment bool) AdminManagementHandlerInterface {
	return &AdminManagementHandler{
		flow:          flow,
		validator:     validator.New(),
		isDevelopment: isDevelopment,
	}
}

// Register creates a new admin account
// @Summary Register admin
// @Description Create a new admin account (superadmin only)
// @Tags Admin Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminRegisterRequest true "Admin data"
// @Success 201 {object} dto.APIResponse{data=dto.AdminDTO} "Admin created"
// @Failure 400 {object} dto.APIResponse "Validation failed or duplicate account"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/register [post]
func (h *AdminManagementHandler) Register(c fiber.Ctx) error {
	var req dto.AdminRegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorDetails(err))
	}

	metadata := clientMetadata(c)
	result, err := h.flow.Register(createRequestContext(c, "/api/admin/register"), &req, metadata)
	if err != nil {
		if businessflow.IsAdminAlreadyExists(err) {
			return errorResponse(c, fiber.StatusBadRequest, "Admin with this email or username already exists", "ADMIN_ALREADY_EXISTS", nil)
		}
		if businessflow.IsInvalidRole(err) {
			return errorResponse(c, fiber.StatusBadRequest, "Unknown admin role", "INVALID_ROLE", nil)
		}
		log.Println("Admin registration failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create admin", "ADMIN_REGISTER_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusCreated, "Admin created successfully", result)
}

// ListAdmins returns all admin accounts
// @Summary List admins
// @Description List every admin account without credentials (superadmin only)
// @Tags Admin Management
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminListResponse} "Admins fetched"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/all [get]
func (h *AdminManagementHandler) ListAdmins(c fiber.Ctx) error {
	result, err := h.flow.ListAdmins(createRequestContext(c, "/api/admin/all"))
	if err != nil {
		log.Println("Admin listing failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list admins", "ADMIN_LIST_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Admins fetched successfully", result)
}

// ToggleAdmin flips another admin's active flag
// @Summary Toggle admin account
// @Description Activate or deactivate another admin account (superadmin only)
// @Tags Admin Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdminDTO} "Admin toggled"
// @Failure 400 {object} dto.APIResponse "Cannot target own account"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/{id}/toggle [patch]
func (h *AdminManagementHandler) ToggleAdmin(c fiber.Ctx) error {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Admin authentication required", "ADMIN_AUTHENTICATION_REQUIRED", nil)
	}

	metadata := clientMetadata(c)
	result, message, err := h.flow.ToggleAdmin(createRequestContext(c, "/api/admin/:id/toggle"), adminID, c.Params("id"), metadata)
	if err != nil {
		if businessflow.IsSelfTargetNotAllowed(err) {
			return errorResponse(c, fiber.StatusBadRequest, "You cannot deactivate your own account", "SELF_TARGET_NOT_ALLOWED", nil)
		}
		if businessflow.IsAdminNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Admin not found", "ADMIN_NOT_FOUND", nil)
		}
		log.Println("Admin toggle failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to toggle admin", "ADMIN_TOGGLE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, message, result)
}

// DeleteAdmin permanently removes another admin account
// @Summary Delete admin account
// @Description Permanently delete another admin account (superadmin only)
// @Tags Admin Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} dto.APIResponse "Admin deleted"
// @Failure 400 {object} dto.APIResponse "Cannot target own account"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/{id} [delete]
func (h *AdminManagementHandler) DeleteAdmin(c fiber.Ctx) error {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Admin authentication required", "ADMIN_AUTHENTICATION_REQUIRED", nil)
	}

	metadata := clientMetadata(c)
	err := h.flow.DeleteAdmin(createRequestContext(c, "/api/admin/:id"), adminID, c.Params("id"), metadata)
	if err != nil {
		if businessflow.IsSelfTargetNotAllowed(err) {
			return errorResponse(c, fiber.StatusBadRequest, "You cannot delete your own account", "SELF_TARGET_NOT_ALLOWED", nil)
		}
		if businessflow.IsAdminNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Admin not found", "ADMIN_NOT_FOUND", nil)
		}
		log.Println("Admin deletion failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete admin", "ADMIN_DELETE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Admin deleted successfully", nil)
}

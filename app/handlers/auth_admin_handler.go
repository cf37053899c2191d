package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/app/middleware"
	businessflow "github.com/krishisetu/kisan-yojana/business_flow"
)

// AdminAuthHandlerInterface defines the contract for admin authentication handlers
type AdminAuthHandlerInterface interface {
	Setup(c fiber.Ctx) error
	Login(c fiber.Ctx) error
	GetProfile(c fiber.Ctx) error
	ChangePassword(c fiber.Ctx) error
}

// AdminAuthHandler implements AdminAuthHandlerInterface
type AdminAuthHandler struct {
	flow          businessflow.AdminAuthFlow
	validator     *validator.Validate
	isDevelopment bool
}

func NewAdminAuthHandler(flow businessflow.AdminAuthFlow, isDevelopment bool) AdminAuthHandlerInterface {
	return &AdminAuthHandler{
		flow:          flow,
		validator:     validator.New(),
		isDevelopment: isDevelopment,
	}
}

// Setup bootstraps the first superadmin account
// @Summary Initial admin setup
// @Description Create the first superadmin account; only works while no admin exists
// @Tags Admin Authentication
// @Accept json
// @Produce json
// @Param request body dto.AdminSetupRequest true "Superadmin data"
// @Success 201 {object} dto.APIResponse{data=dto.AdminAuthResponse} "Setup completed"
// @Failure 400 {object} dto.APIResponse "Validation failed or setup already completed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/setup [post]
func (h *AdminAuthHandler) Setup(c fiber.Ctx) error {
	var req dto.AdminSetupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorDetails(err))
	}

	metadata := clientMetadata(c)
	result, err := h.flow.Setup(createRequestContext(c, "/api/admin/setup"), &req, metadata)
	if err != nil {
		if businessflow.IsSetupAlreadyCompleted(err) {
			return errorResponse(c, fiber.StatusBadRequest, "Admin setup has already been completed", "SETUP_ALREADY_COMPLETED", nil)
		}
		log.Println("Admin setup failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Admin setup failed", "ADMIN_SETUP_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusCreated, "Admin setup completed successfully", result)
}

// Login authenticates an admin
// @Summary Admin login
// @Description Authenticate an admin with email and password
// @Tags Admin Authentication
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminAuthResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Invalid credentials or deactivated account"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/login [post]
func (h *AdminAuthHandler) Login(c fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorDetails(err))
	}

	metadata := clientMetadata(c)
	result, err := h.flow.Login(createRequestContext(c, "/api/admin/login"), &req, metadata)
	if err != nil {
		if businessflow.IsAdminNotFound(err) || businessflow.IsIncorrectPassword(err) {
			return errorResponse(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS", nil)
		}
		if businessflow.IsAdminInactive(err) {
			return errorResponse(c, fiber.StatusUnauthorized, "Account has been deactivated", "ACCOUNT_DEACTIVATED", nil)
		}
		log.Println("Admin login failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Login successful", result)
}

// GetProfile returns the acting admin's own account
// @Summary Admin profile
// @Description Fetch the authenticated admin's own account
// @Tags Admin Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminDTO} "Profile fetched"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/profile [get]
func (h *AdminAuthHandler) GetProfile(c fiber.Ctx) error {
	// The auth middleware already re-fetched the acting admin for this request
	if admin, ok := middleware.GetAdminFromContext(c); ok {
		return successResponse(c, fiber.StatusOK, "Profile fetched successfully", businessflow.ToAdminDTO(*admin))
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Admin authentication required", "ADMIN_AUTHENTICATION_REQUIRED", nil)
	}

	result, err := h.flow.GetProfile(createRequestContext(c, "/api/admin/profile"), adminID)
	if err != nil {
		if businessflow.IsAdminNotFound(err) {
			return errorResponse(c, fiber.StatusUnauthorized, "Admin account no longer exists", "ADMIN_NOT_FOUND", nil)
		}
		log.Println("Profile fetch failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch profile", "PROFILE_FETCH_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Profile fetched successfully", result)
}

// ChangePassword rotates the acting admin's password
// @Summary Change password
// @Description Rotate the authenticated admin's password after verifying the current one
// @Tags Admin Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminChangePasswordRequest true "Password change data"
// @Success 200 {object} dto.APIResponse "Password changed"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Unauthorized or incorrect current password"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/password [put]
func (h *AdminAuthHandler) ChangePassword(c fiber.Ctx) error {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Admin authentication required", "ADMIN_AUTHENTICATION_REQUIRED", nil)
	}

	var req dto.AdminChangePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorDetails(err))
	}

	metadata := clientMetadata(c)
	err := h.flow.ChangePassword(createRequestContext(c, "/api/admin/password"), adminID, &req, metadata)
	if err != nil {
		if businessflow.IsIncorrectPassword(err) {
			return errorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect", "INCORRECT_PASSWORD", nil)
		}
		if businessflow.IsAdminNotFound(err) {
			return errorResponse(c, fiber.StatusUnauthorized, "Admin account no longer exists", "ADMIN_NOT_FOUND", nil)
		}
		log.Println("Password change failed", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to change password", "PASSWORD_CHANGE_FAILED", internalErrorDetails(err, h.isDevelopment))
	}

	return successResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}

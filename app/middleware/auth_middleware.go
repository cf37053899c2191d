// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/app/services"
	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	"github.com/krishisetu/kisan-yojana/utils"
)

// AuthMiddleware handles JWT token validation for protected endpoints
type AuthMiddleware struct {
	tokenService services.TokenService
	adminRepo    repository.AdminRepository
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService services.TokenService, adminRepo repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		adminRepo:    adminRepo,
	}
}

// Authenticate validates the bearer token and loads the admin it belongs to.
// Tokens only carry the admin ID; role and active status are re-read from the
// store on every request so revoked accounts lose access immediately.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Authorization header is required",
				Error: dto.ErrorDetail{
					Code: "MISSING_AUTHORIZATION_HEADER",
				},
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Invalid authorization header format. Expected 'Bearer <token>'",
				Error: dto.ErrorDetail{
					Code: "INVALID_AUTHORIZATION_FORMAT",
				},
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Access token is required",
				Error: dto.ErrorDetail{
					Code: "MISSING_ACCESS_TOKEN",
				},
			})
		}

		claims, err := m.tokenService.ValidateAdminToken(token)
		if err != nil {
			var errorCode string
			var message string

			if errors.Is(err, services.ErrTokenExpired) {
				errorCode = "TOKEN_EXPIRED"
				message = "Access token has expired"
			} else if errors.Is(err, services.ErrTokenInvalid) {
				errorCode = "TOKEN_INVALID"
				message = "Invalid access token"
			} else {
				errorCode = "TOKEN_VALIDATION_FAILED"
				message = "Token validation failed"
			}

			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: message,
				Error: dto.ErrorDetail{
					Code: errorCode,
				},
			})
		}

		admin, err := m.adminRepo.ByID(c.Context(), claims.AdminID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
				Success: false,
				Message: "Failed to verify admin account",
				Error:   dto.ErrorDetail{Code: "ADMIN_LOOKUP_FAILED"},
			})
		}
		if admin == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Admin account no longer exists",
				Error:   dto.ErrorDetail{Code: "ADMIN_NOT_FOUND"},
			})
		}
		if !utils.IsTrue(admin.IsActive) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Account has been deactivated",
				Error:   dto.ErrorDetail{Code: "ADMIN_DEACTIVATED"},
			})
		}

		c.Locals("admin_id", admin.ID)
		c.Locals("admin_role", admin.Role)
		c.Locals("admin", admin)
		c.Locals("token_id", claims.TokenID)

		if requestID := c.Get("X-Request-ID"); requestID != "" {
			c.Locals("request_id", requestID)
		}

		return c.Next()
	}
}

// RequireRole gates a route to admins holding one of the given roles. It must
// run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals("admin_role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "Admin authentication required",
				Error:   dto.ErrorDetail{Code: "ADMIN_AUTHENTICATION_REQUIRED"},
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.APIResponse{
			Success: false,
			Message: "Access denied. Required role: " + strings.Join(roles, " or "),
			Error:   dto.ErrorDetail{Code: "INSUFFICIENT_ROLE"},
		})
	}
}

// GetAdminIDFromContext extracts the acting admin's ID from the request context
func GetAdminIDFromContext(c fiber.Ctx) (uint, bool) {
	adminID, ok := c.Locals("admin_id").(uint)
	return adminID, ok
}

// GetAdminFromContext extracts the acting admin from the request context
func GetAdminFromContext(c fiber.Ctx) (*models.Admin, bool) {
	admin, ok := c.Locals("admin").(*models.Admin)
	return admin, ok
}

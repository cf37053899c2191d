// Package dto
package dto

// AdminDTO is the public representation of an admin account; the password hash
// is never part of any response payload
type AdminDTO struct {
	ID        uint    `json:"id" example:"1"`
	UUID      string  `json:"uuid" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Username  string  `json:"username" example:"admin"`
	Email     string  `json:"email" example:"admin@example.com"`
	Role      string  `json:"role" example:"admin"`
	IsActive  *bool   `json:"is_active" example:"true"`
	LastLogin *string `json:"last_login,omitempty" example:"2024-01-15T10:30:00Z"`
	CreatedAt string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// AdminSetupRequest creates the first superadmin while the admin store is empty
type AdminSetupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// AdminLoginRequest authenticates an admin by email and password
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminAuthResponse is returned by login and setup: the admin's public fields
// plus a signed bearer token
type AdminAuthResponse struct {
	ID       uint   `json:"id"`
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// AdminRegisterRequest creates a new admin account (superadmin only)
type AdminRegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin superadmin"`
}

// AdminChangePasswordRequest rotates the acting admin's password
type AdminChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=100"`
}

// AdminListResponse lists every admin account minus credentials
type AdminListResponse struct {
	Count  int        `json:"count"`
	Admins []AdminDTO `json:"admins"`
}

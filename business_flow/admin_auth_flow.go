package businessflow

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/app/services"
	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	"github.com/krishisetu/kisan-yojana/utils"
)

// AdminAuthFlow exposes authentication and self-service use cases for admins
type AdminAuthFlow interface {
	Setup(ctx context.Context, req *dto.AdminSetupRequest, metadata *ClientMetadata) (*dto.AdminAuthResponse, error)
	Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminAuthResponse, error)
	GetProfile(ctx context.Context, adminID uint) (*dto.AdminDTO, error)
	ChangePassword(ctx context.Context, adminID uint, req *dto.AdminChangePasswordRequest, metadata *ClientMetadata) error
}

// AdminAuthFlowImpl implements AdminAuthFlow
type AdminAuthFlowImpl struct {
	adminRepo    repository.AdminRepository
	tokenService services.TokenService
	bcryptCost   int
}

func NewAdminAuthFlow(adminRepo repository.AdminRepository, tokenService services.TokenService, bcryptCost int) AdminAuthFlow {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AdminAuthFlowImpl{
		adminRepo:    adminRepo,
		tokenService: tokenService,
		bcryptCost:   bcryptCost,
	}
}

// Setup bootstraps the very first superadmin account. It only works while the
// admin store is completely empty, so it can be left enabled in production.
func (f *AdminAuthFlowImpl) Setup(ctx context.Context, req *dto.AdminSetupRequest, metadata *ClientMetadata) (*dto.AdminAuthResponse, error) {
	count, err := f.adminRepo.Count(ctx, models.AdminFilter{})
	if err != nil {
		return nil, NewBusinessError("ADMIN_SETUP_FAILED", "Failed to check existing admins", err)
	}
	if count > 0 {
		return nil, NewBusinessError("SETUP_ALREADY_COMPLETED", "Admin setup has already been completed", ErrSetupAlreadyCompleted)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), f.bcryptCost)
	if err != nil {
		return nil, NewBusinessError("ADMIN_SETUP_FAILED", "Failed to hash password", err)
	}

	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleSuperAdmin,
		IsActive:     utils.ToPtr(true),
	}
	if err := f.adminRepo.Save(ctx, admin); err != nil {
		return nil, NewBusinessError("ADMIN_SETUP_FAILED", "Failed to create superadmin", err)
	}

	return f.issueAuthResponse(admin)
}

// Login authenticates an admin by email and password. Unknown accounts, wrong
// passwords and deactivated accounts are indistinguishable to the caller.
func (f *AdminAuthFlowImpl) Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminAuthResponse, error) {
	admin, err := f.adminRepo.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Failed to look up admin", err)
	}
	if admin == nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid email or password", ErrAdminNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid email or password", ErrIncorrectPassword)
	}

	if !utils.IsTrue(admin.IsActive) {
		return nil, NewBusinessError("ACCOUNT_DEACTIVATED", "Account has been deactivated", ErrAdminInactive)
	}

	if err := f.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Failed to record login", err)
	}

	return f.issueAuthResponse(admin)
}

// GetProfile returns the acting admin's own account
func (f *AdminAuthFlowImpl) GetProfile(ctx context.Context, adminID uint) (*dto.AdminDTO, error) {
	admin, err := f.adminRepo.ByID(ctx, adminID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_FETCH_FAILED", "Failed to fetch profile", err)
	}
	if admin == nil {
		return nil, NewBusinessError("ADMIN_NOT_FOUND", "Admin not found", ErrAdminNotFound)
	}

	result := ToAdminDTO(*admin)
	return &result, nil
}

// ChangePassword rotates the acting admin's password after re-verifying the
// current one
func (f *AdminAuthFlowImpl) ChangePassword(ctx context.Context, adminID uint, req *dto.AdminChangePasswordRequest, metadata *ClientMetadata) error {
	admin, err := f.adminRepo.ByID(ctx, adminID)
	if err != nil {
		return NewBusinessError("PASSWORD_CHANGE_FAILED", "Failed to fetch admin", err)
	}
	if admin == nil {
		return NewBusinessError("ADMIN_NOT_FOUND", "Admin not found", ErrAdminNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return NewBusinessError("INCORRECT_PASSWORD", "Current password is incorrect", ErrIncorrectPassword)
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), f.bcryptCost)
	if err != nil {
		return NewBusinessError("PASSWORD_CHANGE_FAILED", "Failed to hash password", err)
	}

	if err := f.adminRepo.UpdatePassword(ctx, admin.ID, string(newHash)); err != nil {
		return NewBusinessError("PASSWORD_CHANGE_FAILED", "Failed to update password", err)
	}
	return nil
}

func (f *AdminAuthFlowImpl) issueAuthResponse(admin *models.Admin) (*dto.AdminAuthResponse, error) {
	token, _, err := f.tokenService.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate access token", err)
	}

	return &dto.AdminAuthResponse{
		ID:       admin.ID,
		UUID:     admin.UUID.String(),
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
		Token:    token,
	}, nil
}

package businessflow

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	"github.com/krishisetu/kisan-yojana/utils"
)

// AdminManagementFlow exposes the superadmin-only account management use cases
type AdminManagementFlow interface {
	Register(ctx context.Context, req *dto.AdminRegisterRequest, metadata *ClientMetadata) (*dto.AdminDTO, error)
	ListAdmins(ctx context.Context) (*dto.AdminListResponse, error)
	ToggleAdmin(ctx context.Context, actingAdminID uint, targetUUID string, metadata *ClientMetadata) (*dto.AdminDTO, string, error)
	DeleteAdmin(ctx context.Context, actingAdminID uint, targetUUID string, metadata *ClientMetadata) error
}

// AdminManagementFlowImpl implements AdminManagementFlow
type AdminManagementFlowImpl struct {
	adminRepo  repository.AdminRepository
	bcryptCost int
}

func NewAdminManagementFlow(adminRepo repository.AdminRepository, bcryptCost int) AdminManagementFlow {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AdminManagementFlowImpl{
		adminRepo:  adminRepo,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new admin account. The role defaults to the regular
// admin role when omitted.
func (f *AdminManagementFlowImpl) Register(ctx context.Context, req *dto.AdminRegisterRequest, metadata *ClientMetadata) (*dto.AdminDTO, error) {
	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !models.IsValidRole(role) {
		return nil, NewBusinessError("INVALID_ROLE", "Unknown admin role", ErrInvalidRole)
	}

	byUsername, err := f.adminRepo.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, NewBusinessError("ADMIN_REGISTER_FAILED", "Failed to check existing admins", err)
	}
	byEmail, err := f.adminRepo.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewBusinessError("ADMIN_REGISTER_FAILED", "Failed to check existing admins", err)
	}
	if byUsername != nil || byEmail != nil {
		return nil, NewBusinessError("ADMIN_ALREADY_EXISTS", "Admin with this email or username already exists", ErrAdminAlreadyExists)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), f.bcryptCost)
	if err != nil {
		return nil, NewBusinessError("ADMIN_REGISTER_FAILED", "Failed to hash password", err)
	}

	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         role,
		IsActive:     utils.ToPtr(true),
	}
	if err := f.adminRepo.Save(ctx, admin); err != nil {
		return nil, NewBusinessError("ADMIN_REGISTER_FAILED", "Failed to create admin", err)
	}

	result := ToAdminDTO(*admin)
	return &result, nil
}

// ListAdmins returns every admin account without credentials
func (f *AdminManagementFlowImpl) ListAdmins(ctx context.Context) (*dto.AdminListResponse, error) {
	admins, err := f.adminRepo.ByFilter(ctx, models.AdminFilter{}, "created_at DESC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LIST_FAILED", "Failed to list admins", err)
	}

	items := make([]dto.AdminDTO, 0, len(admins))
	for _, a := range admins {
		items = append(items, ToAdminDTO(*a))
	}

	return &dto.AdminListResponse{
		Count:  len(items),
		Admins: items,
	}, nil
}

// ToggleAdmin flips another admin's active flag. Admins cannot toggle their
// own account.
func (f *AdminManagementFlowImpl) ToggleAdmin(ctx context.Context, actingAdminID uint, targetUUID string, metadata *ClientMetadata) (*dto.AdminDTO, string, error) {
	target, err := f.findAdmin(ctx, targetUUID)
	if err != nil {
		return nil, "", err
	}
	if target.ID == actingAdminID {
		return nil, "", NewBusinessError("SELF_TARGET_NOT_ALLOWED", "You cannot deactivate your own account", ErrSelfTargetNotAllowed)
	}

	next := !utils.IsTrue(target.IsActive)
	if err := f.adminRepo.SetActive(ctx, target.ID, next); err != nil {
		return nil, "", NewBusinessError("ADMIN_TOGGLE_FAILED", "Failed to toggle admin", err)
	}

	saved, err := f.adminRepo.ByID(ctx, target.ID)
	if err != nil || saved == nil {
		return nil, "", NewBusinessError("ADMIN_FETCH_FAILED", "Failed to fetch admin", err)
	}

	message := "Admin deactivated successfully"
	if next {
		message = "Admin activated successfully"
	}

	result := ToAdminDTO(*saved)
	return &result, message, nil
}

// DeleteAdmin permanently removes another admin's account. Admins cannot
// delete their own account.
func (f *AdminManagementFlowImpl) DeleteAdmin(ctx context.Context, actingAdminID uint, targetUUID string, metadata *ClientMetadata) error {
	target, err := f.findAdmin(ctx, targetUUID)
	if err != nil {
		return err
	}
	if target.ID == actingAdminID {
		return NewBusinessError("SELF_TARGET_NOT_ALLOWED", "You cannot delete your own account", ErrSelfTargetNotAllowed)
	}

	if err := f.adminRepo.Delete(ctx, target.ID); err != nil {
		return NewBusinessError("ADMIN_DELETE_FAILED", "Failed to delete admin", err)
	}
	return nil
}

func (f *AdminManagementFlowImpl) findAdmin(ctx context.Context, adminUUID string) (*models.Admin, error) {
	if _, err := utils.ParseUUID(adminUUID); err != nil {
		return nil, NewBusinessError("ADMIN_NOT_FOUND", "Admin not found", ErrAdminNotFound)
	}

	admin, err := f.adminRepo.ByUUID(ctx, adminUUID)
	if err != nil {
		return nil, NewBusinessError("ADMIN_FETCH_FAILED", "Failed to fetch admin", err)
	}
	if admin == nil {
		return nil, NewBusinessError("ADMIN_NOT_FOUND", "Admin not found", ErrAdminNotFound)
	}
	return admin, nil
}

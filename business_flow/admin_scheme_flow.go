package businessflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	"github.com/krishisetu/kisan-yojana/utils"
)

const (
	statusActive   = "active"
	statusInactive = "inactive"
)

// AdminSchemeFlow exposes the back-office scheme management use cases
type AdminSchemeFlow interface {
	ListSchemes(ctx context.Context, req *dto.AdminListSchemesRequest) (*dto.AdminSchemeListResponse, error)
	CreateScheme(ctx context.Context, req *dto.CreateSchemeRequest, metadata *ClientMetadata) (*dto.SchemeDTO, error)
	UpdateScheme(ctx context.Context, schemeUUID string, req *dto.UpdateSchemeRequest, metadata *ClientMetadata) (*dto.SchemeDTO, error)
	DeleteScheme(ctx context.Context, schemeUUID string, metadata *ClientMetadata) error
	ToggleScheme(ctx context.Context, schemeUUID string, metadata *ClientMetadata) (*dto.SchemeDTO, string, error)
}

// AdminSchemeFlowImpl implements AdminSchemeFlow
type AdminSchemeFlowImpl struct {
	schemeRepo repository.SchemeRepository
}

func NewAdminSchemeFlow(schemeRepo repository.SchemeRepository) AdminSchemeFlow {
	return &AdminSchemeFlowImpl{
		schemeRepo: schemeRepo,
	}
}

// ListSchemes returns a page of schemes for the back office. Unlike the public
// listing it sees inactive schemes, returns full records, and its search is a
// substring match over name and category.
func (f *AdminSchemeFlowImpl) ListSchemes(ctx context.Context, req *dto.AdminListSchemesRequest) (*dto.AdminSchemeListResponse, error) {
	if req == nil {
		req = &dto.AdminListSchemesRequest{}
	}

	page, limit := normalizePageLimit(req.Page, req.Limit, utils.DefaultAdminPageSize)

	filter := models.SchemeFilter{}
	if req.Search != "" {
		filter.NameOrCategoryLike = &req.Search
	}
	if req.Category != "" && req.Category != filterAll {
		filter.Category = &req.Category
	}
	switch req.Status {
	case statusActive:
		filter.IsActive = utils.ToPtr(true)
	case statusInactive:
		filter.IsActive = utils.ToPtr(false)
	}

	total, err := f.schemeRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("SCHEME_LIST_FAILED", "Failed to count schemes", err)
	}

	schemes, err := f.schemeRepo.ByFilter(ctx, filter, "created_at DESC", limit, (page-1)*limit)
	if err != nil {
		return nil, NewBusinessError("SCHEME_LIST_FAILED", "Failed to list schemes", err)
	}

	items := make([]dto.SchemeDTO, 0, len(schemes))
	for _, s := range schemes {
		items = append(items, ToSchemeDTO(*s))
	}

	return &dto.AdminSchemeListResponse{
		Schemes:    items,
		Pagination: dto.NewPaginationDTO(total, page, limit),
	}, nil
}

// CreateScheme validates and persists a new scheme. New schemes start active
// with a zero view count; state defaults to the nationwide value.
func (f *AdminSchemeFlowImpl) CreateScheme(ctx context.Context, req *dto.CreateSchemeRequest, metadata *ClientMetadata) (*dto.SchemeDTO, error) {
	scheme, err := schemeFromRequest(req)
	if err != nil {
		return nil, err
	}

	scheme.UUID = uuid.New()
	scheme.IsActive = utils.ToPtr(true)
	scheme.ViewCount = 0

	if err := f.schemeRepo.Save(ctx, scheme); err != nil {
		return nil, NewBusinessError("SCHEME_CREATE_FAILED", "Failed to create scheme", err)
	}

	result := ToSchemeDTO(*scheme)
	return &result, nil
}

// UpdateScheme replaces the editable fields of an existing scheme. The update
// runs the same validation as creation.
func (f *AdminSchemeFlowImpl) UpdateScheme(ctx context.Context, schemeUUID string, req *dto.UpdateSchemeRequest, metadata *ClientMetadata) (*dto.SchemeDTO, error) {
	existing, err := f.findScheme(ctx, schemeUUID)
	if err != nil {
		return nil, err
	}

	updated, err := schemeFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.UUID = existing.UUID

	if err := f.schemeRepo.Update(ctx, updated); err != nil {
		return nil, NewBusinessError("SCHEME_UPDATE_FAILED", "Failed to update scheme", err)
	}

	saved, err := f.schemeRepo.ByID(ctx, existing.ID)
	if err != nil || saved == nil {
		return nil, NewBusinessError("SCHEME_FETCH_FAILED", "Failed to fetch scheme", err)
	}

	result := ToSchemeDTO(*saved)
	return &result, nil
}

// DeleteScheme permanently removes a scheme
func (f *AdminSchemeFlowImpl) DeleteScheme(ctx context.Context, schemeUUID string, metadata *ClientMetadata) error {
	existing, err := f.findScheme(ctx, schemeUUID)
	if err != nil {
		return err
	}

	if err := f.schemeRepo.Delete(ctx, existing.ID); err != nil {
		return NewBusinessError("SCHEME_DELETE_FAILED", "Failed to delete scheme", err)
	}
	return nil
}

// ToggleScheme flips a scheme's visibility and reports which way it went
func (f *AdminSchemeFlowImpl) ToggleScheme(ctx context.Context, schemeUUID string, metadata *ClientMetadata) (*dto.SchemeDTO, string, error) {
	existing, err := f.findScheme(ctx, schemeUUID)
	if err != nil {
		return nil, "", err
	}

	next := !utils.IsTrue(existing.IsActive)
	if err := f.schemeRepo.SetActive(ctx, existing.ID, next); err != nil {
		return nil, "", NewBusinessError("SCHEME_TOGGLE_FAILED", "Failed to toggle scheme", err)
	}

	saved, err := f.schemeRepo.ByID(ctx, existing.ID)
	if err != nil || saved == nil {
		return nil, "", NewBusinessError("SCHEME_FETCH_FAILED", "Failed to fetch scheme", err)
	}

	message := "Scheme deactivated successfully"
	if next {
		message = "Scheme activated successfully"
	}

	result := ToSchemeDTO(*saved)
	return &result, message, nil
}

func (f *AdminSchemeFlowImpl) findScheme(ctx context.Context, schemeUUID string) (*models.Scheme, error) {
	if _, err := utils.ParseUUID(schemeUUID); err != nil {
		return nil, NewBusinessError("SCHEME_NOT_FOUND", "Scheme not found", ErrSchemeNotFound)
	}

	scheme, err := f.schemeRepo.ByUUID(ctx, schemeUUID)
	if err != nil {
		return nil, NewBusinessError("SCHEME_FETCH_FAILED", "Failed to fetch scheme", err)
	}
	if scheme == nil {
		return nil, NewBusinessError("SCHEME_NOT_FOUND", "Scheme not found", ErrSchemeNotFound)
	}
	return scheme, nil
}

// schemeFromRequest maps a validated request onto a model, enforcing the
// category and state enumerations and parsing the optional launch date.
func schemeFromRequest(req *dto.CreateSchemeRequest) (*models.Scheme, error) {
	if !models.IsValidCategory(req.Category) {
		return nil, NewBusinessError("INVALID_CATEGORY", "Unknown scheme category", ErrInvalidCategory)
	}

	state := req.State
	if state == "" {
		state = models.StateAllIndia
	}
	if !models.IsValidState(state) {
		return nil, NewBusinessError("INVALID_STATE", "Unknown scheme state", ErrInvalidState)
	}

	var launchDate *time.Time
	if req.LaunchDate != nil && *req.LaunchDate != "" {
		parsed, err := parseDate(*req.LaunchDate)
		if err != nil {
			return nil, NewBusinessError("INVALID_LAUNCH_DATE", "Launch date must be an RFC 3339 timestamp or YYYY-MM-DD date", ErrInvalidDate)
		}
		launchDate = &parsed
	}

	return &models.Scheme{
		Name:               req.Name,
		ShortDescription:   req.ShortDescription,
		Description:        req.Description,
		OfficialLink:       req.OfficialLink,
		Category:           req.Category,
		Ministry:           req.Ministry,
		Eligibility:        req.Eligibility,
		Benefits:           req.Benefits,
		ApplicationProcess: req.ApplicationProcess,
		Documents:          req.Documents,
		LaunchDate:         launchDate,
		ImageURL:           req.ImageURL,
		State:              state,
	}, nil
}

// parseDate accepts full RFC 3339 timestamps and bare calendar dates
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Package businessflow contains the public catalog use cases for schemes
package businessflow

import (
	"context"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	"github.com/krishisetu/kisan-yojana/utils"
)

// statsTopN bounds the mostViewed/recentlyAdded lists in the stats payload
const statsTopN = 5

// SchemeFlow exposes the public catalog use cases
type SchemeFlow interface {
	ListSchemes(ctx context.Context, req *dto.ListSchemesRequest) (*dto.SchemeListResponse, error)
	GetSchemeByID(ctx context.Context, schemeUUID string) (*dto.SchemeDTO, error)
	GetCategories(ctx context.Context) ([]dto.CategoryCountDTO, error)
	GetStats(ctx context.Context) (*dto.SchemeStatsResponse, error)
}

// SchemeFlowImpl implements SchemeFlow
type SchemeFlowImpl struct {
	schemeRepo repository.SchemeRepository
}

func NewSchemeFlow(schemeRepo repository.SchemeRepository) SchemeFlow {
	return &SchemeFlowImpl{
		schemeRepo: schemeRepo,
	}
}

// ListSchemes returns a page of active schemes with filters, search and
// sorting applied, plus the pagination envelope.
func (f *SchemeFlowImpl) ListSchemes(ctx context.Context, req *dto.ListSchemesRequest) (*dto.SchemeListResponse, error) {
	if req == nil {
		req = &dto.ListSchemesRequest{}
	}

	page, limit := normalizePageLimit(req.Page, req.Limit, utils.DefaultPublicPageSize)

	// Public listing only ever sees active schemes
	filter := models.SchemeFilter{IsActive: utils.ToPtr(true)}
	if req.Search != "" {
		filter.Search = &req.Search
	}
	if req.Category != "" && req.Category != filterAll {
		filter.Category = &req.Category
	}
	if req.State != "" && req.State != filterAll {
		filter.State = &req.State
	}
	if req.Ministry != "" {
		filter.MinistryLike = &req.Ministry
	}

	total, err := f.schemeRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("SCHEME_LIST_FAILED", "Failed to count schemes", err)
	}

	// A search without an explicit sort is ordered by text-match relevance;
	// everything else sorts by the requested column, createdAt DESC by default.
	orderBy := ""
	if req.Search == "" || req.SortBy != "" {
		orderBy = buildOrderBy(req.SortBy, req.SortOrder)
	}

	schemes, err := f.schemeRepo.ByFilter(ctx, filter, orderBy, limit, (page-1)*limit)
	if err != nil {
		return nil, NewBusinessError("SCHEME_LIST_FAILED", "Failed to list schemes", err)
	}

	items := make([]dto.SchemeListItemDTO, 0, len(schemes))
	for _, s := range schemes {
		items = append(items, ToSchemeListItemDTO(*s))
	}

	return &dto.SchemeListResponse{
		Schemes:    items,
		Pagination: dto.NewPaginationDTO(total, page, limit),
	}, nil
}

// GetSchemeByID fetches a single scheme and increments its view counter as a
// side effect of the read. The increment is a single atomic update.
func (f *SchemeFlowImpl) GetSchemeByID(ctx context.Context, schemeUUID string) (*dto.SchemeDTO, error) {
	if _, err := utils.ParseUUID(schemeUUID); err != nil {
		// Malformed identifiers cannot match anything
		return nil, NewBusinessError("SCHEME_NOT_FOUND", "Scheme not found", ErrSchemeNotFound)
	}

	scheme, err := f.schemeRepo.ByUUID(ctx, schemeUUID)
	if err != nil {
		return nil, NewBusinessError("SCHEME_FETCH_FAILED", "Failed to fetch scheme", err)
	}
	if scheme == nil {
		return nil, NewBusinessError("SCHEME_NOT_FOUND", "Scheme not found", ErrSchemeNotFound)
	}

	updated, err := f.schemeRepo.IncrementViewCount(ctx, scheme.ID)
	if err != nil {
		return nil, NewBusinessError("SCHEME_VIEW_COUNT_FAILED", "Failed to record scheme view", err)
	}
	if updated == nil {
		return nil, NewBusinessError("SCHEME_NOT_FOUND", "Scheme not found", ErrSchemeNotFound)
	}

	result := ToSchemeDTO(*updated)
	return &result, nil
}

// GetCategories returns active scheme counts per category, most populous first
func (f *SchemeFlowImpl) GetCategories(ctx context.Context) ([]dto.CategoryCountDTO, error) {
	rows, err := f.schemeRepo.CountByCategory(ctx, true)
	if err != nil {
		return nil, NewBusinessError("SCHEME_CATEGORIES_FAILED", "Failed to fetch categories", err)
	}

	categories := make([]dto.CategoryCountDTO, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, dto.CategoryCountDTO{Name: row.Name, Count: row.Count})
	}
	return categories, nil
}

// GetStats aggregates the public statistics payload over active schemes
func (f *SchemeFlowImpl) GetStats(ctx context.Context) (*dto.SchemeStatsResponse, error) {
	total, err := f.schemeRepo.Count(ctx, models.SchemeFilter{IsActive: utils.ToPtr(true)})
	if err != nil {
		return nil, NewBusinessError("SCHEME_STATS_FAILED", "Failed to fetch scheme statistics", err)
	}

	categoryRows, err := f.schemeRepo.CountByCategory(ctx, true)
	if err != nil {
		return nil, NewBusinessError("SCHEME_STATS_FAILED", "Failed to fetch scheme statistics", err)
	}
	stateRows, err := f.schemeRepo.CountByState(ctx, true)
	if err != nil {
		return nil, NewBusinessError("SCHEME_STATS_FAILED", "Failed to fetch scheme statistics", err)
	}

	mostViewed, err := f.schemeRepo.MostViewed(ctx, statsTopN)
	if err != nil {
		return nil, NewBusinessError("SCHEME_STATS_FAILED", "Failed to fetch scheme statistics", err)
	}
	recentlyAdded, err := f.schemeRepo.RecentlyAdded(ctx, statsTopN)
	if err != nil {
		return nil, NewBusinessError("SCHEME_STATS_FAILED", "Failed to fetch scheme statistics", err)
	}

	resp := &dto.SchemeStatsResponse{
		TotalSchemes:  total,
		CategoryStats: make([]dto.CategoryCountDTO, 0, len(categoryRows)),
		StateStats:    make([]dto.CategoryCountDTO, 0, len(stateRows)),
		MostViewed:    make([]dto.SchemeStatSummaryDTO, 0, len(mostViewed)),
		RecentlyAdded: make([]dto.SchemeStatSummaryDTO, 0, len(recentlyAdded)),
	}
	for _, row := range categoryRows {
		resp.CategoryStats = append(resp.CategoryStats, dto.CategoryCountDTO{Name: row.Name, Count: row.Count})
	}
	for _, row := range stateRows {
		resp.StateStats = append(resp.StateStats, dto.CategoryCountDTO{Name: row.Name, Count: row.Count})
	}
	for _, s := range mostViewed {
		resp.MostViewed = append(resp.MostViewed, dto.SchemeStatSummaryDTO{
			ID:        s.UUID.String(),
			Name:      s.Name,
			Category:  s.Category,
			ViewCount: s.ViewCount,
		})
	}
	for _, s := range recentlyAdded {
		resp.RecentlyAdded = append(resp.RecentlyAdded, dto.SchemeStatSummaryDTO{
			ID:        s.UUID.String(),
			Name:      s.Name,
			Category:  s.Category,
			CreatedAt: formatTime(s.CreatedAt),
		})
	}

	return resp, nil
}

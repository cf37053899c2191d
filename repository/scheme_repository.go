// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchemeRepositoryImpl implements SchemeRepository interface
type SchemeRepositoryImpl struct {
	*BaseRepository[models.Scheme, models.SchemeFilter]
}

// NewSchemeRepository creates a new scheme repository
func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &SchemeRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Scheme, models.SchemeFilter](db),
	}
}

// ByUUID retrieves a scheme by UUID
func (r *SchemeRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Scheme, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, err
	}

	filter := models.SchemeFilter{UUID: &parsedUUID}
	schemes, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, err
	}

	if len(schemes) == 0 {
		return nil, nil
	}

	return schemes[0], nil
}

// applyFilter applies filter criteria to a GORM query. Search attaches the
// ranked full-text predicate; NameOrCategoryLike is the admin listing's
// unranked substring match.
func (r *SchemeRepositoryImpl) applyFilter(query *gorm.DB, filter models.SchemeFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}
	if filter.MinistryLike != nil {
		query = query.Where("ministry ILIKE ?", "%"+*filter.MinistryLike+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != nil {
		query = query.Where("search_vector @@ plainto_tsquery('english', ?)", *filter.Search)
	}
	if filter.NameOrCategoryLike != nil {
		pattern := "%" + *filter.NameOrCategoryLike + "%"
		query = query.Where("name ILIKE ? OR category ILIKE ?", pattern, pattern)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves schemes based on filter criteria. When a full-text search
// term is present and no explicit ordering is requested, results are ordered by
// text-match relevance.
func (r *SchemeRepositoryImpl) ByFilter(ctx context.Context, filter models.SchemeFilter, orderBy string, limit, offset int) ([]*models.Scheme, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Scheme{})

	query = r.applyFilter(query, filter)

	if filter.Search != nil && orderBy == "" {
		query = query.
			Select("schemes.*, ts_rank(search_vector, plainto_tsquery('english', ?)) AS search_rank", *filter.Search).
			Order("search_rank DESC")
	} else {
		if orderBy == "" {
			orderBy = "created_at DESC"
		}
		query = query.Order(orderBy)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var schemes []*models.Scheme
	err := query.Find(&schemes).Error
	if err != nil {
		return nil, err
	}

	return schemes, nil
}

// Count returns the number of schemes matching the filter
func (r *SchemeRepositoryImpl) Count(ctx context.Context, filter models.SchemeFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Scheme{})

	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any scheme matching the filter exists
func (r *SchemeRepositoryImpl) Exists(ctx context.Context, filter models.SchemeFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists all mutable fields of an existing scheme
func (r *SchemeRepositoryImpl) Update(ctx context.Context, scheme *models.Scheme) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	scheme.UpdatedAt = utils.UTCNow()
	err = db.Model(scheme).
		Select("name", "short_description", "description", "official_link", "category",
			"ministry", "eligibility", "benefits", "application_process", "documents",
			"launch_date", "image_url", "state", "updated_at").
		Updates(scheme).Error
	if err != nil {
		return fmt.Errorf("failed to update scheme: %w", err)
	}

	return nil
}

// Delete permanently removes a scheme
func (r *SchemeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Delete(&models.Scheme{}, id).Error
	if err != nil {
		return fmt.Errorf("failed to delete scheme: %w", err)
	}

	return nil
}

// IncrementViewCount bumps the view counter in a single atomic update and
// returns the updated row. Concurrent reads of the same scheme never lose an
// increment.
func (r *SchemeRepositoryImpl) IncrementViewCount(ctx context.Context, id uint) (*models.Scheme, error) {
	db := r.getDB(ctx)

	var scheme models.Scheme
	res := db.Model(&scheme).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to increment view count: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &scheme, nil
}

// SetActive sets the is_active flag of a scheme
func (r *SchemeRepositoryImpl) SetActive(ctx context.Context, id uint, active bool) error {
	db := r.getDB(ctx)

	return db.Model(&models.Scheme{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": utils.UTCNow()}).Error
}

// CountByCategory aggregates scheme counts per category, most populous first
func (r *SchemeRepositoryImpl) CountByCategory(ctx context.Context, activeOnly bool) ([]CategoryCount, error) {
	return r.countByColumn(ctx, "category", activeOnly)
}

// CountByState aggregates scheme counts per state, most populous first
func (r *SchemeRepositoryImpl) CountByState(ctx context.Context, activeOnly bool) ([]CategoryCount, error) {
	return r.countByColumn(ctx, "state", activeOnly)
}

func (r *SchemeRepositoryImpl) countByColumn(ctx context.Context, column string, activeOnly bool) ([]CategoryCount, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.Scheme{}).
		Select(column + " AS name, COUNT(*) AS count").
		Group(column).
		Order("count DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []CategoryCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MostViewed returns the top active schemes by view count
func (r *SchemeRepositoryImpl) MostViewed(ctx context.Context, limit int) ([]*models.Scheme, error) {
	return r.ByFilter(ctx, models.SchemeFilter{IsActive: utils.ToPtr(true)}, "view_count DESC", limit, 0)
}

// RecentlyAdded returns the most recently created active schemes
func (r *SchemeRepositoryImpl) RecentlyAdded(ctx context.Context, limit int) ([]*models.Scheme, error) {
	return r.ByFilter(ctx, models.SchemeFilter{IsActive: utils.ToPtr(true)}, "created_at DESC", limit, 0)
}

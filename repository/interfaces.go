// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/krishisetu/kisan-yojana/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// CategoryCount is a per-category (or per-state) aggregation row
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// SchemeRepository defines operations for schemes
type SchemeRepository interface {
	Repository[models.Scheme, models.SchemeFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Scheme, error)
	Update(ctx context.Context, scheme *models.Scheme) error
	Delete(ctx context.Context, id uint) error
	IncrementViewCount(ctx context.Context, id uint) (*models.Scheme, error)
	SetActive(ctx context.Context, id uint, active bool) error
	CountByCategory(ctx context.Context, activeOnly bool) ([]CategoryCount, error)
	CountByState(ctx context.Context, activeOnly bool) ([]CategoryCount, error)
	MostViewed(ctx context.Context, limit int) ([]*models.Scheme, error)
	RecentlyAdded(ctx context.Context, limit int) ([]*models.Scheme, error)
}

// AdminRepository defines operations for admins
type AdminRepository interface {
	Repository[models.Admin, models.AdminFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Admin, error)
	ByUsername(ctx context.Context, username string) (*models.Admin, error)
	ByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdatePassword(ctx context.Context, adminID uint, passwordHash string) error
	UpdateLastLogin(ctx context.Context, adminID uint) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

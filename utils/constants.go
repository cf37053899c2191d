package utils

import (
	"time"
)

// Token time constants
const (
	// AccessTokenTTL is the default time-to-live for admin access tokens (7 days)
	AccessTokenTTL = 7 * 24 * time.Hour
)

// Pagination constants
const (
	// DefaultPublicPageSize is the page size for public scheme listings
	DefaultPublicPageSize = 10

	// DefaultAdminPageSize is the page size for admin scheme listings
	DefaultAdminPageSize = 20

	// MaxPageSize caps the limit query parameter on every listing endpoint
	MaxPageSize = 100
)

// CORS constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Package testing provides test utilities and database setup for the scheme catalog service
package testing

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/utils"
)

// TestPassword is the plaintext password used for all fixture admins
const TestPassword = "TestPass123!"

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestAdmin creates an admin account with the given role
func (tf *TestFixtures) CreateTestAdmin(role string) (*models.Admin, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     fmt.Sprintf("admin_%s", randomDigits),
		Email:        fmt.Sprintf("admin.%s@example.com", randomDigits),
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     utils.ToPtr(true),
	}

	if err := tf.DB.DB.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create test admin: %w", err)
	}

	return admin, nil
}

// CreateTestScheme creates a scheme with sensible defaults; opts may mutate it
// before insertion
func (tf *TestFixtures) CreateTestScheme(opts ...func(*models.Scheme)) (*models.Scheme, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	scheme := &models.Scheme{
		UUID:             uuid.New(),
		Name:             fmt.Sprintf("Test Scheme %s", randomDigits),
		ShortDescription: "Income support for small and marginal farmers",
		Description:      "Direct benefit transfer of 6000 INR per year to eligible farmer families in three equal installments.",
		OfficialLink:     "https://example.gov.in/scheme",
		Category:         models.CategorySubsidy,
		Ministry:         "Ministry of Agriculture & Farmers Welfare",
		Eligibility:      "All landholding farmer families",
		Benefits:         "6000 INR per year",
		State:            models.StateAllIndia,
		IsActive:         utils.ToPtr(true),
	}

	for _, opt := range opts {
		opt(scheme)
	}

	if err := tf.DB.DB.Create(scheme).Error; err != nil {
		return nil, fmt.Errorf("failed to create test scheme: %w", err)
	}

	return scheme, nil
}

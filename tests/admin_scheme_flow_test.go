// Package tests contains integration tests for back-office scheme management
package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisetu/kisan-yojana/app/dto"
	businessflow "github.com/krishisetu/kisan-yojana/business_flow"
	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	testingutil "github.com/krishisetu/kisan-yojana/testing"
	"github.com/krishisetu/kisan-yojana/utils"
)

func validCreateRequest() *dto.CreateSchemeRequest {
	return &dto.CreateSchemeRequest{
		Name:             "Kisan Credit Card",
		ShortDescription: "Short term credit for crop cultivation",
		Description:      "Revolving credit facility covering cultivation costs, post-harvest expenses and asset maintenance.",
		OfficialLink:     "https://example.gov.in/kcc",
		Category:         models.CategoryLoan,
		Ministry:         "Ministry of Agriculture & Farmers Welfare",
		Eligibility:      "All farmers, tenant farmers and sharecroppers",
		Benefits:         "Credit up to 300000 INR at subsidized interest",
	}
}

func TestAdminSchemeFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		schemeRepo := repository.NewSchemeRepository(testDB.DB)
		flow := businessflow.NewAdminSchemeFlow(schemeRepo)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := context.Background()

		t.Run("CreateScheme", func(t *testing.T) {
			launchDate := "2019-02-24"
			req := validCreateRequest()
			req.LaunchDate = &launchDate
			req.Documents = []string{"Aadhaar card", "Land records"}

			scheme, err := flow.CreateScheme(ctx, req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, scheme)

			assert.Equal(t, "Kisan Credit Card", scheme.Name)
			assert.Equal(t, models.StateAllIndia, scheme.State)
			assert.True(t, utils.IsTrue(scheme.IsActive))
			assert.Equal(t, int64(0), scheme.ViewCount)
			assert.Len(t, scheme.Documents, 2)
			require.NotNil(t, scheme.LaunchDate)
			assert.Contains(t, *scheme.LaunchDate, "2019-02-24")
		})

		t.Run("CreateSchemeInvalidCategory", func(t *testing.T) {
			req := validCreateRequest()
			req.Category = "Fertilizer"

			scheme, err := flow.CreateScheme(ctx, req, testMetadata())
			assert.Nil(t, scheme)
			assert.True(t, businessflow.IsInvalidCategory(err))
		})

		t.Run("CreateSchemeInvalidState", func(t *testing.T) {
			req := validCreateRequest()
			req.State = "Atlantis"

			scheme, err := flow.CreateScheme(ctx, req, testMetadata())
			assert.Nil(t, scheme)
			assert.True(t, businessflow.IsInvalidState(err))
		})

		t.Run("CreateSchemeInvalidLaunchDate", func(t *testing.T) {
			badDate := "24-02-2019"
			req := validCreateRequest()
			req.LaunchDate = &badDate

			scheme, err := flow.CreateScheme(ctx, req, testMetadata())
			assert.Nil(t, scheme)
			assert.True(t, businessflow.IsInvalidDate(err))
		})

		t.Run("UpdateScheme", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)
			_, err = schemeRepo.IncrementViewCount(ctx, created.ID)
			require.NoError(t, err)

			req := validCreateRequest()
			req.Name = "Renamed Scheme"
			req.State = "Punjab"

			scheme, err := flow.UpdateScheme(ctx, created.UUID.String(), req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, scheme)

			assert.Equal(t, "Renamed Scheme", scheme.Name)
			assert.Equal(t, "Punjab", scheme.State)
			assert.Equal(t, created.UUID.String(), scheme.ID)
			assert.Equal(t, int64(1), scheme.ViewCount, "update must not reset views")
		})

		t.Run("UpdateSchemeNotFound", func(t *testing.T) {
			scheme, err := flow.UpdateScheme(ctx, uuid.New().String(), validCreateRequest(), testMetadata())
			assert.Nil(t, scheme)
			assert.True(t, businessflow.IsSchemeNotFound(err))
		})

		t.Run("DeleteScheme", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			require.NoError(t, flow.DeleteScheme(ctx, created.UUID.String(), testMetadata()))

			gone, err := schemeRepo.ByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Nil(t, gone)
		})

		t.Run("DeleteSchemeNotFound", func(t *testing.T) {
			err := flow.DeleteScheme(ctx, uuid.New().String(), testMetadata())
			assert.True(t, businessflow.IsSchemeNotFound(err))
		})

		t.Run("ToggleScheme", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			scheme, message, err := flow.ToggleScheme(ctx, created.UUID.String(), testMetadata())
			require.NoError(t, err)
			assert.False(t, utils.IsTrue(scheme.IsActive))
			assert.Equal(t, "Scheme deactivated successfully", message)

			scheme, message, err = flow.ToggleScheme(ctx, created.UUID.String(), testMetadata())
			require.NoError(t, err)
			assert.True(t, utils.IsTrue(scheme.IsActive))
			assert.Equal(t, "Scheme activated successfully", message)
		})

		t.Run("ListIncludesInactive", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestScheme()
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.IsActive = utils.ToPtr(false)
			})
			require.NoError(t, err)

			result, err := flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{})
			require.NoError(t, err)
			assert.Len(t, result.Schemes, 2)
			assert.Equal(t, int64(2), result.Pagination.TotalSchemes)
		})

		t.Run("ListStatusFilter", func(t *testing.T) {
			result, err := flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{Status: "inactive"})
			require.NoError(t, err)
			require.Len(t, result.Schemes, 1)
			assert.False(t, utils.IsTrue(result.Schemes[0].IsActive))

			result, err = flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{Status: "active"})
			require.NoError(t, err)
			require.Len(t, result.Schemes, 1)
			assert.True(t, utils.IsTrue(result.Schemes[0].IsActive))
		})

		t.Run("ListSubstringSearch", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "National Beekeeping Mission"
				s.Category = models.CategoryOther
			})
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Tractor Support"
				s.Category = models.CategoryEquipment
			})
			require.NoError(t, err)

			result, err := flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{Search: "beekeeping"})
			require.NoError(t, err)
			require.Len(t, result.Schemes, 1)
			assert.Equal(t, "National Beekeeping Mission", result.Schemes[0].Name)

			result, err = flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{Search: "equip"})
			require.NoError(t, err)
			require.Len(t, result.Schemes, 1)
			assert.Equal(t, "Tractor Support", result.Schemes[0].Name)
		})

		t.Run("ListPagination", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			for i := 0; i < 25; i++ {
				_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
					s.Name = fmt.Sprintf("Bulk Scheme %02d", i)
				})
				require.NoError(t, err)
			}

			result, err := flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{})
			require.NoError(t, err)
			assert.Len(t, result.Schemes, utils.DefaultAdminPageSize)
			assert.Equal(t, 2, result.Pagination.TotalPages)

			result, err = flow.ListSchemes(ctx, &dto.AdminListSchemesRequest{Page: 2})
			require.NoError(t, err)
			assert.Len(t, result.Schemes, 5)
		})

		return nil
	})
	require.NoError(t, err)
}

// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisetu/kisan-yojana/models"
	"github.com/krishisetu/kisan-yojana/repository"
	testingutil "github.com/krishisetu/kisan-yojana/testing"
	"github.com/krishisetu/kisan-yojana/utils"
)

func TestSchemeRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewSchemeRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("Save", func(t *testing.T) {
			scheme, err := fixtures.CreateTestScheme()
			require.NoError(t, err)
			assert.NotZero(t, scheme.ID)
			assert.NotEqual(t, uuid.Nil, scheme.UUID)
		})

		t.Run("ByID", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			scheme, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, scheme)
			assert.Equal(t, created.ID, scheme.ID)
			assert.Equal(t, created.Name, scheme.Name)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			scheme, err := repo.ByID(ctx, 999999)
			assert.NoError(t, err)
			assert.Nil(t, scheme)
		})

		t.Run("ByUUID", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			scheme, err := repo.ByUUID(ctx, created.UUID.String())
			require.NoError(t, err)
			require.NotNil(t, scheme)
			assert.Equal(t, created.ID, scheme.ID)
		})

		t.Run("ByUUIDNotFound", func(t *testing.T) {
			scheme, err := repo.ByUUID(ctx, uuid.New().String())
			assert.NoError(t, err)
			assert.Nil(t, scheme)
		})

		t.Run("Update", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			created.Name = "Updated Scheme Name"
			created.Category = models.CategoryLoan
			require.NoError(t, repo.Update(ctx, created))

			scheme, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, scheme)
			assert.Equal(t, "Updated Scheme Name", scheme.Name)
			assert.Equal(t, models.CategoryLoan, scheme.Category)
		})

		t.Run("UpdateDoesNotTouchViewCount", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			_, err = repo.IncrementViewCount(ctx, created.ID)
			require.NoError(t, err)

			created.ViewCount = 0
			created.Name = "View Count Preserved"
			require.NoError(t, repo.Update(ctx, created))

			scheme, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, scheme)
			assert.Equal(t, int64(1), scheme.ViewCount)
		})

		t.Run("Delete", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)

			require.NoError(t, repo.Delete(ctx, created.ID))

			scheme, err := repo.ByID(ctx, created.ID)
			assert.NoError(t, err)
			assert.Nil(t, scheme)
		})

		t.Run("IncrementViewCount", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)
			assert.Equal(t, int64(0), created.ViewCount)

			scheme, err := repo.IncrementViewCount(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, scheme)
			assert.Equal(t, int64(1), scheme.ViewCount)

			scheme, err = repo.IncrementViewCount(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, scheme)
			assert.Equal(t, int64(2), scheme.ViewCount)
		})

		t.Run("SetActive", func(t *testing.T) {
			created, err := fixtures.CreateTestScheme()
			require.NoError(t, err)
			assert.True(t, utils.IsTrue(created.IsActive))

			require.NoError(t, repo.SetActive(ctx, created.ID, false))
			scheme, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			assert.False(t, utils.IsTrue(scheme.IsActive))

			require.NoError(t, repo.SetActive(ctx, created.ID, true))
			scheme, err = repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, utils.IsTrue(scheme.IsActive))
		})

		t.Run("ByFilterActiveOnly", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			active, err := fixtures.CreateTestScheme()
			require.NoError(t, err)
			inactive, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.IsActive = utils.ToPtr(false)
			})
			require.NoError(t, err)

			schemes, err := repo.ByFilter(ctx, models.SchemeFilter{IsActive: utils.ToPtr(true)}, "created_at DESC", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, active.ID, schemes[0].ID)

			schemes, err = repo.ByFilter(ctx, models.SchemeFilter{IsActive: utils.ToPtr(false)}, "created_at DESC", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, inactive.ID, schemes[0].ID)
		})

		t.Run("ByFilterCategoryAndState", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Category = models.CategoryIrrigation
				s.State = "Punjab"
			})
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Category = models.CategoryLoan
				s.State = "Kerala"
			})
			require.NoError(t, err)

			category := models.CategoryIrrigation
			schemes, err := repo.ByFilter(ctx, models.SchemeFilter{Category: &category}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, models.CategoryIrrigation, schemes[0].Category)

			state := "Kerala"
			schemes, err = repo.ByFilter(ctx, models.SchemeFilter{State: &state}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, "Kerala", schemes[0].State)
		})

		t.Run("ByFilterMinistryLike", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Ministry = "Ministry of Jal Shakti"
			})
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Ministry = "Ministry of Rural Development"
			})
			require.NoError(t, err)

			ministry := "jal shakti"
			schemes, err := repo.ByFilter(ctx, models.SchemeFilter{MinistryLike: &ministry}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, "Ministry of Jal Shakti", schemes[0].Ministry)
		})

		t.Run("ByFilterFullTextSearch", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Drip Irrigation Support"
				s.Description = "Capital subsidy for micro irrigation systems including drip and sprinkler units."
			})
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Dairy Entrepreneurship"
				s.Description = "Working capital loans for dairy farming and milk processing units."
			})
			require.NoError(t, err)

			search := "irrigation"
			schemes, err := repo.ByFilter(ctx, models.SchemeFilter{Search: &search}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, "Drip Irrigation Support", schemes[0].Name)

			search = "dairy milk"
			schemes, err = repo.ByFilter(ctx, models.SchemeFilter{Search: &search}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, "Dairy Entrepreneurship", schemes[0].Name)
		})

		t.Run("ByFilterNameOrCategoryLike", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Soil Health Card"
				s.Category = models.CategoryOther
			})
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Crop Cover"
				s.Category = models.CategoryInsurance
			})
			require.NoError(t, err)

			term := "soil"
			schemes, err := repo.ByFilter(ctx, models.SchemeFilter{NameOrCategoryLike: &term}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, "Soil Health Card", schemes[0].Name)

			term = "insur"
			schemes, err = repo.ByFilter(ctx, models.SchemeFilter{NameOrCategoryLike: &term}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, schemes, 1)
			assert.Equal(t, "Crop Cover", schemes[0].Name)
		})

		t.Run("ByFilterPagination", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			for i := 0; i < 5; i++ {
				_, err := fixtures.CreateTestScheme()
				require.NoError(t, err)
			}

			page1, err := repo.ByFilter(ctx, models.SchemeFilter{}, "id ASC", 2, 0)
			require.NoError(t, err)
			assert.Len(t, page1, 2)

			page3, err := repo.ByFilter(ctx, models.SchemeFilter{}, "id ASC", 2, 4)
			require.NoError(t, err)
			assert.Len(t, page3, 1)
			assert.NotEqual(t, page1[0].ID, page3[0].ID)
		})

		t.Run("CountByCategory", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			for i := 0; i < 2; i++ {
				_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
					s.Category = models.CategoryTraining
				})
				require.NoError(t, err)
			}
			_, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Category = models.CategoryTraining
				s.IsActive = utils.ToPtr(false)
			})
			require.NoError(t, err)
			_, err = fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Category = models.CategoryLoan
			})
			require.NoError(t, err)

			counts, err := repo.CountByCategory(ctx, true)
			require.NoError(t, err)

			byName := make(map[string]int64)
			for _, c := range counts {
				byName[c.Name] = c.Count
			}
			assert.Equal(t, int64(2), byName[models.CategoryTraining])
			assert.Equal(t, int64(1), byName[models.CategoryLoan])

			counts, err = repo.CountByCategory(ctx, false)
			require.NoError(t, err)
			byName = make(map[string]int64)
			for _, c := range counts {
				byName[c.Name] = c.Count
			}
			assert.Equal(t, int64(3), byName[models.CategoryTraining])
		})

		t.Run("MostViewedAndRecentlyAdded", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			popular, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Popular Scheme"
			})
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				_, err := repo.IncrementViewCount(ctx, popular.ID)
				require.NoError(t, err)
			}
			latest, err := fixtures.CreateTestScheme(func(s *models.Scheme) {
				s.Name = "Latest Scheme"
			})
			require.NoError(t, err)

			mostViewed, err := repo.MostViewed(ctx, 1)
			require.NoError(t, err)
			require.Len(t, mostViewed, 1)
			assert.Equal(t, popular.ID, mostViewed[0].ID)

			recent, err := repo.RecentlyAdded(ctx, 1)
			require.NoError(t, err)
			require.Len(t, recent, 1)
			assert.Equal(t, latest.ID, recent[0].ID)
		})

		t.Run("Count", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			for i := 0; i < 3; i++ {
				_, err := fixtures.CreateTestScheme()
				require.NoError(t, err)
			}

			count, err := repo.Count(ctx, models.SchemeFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(3), count)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAdminRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewAdminRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("Save", func(t *testing.T) {
			admin, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)
			assert.NotZero(t, admin.ID)
			assert.Equal(t, models.RoleAdmin, admin.Role)
		})

		t.Run("ByEmail", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			admin, err := repo.ByEmail(ctx, created.Email)
			require.NoError(t, err)
			require.NotNil(t, admin)
			assert.Equal(t, created.ID, admin.ID)
		})

		t.Run("ByEmailNotFound", func(t *testing.T) {
			admin, err := repo.ByEmail(ctx, "missing@example.com")
			assert.NoError(t, err)
			assert.Nil(t, admin)
		})

		t.Run("ByUsername", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			admin, err := repo.ByUsername(ctx, created.Username)
			require.NoError(t, err)
			require.NotNil(t, admin)
			assert.Equal(t, created.ID, admin.ID)
		})

		t.Run("ByUUID", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleSuperAdmin)
			require.NoError(t, err)

			admin, err := repo.ByUUID(ctx, created.UUID.String())
			require.NoError(t, err)
			require.NotNil(t, admin)
			assert.Equal(t, models.RoleSuperAdmin, admin.Role)
		})

		t.Run("UpdatePassword", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			require.NoError(t, repo.UpdatePassword(ctx, created.ID, "new-hash"))

			admin, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, admin)
			assert.Equal(t, "new-hash", admin.PasswordHash)
		})

		t.Run("UpdateLastLogin", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)
			assert.Nil(t, created.LastLoginAt)

			require.NoError(t, repo.UpdateLastLogin(ctx, created.ID))

			admin, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, admin)
			assert.NotNil(t, admin.LastLoginAt)
		})

		t.Run("SetActive", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			require.NoError(t, repo.SetActive(ctx, created.ID, false))
			admin, err := repo.ByID(ctx, created.ID)
			require.NoError(t, err)
			assert.False(t, utils.IsTrue(admin.IsActive))
		})

		t.Run("Delete", func(t *testing.T) {
			created, err := fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			require.NoError(t, repo.Delete(ctx, created.ID))

			admin, err := repo.ByID(ctx, created.ID)
			assert.NoError(t, err)
			assert.Nil(t, admin)
		})

		t.Run("Count", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			count, err := repo.Count(ctx, models.AdminFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(0), count)

			_, err = fixtures.CreateTestAdmin(models.RoleAdmin)
			require.NoError(t, err)

			count, err = repo.Count(ctx, models.AdminFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})

		return nil
	})
	require.NoError(t, err)
}

package permissions

import (
	"fmt"
	"testing"

	"revtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDb(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Company{},
		&models.Reviewer{},
		&models.Review{},
	))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.Account {
	account := &models.Account{
		Username: username,
		Email:    username + "@example.com",
		IsAdmin:  isAdmin,
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func seedReviews(t *testing.T, db *gorm.DB, submitter *models.Account, count int) {
	company := models.Company{Name: "ACME, Inc."}
	require.NoError(t, db.Create(&company).Error)
	reviewer := models.Reviewer{Email: fmt.Sprintf("author-for-%s@example.com", submitter.Username)}
	require.NoError(t, db.Create(&reviewer).Error)

	for i := 0; i < count; i++ {
		review := models.Review{
			Rating:      (i % 5) + 1,
			IPAddress:   "192.0.2.1",
			SubmitterID: submitter.ID,
			CompanyID:   company.ID,
			ReviewerID:  reviewer.ID,
		}
		require.NoError(t, db.Create(&review).Error)
	}
}

func TestScopeAccounts(t *testing.T) {
	db := openTestDb(t)

	admin := seedAccount(t, db, "admin", true)
	bob := seedAccount(t, db, "bob", false)
	seedAccount(t, db, "carol", false)

	var accounts []models.Account

	// Non-admins see exactly their own row, never zero, never more.
	require.NoError(t, ScopeAccounts(bob, db.Model(&models.Account{})).Find(&accounts).Error)
	require.Len(t, accounts, 1)
	assert.Equal(t, "bob", accounts[0].Username)

	// Administrators see every account, other admins included.
	require.NoError(t, ScopeAccounts(admin, db.Model(&models.Account{})).Find(&accounts).Error)
	assert.Len(t, accounts, 3)
}

func TestScopeReviews(t *testing.T) {
	db := openTestDb(t)

	admin := seedAccount(t, db, "admin", true)
	bob := seedAccount(t, db, "bob", false)
	carol := seedAccount(t, db, "carol", false)

	seedReviews(t, db, bob, 4)
	seedReviews(t, db, carol, 2)

	var reviews []models.Review

	require.NoError(t, ScopeReviews(bob, db.Model(&models.Review{})).Find(&reviews).Error)
	require.Len(t, reviews, 4)
	for _, r := range reviews {
		assert.Equal(t, bob.ID, r.SubmitterID)
	}

	require.NoError(t, ScopeReviews(carol, db.Model(&models.Review{})).Find(&reviews).Error)
	assert.Len(t, reviews, 2)

	require.NoError(t, ScopeReviews(admin, db.Model(&models.Review{})).Find(&reviews).Error)
	assert.Len(t, reviews, 6)
}

// Narrowing composes with pagination: the scoped count matches the union of
// the scoped pages, with no rows skipped or leaked across page boundaries.
func TestScopeReviewsComposesWithPagination(t *testing.T) {
	db := openTestDb(t)

	bob := seedAccount(t, db, "bob", false)
	carol := seedAccount(t, db, "carol", false)

	seedReviews(t, db, bob, 7)
	seedReviews(t, db, carol, 5)

	var total int64
	require.NoError(t, ScopeReviews(bob, db.Model(&models.Review{})).Count(&total).Error)
	assert.EqualValues(t, 7, total)

	const limit = 3
	seen := make(map[uint]bool)
	for page := 0; ; page++ {
		var reviews []models.Review
		require.NoError(t, ScopeReviews(bob, db.Model(&models.Review{})).
			Order("id").
			Offset(page*limit).
			Limit(limit).
			Find(&reviews).Error)
		if len(reviews) == 0 {
			break
		}
		for _, r := range reviews {
			assert.Equal(t, bob.ID, r.SubmitterID)
			assert.False(t, seen[r.ID], "review %d returned twice", r.ID)
			seen[r.ID] = true
		}
	}
	assert.Len(t, seen, int(total))
}

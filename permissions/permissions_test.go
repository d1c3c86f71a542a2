package permissions

import (
	"testing"

	"revtrack/models"

	"github.com/stretchr/testify/assert"
)

func account(id uint, admin bool) *models.Account {
	a := &models.Account{IsAdmin: admin}
	a.ID = id
	return a
}

func review(submitterID uint) *models.Review {
	return &models.Review{SubmitterID: submitterID}
}

func TestAccountPermissions(t *testing.T) {
	admin := account(1, true)
	owner := account(2, false)
	other := account(3, false)

	tests := []struct {
		name      string
		principal *models.Account
		target    *models.Account
		canRead   bool
	}{
		{"unauthenticated", nil, owner, false},
		{"admin reads anyone", admin, owner, true},
		{"owner reads self", owner, owner, true},
		{"non-admin reads other", other, owner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canRead, CanReadAccount(tt.principal, tt.target))

			// Instance writes are denied for everyone, including
			// administrators and the profile owner.
			assert.False(t, CanWriteAccount(tt.principal, tt.target))
		})
	}

	assert.False(t, CanListAccounts(nil))
	assert.True(t, CanListAccounts(owner))

	assert.False(t, CanCreateAccount(nil))
	assert.False(t, CanCreateAccount(owner))
	assert.True(t, CanCreateAccount(admin))
}

func TestReviewPermissions(t *testing.T) {
	admin := account(1, true)
	submitter := account(2, false)
	other := account(3, false)

	r := review(submitter.ID)

	tests := []struct {
		name      string
		principal *models.Account
		want      bool
	}{
		{"unauthenticated", nil, false},
		{"admin", admin, true},
		{"submitter", submitter, true},
		{"other non-admin", other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Read and write follow the same rule for reviews.
			assert.Equal(t, tt.want, CanReadReview(tt.principal, r))
			assert.Equal(t, tt.want, CanWriteReview(tt.principal, r))
		})
	}

	assert.False(t, CanListReviews(nil))
	assert.True(t, CanListReviews(other))
	assert.False(t, CanCreateReview(nil))
	assert.True(t, CanCreateReview(other))
}

func TestSharedDataPermissions(t *testing.T) {
	assert.False(t, CanAccessSharedData(nil))
	assert.True(t, CanAccessSharedData(account(2, false)))
	assert.True(t, CanAccessSharedData(account(1, true)))
}

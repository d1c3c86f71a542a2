package permissions

import (
	"revtrack/models"

	"gorm.io/gorm"
)

// ScopeAccounts narrows an account list query to the rows the principal may
// see: administrators see every account, everyone else sees only their own
// row. Must be applied before Count/Offset/Limit so pagination and totals
// agree with what the caller is allowed to observe.
func ScopeAccounts(principal *models.Account, query *gorm.DB) *gorm.DB {
	if principal.IsAdmin {
		return query
	}
	return query.Where("username = ?", principal.Username)
}

// ScopeReviews narrows a review list query to the rows the principal may
// see: administrators see every review, everyone else sees only reviews
// they submitted themselves. Must be applied before Count/Offset/Limit.
func ScopeReviews(principal *models.Account, query *gorm.DB) *gorm.DB {
	if principal.IsAdmin {
		return query
	}
	return query.Where("submitter_id = ?", principal.ID)
}

// Company and reviewer lists are not narrowed: all authenticated accounts
// see every row, so no scope functions exist for them.

// Package permissions holds every access-control rule of the API: per-kind
// allow/deny predicates for single instances, and query scopes that narrow
// list queries to the rows the requesting account may see.
//
// Every predicate treats a nil account as unauthenticated and denies, and
// evaluates the administrator short-circuit before the per-kind rule.
// Handlers call the collection-tier predicate before touching storage and
// the instance-tier predicate after fetching a row by key, so a keyed
// lookup can answer 403 for a row that exists but is off limits, while
// list endpoints never reveal such rows at all.
package permissions

import "revtrack/models"

// Account rules: only administrators interact with arbitrary account
// profiles. Non-admin accounts can only read their own profile, and no
// account profile is editable through the API at all.

// CanListAccounts reports whether the account may request the account
// collection. The rows returned are still narrowed by ScopeAccounts.
func CanListAccounts(principal *models.Account) bool {
	return principal != nil
}

// CanReadAccount reports whether the account may read one specific profile.
func CanReadAccount(principal *models.Account, account *models.Account) bool {
	if principal == nil {
		return false
	}
	if principal.IsAdmin {
		return true
	}
	return principal.ID == account.ID
}

// CanCreateAccount reports whether the account may register new accounts.
func CanCreateAccount(principal *models.Account) bool {
	return principal != nil && principal.IsAdmin
}

// CanWriteAccount reports whether the account may update or delete one
// specific profile. Always false: accounts are managed through the creation
// path only, not instance mutation, even for administrators.
func CanWriteAccount(principal *models.Account, account *models.Account) bool {
	return false
}

// Review rules: only administrators interact with reviews submitted by
// other accounts. Non-admin accounts can only interact with reviews they
// submitted themselves.

// CanListReviews reports whether the account may request the review
// collection. The rows returned are still narrowed by ScopeReviews.
func CanListReviews(principal *models.Account) bool {
	return principal != nil
}

// CanCreateReview reports whether the account may submit new reviews.
func CanCreateReview(principal *models.Account) bool {
	return principal != nil
}

// CanReadReview reports whether the account may read one specific review.
func CanReadReview(principal *models.Account, review *models.Review) bool {
	if principal == nil {
		return false
	}
	if principal.IsAdmin {
		return true
	}
	return review.SubmitterID == principal.ID
}

// CanWriteReview reports whether the account may update or delete one
// specific review.
func CanWriteReview(principal *models.Account, review *models.Review) bool {
	if principal == nil {
		return false
	}
	if principal.IsAdmin {
		return true
	}
	return review.SubmitterID == principal.ID
}

// Companies and reviewers are shared reference data, not owned records:
// any authenticated account may read, create, update or delete any of them.

// CanAccessSharedData reports whether the account may interact with
// company and reviewer records.
func CanAccessSharedData(principal *models.Account) bool {
	return principal != nil
}

package reviewController

import (
	"revtrack/database"
	"revtrack/middleware"
	"revtrack/models"
	"revtrack/permissions"
	"revtrack/utils"
	reviewValidator "revtrack/validators/review"

	"github.com/gofiber/fiber/v2"
)

// ListReviews returns the reviews visible to the requester: every review
// for administrators, only self-submitted reviews otherwise.
func ListReviews(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanListReviews(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	// Narrow before counting and paginating so a non-admin never gets a
	// page with holes where other accounts' reviews were skipped.
	query := permissions.ScopeReviews(principal, db.Model(&models.Review{}))

	var total int64
	query.Count(&total)

	var reviews []models.Review
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetReview returns a single review by id. Existing reviews of other
// accounts answer 403 for non-admins, unknown ids answer 404.
func GetReview(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)

	// Bind the raw path segment as a parameter, never as an inline
	// condition: a predicate-shaped key must read as an unknown id.
	var review models.Review
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if !permissions.CanReadReview(principal, &review) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only access reviews you submitted!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched!", review)
}

// CreateReview submits a new review. Submitter and origin address are
// stamped from the authenticated request here, overriding whatever the
// client sent: the request payload has no writable fields for either.
func CreateReview(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanCreateReview(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	reqData := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)

	db := database.Database.Db

	// The referenced company and reviewer must exist.
	errors := make(map[string]string)
	if err := db.First(&models.Company{}, reqData.CompanyID).Error; err != nil {
		errors["companyId"] = "Company not found!"
	}
	if err := db.First(&models.Reviewer{}, reqData.ReviewerID).Error; err != nil {
		errors["reviewerId"] = "Reviewer not found!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	review := models.Review{
		Rating:     reqData.Rating,
		Title:      reqData.Title,
		Summary:    reqData.Summary,
		CompanyID:  reqData.CompanyID,
		ReviewerID: reqData.ReviewerID,

		// Server-derived, never client-supplied. c.IP() honours the
		// trusted proxy configuration for forwarded requests.
		SubmitterID: principal.ID,
		IPAddress:   c.IP(),
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	go utils.NotifyReviewSubmitted(review)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully.", review)
}

// UpdateReview modifies a review's rating, title or summary. Submitter and
// origin address are immutable after creation.
func UpdateReview(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ?", c.Params("id")).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if !permissions.CanWriteReview(principal, &review) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only modify reviews you submitted!", nil)
	}

	reqData := c.Locals("validatedReview").(*reviewValidator.UpdateReviewRequest)

	if reqData.Rating != nil {
		review.Rating = *reqData.Rating
	}
	if reqData.Title != nil {
		review.Title = *reqData.Title
	}
	if reqData.Summary != nil {
		review.Summary = *reqData.Summary
	}

	if err := db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully.", review)
}

// DeleteReview removes a review
func DeleteReview(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ?", c.Params("id")).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if !permissions.CanWriteReview(principal, &review) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete reviews you submitted!", nil)
	}

	if err := db.Delete(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully.", nil)
}

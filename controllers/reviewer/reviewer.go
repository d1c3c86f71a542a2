package reviewerController

import (
	"revtrack/database"
	"revtrack/middleware"
	"revtrack/models"
	"revtrack/permissions"
	reviewerValidator "revtrack/validators/reviewer"

	"github.com/gofiber/fiber/v2"
)

// Reviewers are shared reference data like companies, looked up by e-mail
// address instead of a numeric id.

// ListReviewers returns all registered reviewers
func ListReviewers(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
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

	var total int64
	db.Model(&models.Reviewer{}).Count(&total)

	var reviewers []models.Reviewer
	if err := db.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviewers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviewers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewers fetched!", fiber.Map{
		"reviewers": reviewers,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetReviewer returns a single reviewer by e-mail address
func GetReviewer(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var reviewer models.Reviewer
	if err := database.Database.Db.Where("email = ?", c.Params("email")).First(&reviewer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reviewer not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewer fetched!", reviewer)
}

// CreateReviewer registers a new reviewer
func CreateReviewer(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	reqData := c.Locals("validatedReviewer").(*reviewerValidator.CreateReviewerRequest)

	db := database.Database.Db

	// Check if the e-mail address is already registered
	if err := db.Where("email = ?", reqData.Email).First(&models.Reviewer{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Reviewer is already registered!", nil)
	}

	reviewer := models.Reviewer{
		Email: reqData.Email,
		Name:  reqData.Name,
	}

	if err := db.Create(&reviewer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reviewer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reviewer created successfully.", reviewer)
}

// UpdateReviewer modifies an existing reviewer's display name
func UpdateReviewer(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	db := database.Database.Db

	var reviewer models.Reviewer
	if err := db.Where("email = ?", c.Params("email")).First(&reviewer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reviewer not found!", nil)
	}

	reqData := c.Locals("validatedReviewer").(*reviewerValidator.UpdateReviewerRequest)

	reviewer.Name = reqData.Name

	if err := db.Save(&reviewer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reviewer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewer updated successfully.", reviewer)
}

// DeleteReviewer removes a reviewer, unless reviews still reference it
func DeleteReviewer(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	db := database.Database.Db

	var reviewer models.Reviewer
	if err := db.Where("email = ?", c.Params("email")).First(&reviewer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reviewer not found!", nil)
	}

	// Protect-on-delete: reject while any review references this reviewer.
	var refs int64
	db.Model(&models.Review{}).Where("reviewer_id = ?", reviewer.ID).Count(&refs)
	if refs > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Reviewer still has reviews and cannot be deleted!", nil)
	}

	if err := db.Delete(&reviewer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete reviewer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewer deleted successfully.", nil)
}

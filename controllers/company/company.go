package companyController

import (
	"revtrack/database"
	"revtrack/middleware"
	"revtrack/models"
	"revtrack/permissions"
	companyValidator "revtrack/validators/company"

	"github.com/gofiber/fiber/v2"
)

// Companies are shared reference data: every authenticated account may
// list, read, create, update and delete them. The only restriction is
// protect-on-delete while reviews reference a company.

// ListCompanies returns all registered companies
func ListCompanies(c *fiber.Ctx) error {
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
	db.Model(&models.Company{}).Count(&total)

	var companies []models.Company
	if err := db.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched!", fiber.Map{
		"companies": companies,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCompany returns a single company by id
func GetCompany(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched!", company)
}

// CreateCompany registers a new company
func CreateCompany(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	reqData := c.Locals("validatedCompany").(*companyValidator.CompanyRequest)

	company := models.Company{
		Name: reqData.Name,
		URL:  reqData.URL,
	}

	if err := database.Database.Db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully.", company)
}

// UpdateCompany modifies an existing company
func UpdateCompany(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ?", c.Params("id")).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	reqData := c.Locals("validatedCompany").(*companyValidator.CompanyRequest)

	company.Name = reqData.Name
	company.URL = reqData.URL

	if err := db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully.", company)
}

// DeleteCompany removes a company, unless reviews still reference it
func DeleteCompany(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanAccessSharedData(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ?", c.Params("id")).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	// Protect-on-delete: reject while any review references this company.
	var refs int64
	db.Model(&models.Review{}).Where("company_id = ?", company.ID).Count(&refs)
	if refs > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Company still has reviews and cannot be deleted!", nil)
	}

	if err := db.Delete(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deleted successfully.", nil)
}

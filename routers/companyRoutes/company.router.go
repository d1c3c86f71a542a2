package companyRoutes

import (
	companyController "revtrack/controllers/company"
	"revtrack/middleware"
	companyValidator "revtrack/validators/company"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App) {
	companyGroup := app.Group("/company")

	companyGroup.Get("/", middleware.AuthMiddleware, companyController.ListCompanies)
	companyGroup.Post("/", middleware.AuthMiddleware, companyValidator.Company(), companyController.CreateCompany)
	companyGroup.Get("/:id", middleware.AuthMiddleware, companyController.GetCompany)
	companyGroup.Put("/:id", middleware.AuthMiddleware, companyValidator.Company(), companyController.UpdateCompany)
	companyGroup.Delete("/:id", middleware.AuthMiddleware, companyController.DeleteCompany)
}

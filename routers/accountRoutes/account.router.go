package accountRoutes

import (
	accountController "revtrack/controllers/account"
	"revtrack/middleware"
	accountValidator "revtrack/validators/account"

	"github.com/gofiber/fiber/v2"
)

func SetupAccountRoutes(app *fiber.App) {
	accountGroup := app.Group("/account")

	accountGroup.Get("/", middleware.AuthMiddleware, accountController.ListAccounts)
	accountGroup.Post("/", middleware.AuthMiddleware, accountValidator.CreateAccount(), accountController.CreateAccount)
	accountGroup.Get("/:username", middleware.AuthMiddleware, accountController.GetAccount)
	accountGroup.Put("/:username", middleware.AuthMiddleware, accountController.UpdateAccount)
	accountGroup.Delete("/:username", middleware.AuthMiddleware, accountController.DeleteAccount)
}

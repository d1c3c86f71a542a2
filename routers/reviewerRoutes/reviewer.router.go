package reviewerRoutes

import (
	reviewerController "revtrack/controllers/reviewer"
	"revtrack/middleware"
	reviewerValidator "revtrack/validators/reviewer"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewerRoutes(app *fiber.App) {
	reviewerGroup := app.Group("/reviewer")

	// Reviewers are keyed by e-mail address; fiber route params accept the
	// dots e-mail addresses usually contain.
	reviewerGroup.Get("/", middleware.AuthMiddleware, reviewerController.ListReviewers)
	reviewerGroup.Post("/", middleware.AuthMiddleware, reviewerValidator.CreateReviewer(), reviewerController.CreateReviewer)
	reviewerGroup.Get("/:email", middleware.AuthMiddleware, reviewerController.GetReviewer)
	reviewerGroup.Put("/:email", middleware.AuthMiddleware, reviewerValidator.UpdateReviewer(), reviewerController.UpdateReviewer)
	reviewerGroup.Delete("/:email", middleware.AuthMiddleware, reviewerController.DeleteReviewer)
}

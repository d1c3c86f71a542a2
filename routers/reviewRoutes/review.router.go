package reviewRoutes

import (
	reviewController "revtrack/controllers/review"
	"revtrack/middleware"
	reviewValidator "revtrack/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review")

	reviewGroup.Get("/", middleware.AuthMiddleware, reviewController.ListReviews)
	reviewGroup.Post("/", middleware.AuthMiddleware, reviewValidator.CreateReview(), reviewController.CreateReview)
	reviewGroup.Get("/:id", middleware.AuthMiddleware, reviewController.GetReview)
	reviewGroup.Put("/:id", middleware.AuthMiddleware, reviewValidator.UpdateReview(), reviewController.UpdateReview)
	reviewGroup.Delete("/:id", middleware.AuthMiddleware, reviewController.DeleteReview)
}

package reviewerValidator

import (
	"fmt"

	"revtrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const nameMaxLength = 256

// CreateReviewerRequest is the validated reviewer creation payload
type CreateReviewerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateReviewerRequest is the validated reviewer update payload. The e-mail
// address identifies reviewers and cannot be changed.
type UpdateReviewerRequest struct {
	Name string `json:"name"`
}

// CreateReviewer validator middleware
func CreateReviewer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(reqData.Email, "email"); err != nil {
			errors["email"] = "Invalid email!"
		}

		if len(reqData.Name) > nameMaxLength {
			errors["name"] = fmt.Sprintf("Name must be at most %d characters long!", nameMaxLength)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewer", reqData)
		return c.Next()
	}
}

// UpdateReviewer validator middleware
func UpdateReviewer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateReviewerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Name) > nameMaxLength {
			errors["name"] = fmt.Sprintf("Name must be at most %d characters long!", nameMaxLength)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewer", reqData)
		return c.Next()
	}
}

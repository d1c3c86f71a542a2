package reviewValidator

import (
	"fmt"

	"revtrack/middleware"

	"github.com/gofiber/fiber/v2"
)

const (
	titleMaxLength   = 64
	summaryMaxLength = 10000
)

// CreateReviewRequest is the validated review creation payload. Submitter
// and origin address are derived server-side on creation, so the payload
// deliberately has no fields for them: client-supplied values are silently
// dropped during body parsing rather than rejected.
type CreateReviewRequest struct {
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	CompanyID  uint   `json:"companyId"`
	ReviewerID uint   `json:"reviewerId"`
}

// UpdateReviewRequest is the validated review update payload. Only rating,
// title and summary are editable after creation; nil means "leave as is".
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
}

func checkRating(rating int, errors map[string]string) {
	if rating < 1 || rating > 5 {
		errors["rating"] = "Rating must be between 1 and 5!"
	}
}

func checkTitle(title string, errors map[string]string) {
	if len(title) > titleMaxLength {
		errors["title"] = fmt.Sprintf("Title must be at most %d characters long!", titleMaxLength)
	}
}

func checkSummary(summary string, errors map[string]string) {
	if len(summary) > summaryMaxLength {
		errors["summary"] = fmt.Sprintf("Summary must be at most %d characters long!", summaryMaxLength)
	}
}

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		checkRating(reqData.Rating, errors)
		checkTitle(reqData.Title, errors)
		checkSummary(reqData.Summary, errors)

		if reqData.CompanyID == 0 {
			errors["companyId"] = "Company is required!"
		}
		if reqData.ReviewerID == 0 {
			errors["reviewerId"] = "Reviewer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// UpdateReview validator middleware
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating != nil {
			checkRating(*reqData.Rating, errors)
		}
		if reqData.Title != nil {
			checkTitle(*reqData.Title, errors)
		}
		if reqData.Summary != nil {
			checkSummary(*reqData.Summary, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

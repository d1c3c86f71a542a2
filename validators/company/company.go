package companyValidator

import (
	"fmt"
	"strings"

	"revtrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const nameMaxLength = 64

// CompanyRequest is the validated company create/update payload
type CompanyRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Company validator middleware, shared by create and update
func Company() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompanyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > nameMaxLength {
			errors["name"] = fmt.Sprintf("Name must be at most %d characters long!", nameMaxLength)
		}

		if reqData.URL != "" {
			if err := validate.Var(reqData.URL, "url"); err != nil {
				errors["url"] = "Invalid URL!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

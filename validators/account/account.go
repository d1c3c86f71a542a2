package accountValidator

import (
	"fmt"
	"regexp"

	"revtrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Usernames are restricted to ASCII to avoid encoding issues with HTTP
// authentication headers.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9@.+\-_]+$`)

const usernameMaxLength = 150

// CreateAccountRequest is the validated account creation payload
type CreateAccountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// CreateAccount validator middleware
func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAccountRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		} else if len(reqData.Username) > usernameMaxLength {
			errors["username"] = fmt.Sprintf("Username must be at most %d characters long!", usernameMaxLength)
		} else if !usernamePattern.MatchString(reqData.Username) {
			errors["username"] = "Username may only contain letters, digits and @.+-_ characters!"
		}

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Invalid email!"
			}
		}

		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAccount", reqData)
		return c.Next()
	}
}

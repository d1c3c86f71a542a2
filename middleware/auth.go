package middleware

import (
	"fmt"
	"strings"
	"time"

	"revtrack/config"
	"revtrack/database"
	"revtrack/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT session token for the account
func GenerateJWT(accountID uint, username string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"accountId": accountID,
		"username":  username,
		"isAdmin":   isAdmin,
		"iat":       time.Now().Unix(),                     // issued at
		"exp":       time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// AuthMiddleware resolves the requesting account from the Authorization
// header and stores it in the request context. Two schemes are accepted:
// "Bearer <jwt>" session tokens from the login endpoint, and persistent
// "Token <key>" access tokens issued at account creation. Requests without
// a resolvable account are rejected before any handler runs.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	var accountID uint

	switch {
	case strings.HasPrefix(authHeader, "Bearer "):
		tokenString := authHeader[len("Bearer "):]

		// Parse and validate the token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(config.AppConfig.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["accountId"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		// JWT numeric claims decode as float64
		accountID = uint(claims["accountId"].(float64))

	case strings.HasPrefix(authHeader, "Token "):
		key := strings.TrimSpace(authHeader[len("Token "):])

		var authToken models.AuthToken
		if err := database.Database.Db.Where("key = ?", key).First(&authToken).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid access token", nil)
		}
		accountID = authToken.AccountID

	default:
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	// Load the account row so handlers always see current admin status,
	// and so tokens of deleted accounts stop working immediately.
	var account models.Account
	if err := database.Database.Db.First(&account, accountID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Account no longer exists", nil)
	}

	c.Locals("account", &account)

	return c.Next()
}

// CurrentAccount returns the authenticated account stored by AuthMiddleware,
// or nil when the request carries no resolvable account.
func CurrentAccount(c *fiber.Ctx) *models.Account {
	account, ok := c.Locals("account").(*models.Account)
	if !ok {
		return nil
	}
	return account
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

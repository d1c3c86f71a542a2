package accountController

import (
	"log"

	"revtrack/config"
	"revtrack/database"
	"revtrack/middleware"
	"revtrack/models"
	"revtrack/permissions"
	"revtrack/utils"
	accountValidator "revtrack/validators/account"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ListAccounts returns the accounts visible to the requester: every account
// for administrators, only their own row otherwise.
func ListAccounts(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanListAccounts(principal) {
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

	// Narrow before counting and paginating so totals and pages agree
	// with what the requester may see.
	query := permissions.ScopeAccounts(principal, db.Model(&models.Account{}))

	var total int64
	query.Count(&total)

	var accounts []models.Account
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accounts fetched!", fiber.Map{
		"accounts": accounts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetAccount returns a single account profile looked up by username
func GetAccount(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	username := c.Params("username")

	var account models.Account
	if err := database.Database.Db.Where("username = ?", username).First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	if !permissions.CanReadAccount(principal, &account) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account fetched!", account)
}

// CreateAccount registers a new account. Administrator-only. The account
// row and its access token are committed in one transaction, so a failed
// token issuance rolls the account back as well.
func CreateAccount(c *fiber.Ctx) error {
	principal := middleware.CurrentAccount(c)
	if !permissions.CanCreateAccount(principal) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only administrators can create accounts!", nil)
	}

	reqData := c.Locals("validatedAccount").(*accountValidator.CreateAccountRequest)

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.Account{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newAccount := models.Account{
		Username: reqData.Username,
		Email:    reqData.Email,
		IsAdmin:  reqData.IsAdmin,
		Password: string(hashedPassword),
	}
	token := models.AuthToken{
		Key: uuid.NewString(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newAccount).Error; err != nil {
			return err
		}
		token.AccountID = newAccount.ID
		return tx.Create(&token).Error
	})
	if err != nil {
		log.Printf("Error saving account to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	go func(account models.Account, key string) {
		if err := utils.SendWelcomeEmail(account, key); err != nil {
			log.Printf("Error sending welcome email to %s: %v", account.Email, err)
		}
	}(newAccount, token.Key)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully.", fiber.Map{
		"account": newAccount,
		"token":   token.Key,
	})
}

// UpdateAccount always denies: account profiles are immutable through the
// API, even for administrators. Accounts are managed through the creation
// path only.
func UpdateAccount(c *fiber.Ctx) error {
	return denyAccountWrite(c)
}

// DeleteAccount always denies, for the same reason as UpdateAccount
func DeleteAccount(c *fiber.Ctx) error {
	return denyAccountWrite(c)
}

func denyAccountWrite(c *fiber.Ctx) error {
	username := c.Params("username")

	// Unknown usernames still answer 404 so keyed lookups distinguish the
	// two failure modes; existing rows answer 403 for everyone, since
	// permissions.CanWriteAccount denies admins and owners alike.
	var account models.Account
	if err := database.Database.Db.Where("username = ?", username).First(&account).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account profiles cannot be modified through the API!", nil)
}

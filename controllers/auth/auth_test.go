package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"revtrack/config"
	"revtrack/database"
	"revtrack/models"
	authRoutes "revtrack/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.LoginTracking{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func login(t *testing.T, app *fiber.App, username, password string) (int, string) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]string{
		"username": username,
		"password": password,
	}))
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Data.Token
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery staple"), config.AppConfig.SaltRound)
	require.NoError(t, err)
	account := models.Account{Username: "bob", Password: string(hash)}
	require.NoError(t, database.Database.Db.Create(&account).Error)

	status, token := login(t, app, "bob", "correct horse battery staple")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, token)

	// Successful logins are recorded for auditing.
	var tracked models.LoginTracking
	require.NoError(t, database.Database.Db.First(&tracked).Error)
	assert.Equal(t, account.ID, tracked.AccountID)
	assert.NotEmpty(t, tracked.IPAddress)

	status, token = login(t, app, "bob", "wrong password")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, token)

	status, _ = login(t, app, "nosuchuser", "whatever")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginValidation(t *testing.T) {
	app := setupApp(t)

	status, _ := login(t, app, "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

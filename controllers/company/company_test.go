package companyController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"revtrack/config"
	"revtrack/database"
	"revtrack/middleware"
	"revtrack/models"
	companyRoutes "revtrack/routers/companyRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		&models.Company{},
		&models.Reviewer{},
		&models.Review{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	companyRoutes.SetupCompanyRoutes(app)
	return app
}

func authFor(t *testing.T, username string) string {
	account := models.Account{
		Username: username,
		IsAdmin:  false,
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&account).Error)
	token, err := middleware.GenerateJWT(account.ID, account.Username, account.IsAdmin)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method, target, auth string, body interface{}) int {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// Any authenticated account may manage companies: they are shared
// reference data, not owned records.
func TestCompanyCrudOpenToAllAuthenticated(t *testing.T) {
	app := setupApp(t)
	auth := authFor(t, "bob")

	status := doRequest(t, app, http.MethodPost, "/company", auth, map[string]interface{}{
		"name": "ACME, Inc.",
		"url":  "http://example.com/",
	})
	require.Equal(t, http.StatusCreated, status)

	var company models.Company
	require.NoError(t, database.Database.Db.First(&company).Error)

	target := fmt.Sprintf("/company/%d", company.ID)

	otherAuth := authFor(t, "carol")
	assert.Equal(t, http.StatusOK, doRequest(t, app, http.MethodGet, target, otherAuth, nil))
	assert.Equal(t, http.StatusOK, doRequest(t, app, http.MethodPut, target, otherAuth, map[string]interface{}{
		"name": "ACME Corp",
	}))
	assert.Equal(t, http.StatusOK, doRequest(t, app, http.MethodDelete, target, otherAuth, nil))

	// Unauthenticated requests are rejected outright.
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, app, http.MethodGet, "/company", "", nil))
}

func TestCompanyValidation(t *testing.T) {
	app := setupApp(t)
	auth := authFor(t, "bob")

	status := doRequest(t, app, http.MethodPost, "/company", auth, map[string]interface{}{
		"name": "",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status = doRequest(t, app, http.MethodPost, "/company", auth, map[string]interface{}{
		"name": "ACME, Inc.",
		"url":  "not a url",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCompanyKeyIsNeverInterpretedAsCondition(t *testing.T) {
	app := setupApp(t)
	auth := authFor(t, "bob")

	company := models.Company{Name: "ACME, Inc."}
	require.NoError(t, database.Database.Db.Create(&company).Error)

	// A predicate-shaped path segment is an unknown id, not a query: if
	// it were parsed as a condition, "id=1" would resolve to the company.
	assert.Equal(t, http.StatusNotFound, doRequest(t, app, http.MethodGet, "/company/id=1", auth, nil))
	assert.Equal(t, http.StatusNotFound, doRequest(t, app, http.MethodPut, "/company/id=1", auth, map[string]interface{}{
		"name": "Hijacked Corp",
	}))
	assert.Equal(t, http.StatusNotFound, doRequest(t, app, http.MethodDelete, "/company/id=1", auth, nil))

	var stored models.Company
	require.NoError(t, database.Database.Db.First(&stored).Error)
	assert.Equal(t, "ACME, Inc.", stored.Name)
}

func TestDeleteCompanyProtectedWhileReviewed(t *testing.T) {
	app := setupApp(t)
	auth := authFor(t, "bob")

	var bob models.Account
	require.NoError(t, database.Database.Db.Where("username = ?", "bob").First(&bob).Error)

	company := models.Company{Name: "ACME, Inc."}
	require.NoError(t, database.Database.Db.Create(&company).Error)
	reviewer := models.Reviewer{Email: "jane@x.com"}
	require.NoError(t, database.Database.Db.Create(&reviewer).Error)
	review := models.Review{
		Rating:      4,
		IPAddress:   "192.0.2.1",
		SubmitterID: bob.ID,
		CompanyID:   company.ID,
		ReviewerID:  reviewer.ID,
	}
	require.NoError(t, database.Database.Db.Create(&review).Error)

	target := fmt.Sprintf("/company/%d", company.ID)

	status := doRequest(t, app, http.MethodDelete, target, auth, nil)
	assert.Equal(t, http.StatusConflict, status)

	// Both rows are untouched after the rejected delete.
	var companies, reviews int64
	database.Database.Db.Model(&models.Company{}).Count(&companies)
	database.Database.Db.Model(&models.Review{}).Count(&reviews)
	assert.EqualValues(t, 1, companies)
	assert.EqualValues(t, 1, reviews)

	// Dropping the review unblocks the delete.
	require.NoError(t, database.Database.Db.Delete(&review).Error)
	status = doRequest(t, app, http.MethodDelete, target, auth, nil)
	assert.Equal(t, http.StatusOK, status)
}

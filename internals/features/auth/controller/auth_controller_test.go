package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"abhm_backend/internals/configs"
	authModel "abhm_backend/internals/features/auth/model"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.AdminModel{}))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authModel.AdminModel{Username: "admin", Password: string(hash)}).Error)

	app := fiber.New()
	app.Post("/api/auth/login", NewAuthController(db).Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body map[string]string) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestLoginIssuesToken(t *testing.T) {
	app := newTestApp(t)

	code, body := postLogin(t, app, map[string]string{"username": "admin", "password": "secret123"})
	assert.Equal(t, fiber.StatusOK, code)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	code, body := postLogin(t, app, map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	app := newTestApp(t)

	code, body := postLogin(t, app, map[string]string{"username": "ghost", "password": "whatever"})
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(t)

	code, _ := postLogin(t, app, map[string]string{"username": "admin"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

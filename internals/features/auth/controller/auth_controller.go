package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"abhm_backend/internals/configs"
	authModel "abhm_backend/internals/features/auth/model"
	helper "abhm_backend/internals/helpers"
)

// TokenLifetime matches the admin panel session length.
const TokenLifetime = 30 * 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues the admin JWT. Wrong username and wrong password return the
// same message so credentials cannot be enumerated.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Username and password are required")
	}

	var admin authModel.AdminModel
	if err := ctrl.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up admin")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  admin.ID.String(),
		"exp": time.Now().Add(TokenLifetime).Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Failed to sign token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": signed,
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

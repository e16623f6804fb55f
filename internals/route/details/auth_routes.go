package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "abhm_backend/internals/features/auth/controller"
	"abhm_backend/internals/middlewares"
)

// AuthRoutes mounts the admin login endpoint with its own tight rate limit.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

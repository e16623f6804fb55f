package details

import (
	"github.com/gofiber/fiber/v2"

	memberController "abhm_backend/internals/features/membership/controller"
	"abhm_backend/internals/middlewares"
)

// MembershipRoutes mounts the public membership surface.
func MembershipRoutes(api fiber.Router, ctrl *memberController.MemberController) {
	membership := api.Group("/membership")

	membership.Post("/join", middlewares.JoinRateLimiter(), ctrl.Join)
	membership.Post("/status", ctrl.CheckStatus)
	membership.Get("/public/verify/:memberId", ctrl.VerifyPublic)
}

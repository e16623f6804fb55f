package details

import (
	"github.com/gofiber/fiber/v2"

	memberController "abhm_backend/internals/features/membership/controller"
	authMiddleware "abhm_backend/internals/middlewares/auth"
)

// AdminMembershipRoutes mounts the JWT-guarded admin surface.
func AdminMembershipRoutes(api fiber.Router, ctrl *memberController.AdminController) {
	admin := api.Group("/membership/admin", authMiddleware.AdminAuthMiddleware())

	admin.Get("/pending-requests", ctrl.ListPending)
	admin.Get("/members", ctrl.ListMembers)
	admin.Get("/member/:id", ctrl.GetMember)
	admin.Post("/verify-request", ctrl.Verify)
	admin.Put("/member/:id/photo", ctrl.UpdatePhoto)
	admin.Get("/dashboard-stats", ctrl.Dashboard)
	admin.Get("/member/:id/id-card-pdf", ctrl.IDCardPDF)
	admin.Get("/member/:id/id-card-html", ctrl.IDCardHTML)
}

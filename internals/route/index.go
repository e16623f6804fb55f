package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"abhm_backend/internals/configs"
	"abhm_backend/internals/features/idcard"
	memberController "abhm_backend/internals/features/membership/controller"
	"abhm_backend/internals/features/membership/service"
	"abhm_backend/internals/features/notification"
	"abhm_backend/internals/helpers/storage"
	"abhm_backend/internals/route/details"
)

// SetupRoutes wires the whole HTTP surface. Dependencies are built once here
// and shared by all handlers.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	renderer := idcard.NewRenderer(configs.PublicVerifyURL)
	pipeline := idcard.NewPipeline(renderer, configs.AppBaseURL)
	emailService := notification.NewEmailService(pipeline)
	lifecycle := service.NewLifecycleService(db, emailService)
	uploads := storage.NewUploadService("uploads")

	memberCtrl := memberController.NewMemberController(lifecycle, uploads)
	adminCtrl := memberController.NewAdminController(lifecycle, uploads, pipeline)

	BaseRoutes(app, db)

	api := app.Group("/api")
	details.AuthRoutes(api, db)
	details.MembershipRoutes(api, memberCtrl)
	details.AdminMembershipRoutes(api, adminCtrl)
	details.PaymentRoutes(api)
}

package details

import (
	"github.com/gofiber/fiber/v2"

	paymentController "abhm_backend/internals/features/payment/controller"
)

// PaymentRoutes mounts the static payment-config endpoint.
func PaymentRoutes(api fiber.Router) {
	ctrl := paymentController.NewPaymentController()

	payment := api.Group("/payment")
	payment.Get("/config", ctrl.GetConfig)
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"abhm_backend/internals/configs"
	helper "abhm_backend/internals/helpers"
)

// PaymentConfig is the static UPI payment target shown on the join form. No
// gateway is involved; the applicant pays out of band and submits the UTR.
type PaymentConfig struct {
	UPIID     string  `json:"upi_id"`
	PayeeName string  `json:"payee_name"`
	Phone     string  `json:"phone"`
	BankName  string  `json:"bank_name"`
	MinAmount float64 `json:"min_amount"`
	Currency  string  `json:"currency"`
}

type PaymentController struct{}

func NewPaymentController() *PaymentController {
	return &PaymentController{}
}

// GetConfig handles GET /api/payment/config.
func (ctrl *PaymentController) GetConfig(c *fiber.Ctx) error {
	cfg := PaymentConfig{
		UPIID:     configs.GetEnv("UPI_ID", "boism-8839446381@boi"),
		PayeeName: configs.GetEnv("UPI_PAYEE_NAME", "AKHIL BHARAT HINDU MAHASABHA"),
		Phone:     configs.GetEnv("UPI_PHONE", "8839446381"),
		BankName:  configs.GetEnv("UPI_BANK_NAME", "Bank of India"),
		MinAmount: 10.00,
		Currency:  "INR",
	}
	return helper.Success(c, "Payment config fetched successfully", cfg)
}

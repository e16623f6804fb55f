package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/api/payment/config", NewPaymentController().GetConfig)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/payment/config", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Status string        `json:"status"`
		Data   PaymentConfig `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "boism-8839446381@boi", envelope.Data.UPIID)
	assert.Equal(t, "AKHIL BHARAT HINDU MAHASABHA", envelope.Data.PayeeName)
	assert.Equal(t, "Bank of India", envelope.Data.BankName)
	assert.Equal(t, 10.00, envelope.Data.MinAmount)
	assert.Equal(t, "INR", envelope.Data.Currency)
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abhm_backend/internals/features/membership/model"
)

func TestParseAddressPayload(t *testing.T) {
	t.Run("valid object stored as-is", func(t *testing.T) {
		raw := `{"line1":"12 Station Road","city":"Bhopal"}`
		got := ParseAddressPayload(raw)
		assert.JSONEq(t, raw, string(got))
	})

	t.Run("plain string stored as JSON string", func(t *testing.T) {
		got := ParseAddressPayload("Ward 4, Khandwa")
		var s string
		require.NoError(t, json.Unmarshal(got, &s))
		assert.Equal(t, "Ward 4, Khandwa", s)
	})

	t.Run("broken json stored as JSON string", func(t *testing.T) {
		got := ParseAddressPayload(`{"line1": "unterminated`)
		var s string
		require.NoError(t, json.Unmarshal(got, &s))
		assert.Equal(t, `{"line1": "unterminated`, s)
	})

	t.Run("empty stays nil", func(t *testing.T) {
		assert.Nil(t, ParseAddressPayload(""))
	})
}

func TestJoinRequestToModel(t *testing.T) {
	req := &JoinRequest{
		FirstName:     "Ramesh",
		LastName:      "Sharma",
		Mobile:        "9876543210",
		AadhaarNumber: "123412341234",
		UTRNumber:     "UTR0001",
		District:      "Bhopal",
	}
	files := UploadedFiles{
		PhotoURL:             "uploads/photo/2026-08/a.webp",
		AadhaarCardURL:       "uploads/aadhaar_card/2026-08/b.jpg",
		PaymentScreenshotURL: "uploads/payment_screenshot/2026-08/c.png",
	}

	m := req.ToModel(files)

	assert.Equal(t, model.StatusPending, m.Status)
	assert.Equal(t, model.RegistrationFee, m.Payment.Amount)
	assert.Equal(t, "UTR0001", m.Payment.UTRNumber)
	assert.Equal(t, files.PhotoURL, m.PhotoURL)
	assert.Equal(t, files.AadhaarCardURL, m.AadhaarCardURL)
	assert.Equal(t, files.PaymentScreenshotURL, m.Payment.ScreenshotURL)
	assert.Nil(t, m.MemberID)
}

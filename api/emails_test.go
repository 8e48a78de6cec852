package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thecosmeticshop/backend/models"
)

func TestVerifyEmailHTML(t *testing.T) {
	t.Parallel()

	html := verifyEmailHTML("123456")
	assert.Contains(t, html, "123456")
	assert.Contains(t, html, "The Cosmetic Shop")
	assert.Contains(t, html, "valid for 10 minutes")
}

func TestResendOTPHTML(t *testing.T) {
	t.Parallel()

	html := resendOTPHTML("654321")
	assert.Contains(t, html, "654321")
	assert.Contains(t, html, "new OTP")
}

func TestOrderConfirmationHTML(t *testing.T) {
	t.Parallel()

	html := orderConfirmationHTML("Ann", "64f1c0ffee00000000000001", 89.49)
	assert.Contains(t, html, "Ann")
	assert.Contains(t, html, "#64f1c0ffee00000000000001")
	assert.Contains(t, html, "89.49")
}

func TestOrderAlertHTML(t *testing.T) {
	t.Parallel()

	order := models.Order{TotalPrice: 120}
	html := orderAlertHTML(order, "Ann")
	assert.Contains(t, html, "New Order Alert")
	assert.Contains(t, html, "Ann")
	assert.Contains(t, html, "120")
}

package api

import (
	"fmt"

	"github.com/thecosmeticshop/backend/models"
)

// Email bodies match the storefront's transactional templates.

func verifyEmailHTML(otp string) string {
	return fmt.Sprintf(`
        <h1>Welcome to The Cosmetic Shop!</h1>
        <p>Please use the following OTP to verify your email:</p>
        <h2 style="color: #EC4899;">%s</h2>
        <p>This OTP is valid for 10 minutes.</p>
    `, otp)
}

func resendOTPHTML(otp string) string {
	return fmt.Sprintf(`
        <h1>The Cosmetic Shop</h1>
        <p>Here is your new OTP to verify your email:</p>
        <h2 style="color: #EC4899;">%s</h2>
        <p>This OTP is valid for 10 minutes.</p>
    `, otp)
}

func orderConfirmationHTML(customerName, orderID string, totalPrice float64) string {
	return fmt.Sprintf(`
        <h1>Thank you for your order!</h1>
        <p>Hi %s,</p>
        <p>We have received your order <strong>#%s</strong>.</p>
        <p>Total Amount: <strong>₹%.2f</strong></p>
        <p>We will notify you once your order is shipped.</p>
    `, customerName, orderID, totalPrice)
}

func orderAlertHTML(order models.Order, customerName string) string {
	return fmt.Sprintf(`
        <h1>New Order Alert</h1>
        <p>Order ID: <strong>#%s</strong></p>
        <p>Customer: %s</p>
        <p>Total: ₹%.2f</p>
        <p>Please check the admin panel for details.</p>
    `, order.ID.Hex(), customerName, order.TotalPrice)
}

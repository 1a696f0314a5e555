package controllers

import (
	"errors"
	"fmt"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// ProcessPaymentRequest represents a settlement request
type ProcessPaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	PromoCode     string `json:"promo_code"`
}

// ProcessPayment settles every outstanding charge of the logged-in user:
// one payment record, the settled charges flipped to paid and loyalty
// points credited, all in one transaction.
func ProcessPayment(c *gin.Context) {
	utils.LogInfo("ProcessPayment called")

	user := c.MustGet("user").(models.User)

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment request for %s: %v", user.Email, err)
		utils.BadRequest(c, "Invalid request. payment_method is required", err.Error())
		return
	}

	payment, pointsEarned, err := utils.SettleCharges(config.DB, user.Email, req.PaymentMethod, req.PromoCode)
	if err != nil {
		if errors.Is(err, utils.ErrNoPendingCharges) {
			utils.LogInfo("No pending charges to settle for %s", user.Email)
			utils.Success(c, "No pending payments found.", gin.H{
				"settled":      false,
				"redirect_url": "/user/dashboard",
			})
			return
		}
		utils.LogError("Settlement failed for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Payment failed", err.Error())
		return
	}

	utils.LogInfo("Settled charges for %s: order %s, amount %.2f (discount %.2f), %d points",
		user.Email, payment.OrderID, payment.Amount, payment.DiscountApplied, pointsEarned)

	utils.Success(c,
		fmt.Sprintf("Payment successful! Discount: %.2f. Earned %d Points!", payment.DiscountApplied, pointsEarned),
		gin.H{
			"settled":         true,
			"order_id":        payment.OrderID,
			"payment_id":      payment.PaymentID,
			"original_amount": fmt.Sprintf("%.2f", payment.OriginalAmount),
			"discount":        fmt.Sprintf("%.2f", payment.DiscountApplied),
			"promo_code":      payment.PromoCode,
			"amount":          fmt.Sprintf("%.2f", payment.Amount),
			"payment_method":  payment.PaymentMethod,
			"points_earned":   pointsEarned,
			"redirect_url":    "/user/payment/confirmation/" + payment.OrderID,
		})
}

// GetConfirmation returns the payment confirmation for an order id owned by
// the logged-in user
func GetConfirmation(c *gin.Context) {
	utils.LogInfo("GetConfirmation called")

	user := c.MustGet("user").(models.User)
	orderID := c.Param("order_id")

	var payment models.Payment
	if err := config.DB.Where("order_id = ? AND user_email = ?", orderID, user.Email).
		First(&payment).Error; err != nil {
		utils.LogError("Payment confirmation not found: %s for %s", orderID, user.Email)
		utils.NotFound(c, "Payment confirmation not found.")
		return
	}

	utils.Success(c, "Payment confirmation retrieved successfully", gin.H{
		"payment":        payment,
		"booking_ids":    payment.SettledBookingIDs(),
		"food_order_ids": payment.SettledFoodOrderIDs(),
	})
}

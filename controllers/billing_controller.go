package controllers

import (
	"fmt"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// GetBillingSummary lists the user's outstanding charges across bookings
// and food orders
func GetBillingSummary(c *gin.Context) {
	utils.LogInfo("GetBillingSummary called")

	user := c.MustGet("user").(models.User)

	summary, err := utils.GetOutstandingCharges(config.DB, user.Email)
	if err != nil {
		utils.LogError("Failed to fetch outstanding charges for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to fetch billing summary", nil)
		return
	}
	utils.LogInfo("Billing summary for %s: %d bookings, %d food orders, total %.2f",
		user.Email, len(summary.Bookings), len(summary.FoodOrders), summary.GrandTotal)

	utils.Success(c, "Billing summary retrieved successfully", gin.H{
		"bookings":           summary.Bookings,
		"food_orders":        summary.FoodOrders,
		"total_booking_cost": fmt.Sprintf("%.2f", summary.BookingTotal),
		"total_food_cost":    fmt.Sprintf("%.2f", summary.FoodTotal),
		"grand_total":        fmt.Sprintf("%.2f", summary.GrandTotal),
	})
}

// ApplyPromoRequest represents a promo validation request
type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyPromo validates a promo code and previews the discount against the
// user's current outstanding total. Nothing is persisted; the settlement
// re-resolves the code itself.
func ApplyPromo(c *gin.Context) {
	utils.LogInfo("ApplyPromo called")

	user := c.MustGet("user").(models.User)

	var req ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	code := utils.NormalizePromoCode(req.Code)
	percent, ok := utils.ResolvePromoCode(code)
	if !ok {
		utils.LogInfo("Invalid promo code %q tried by %s", code, user.Email)
		utils.Success(c, "Promo code checked", gin.H{"valid": false})
		return
	}

	summary, err := utils.GetOutstandingCharges(config.DB, user.Email)
	if err != nil {
		utils.LogError("Failed to fetch charges for promo preview, user %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to compute discount", nil)
		return
	}

	discount := utils.DiscountFor(summary.GrandTotal, percent)
	utils.LogInfo("Promo %s previewed for %s: %d%% off %.2f", code, user.Email, percent, summary.GrandTotal)
	utils.Success(c, "Promo code checked", gin.H{
		"valid":            true,
		"code":             code,
		"discount_percent": percent,
		"grand_total":      fmt.Sprintf("%.2f", summary.GrandTotal),
		"discount":         fmt.Sprintf("%.2f", discount),
		"final_total":      fmt.Sprintf("%.2f", summary.GrandTotal-discount),
	})
}

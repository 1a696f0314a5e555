package controllers

import (
	"math"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the guest's dashboard stats: active bookings, food
// order count, total spent on paid charges and the loyalty balance
func GetDashboard(c *gin.Context) {
	utils.LogInfo("GetDashboard called")

	user := c.MustGet("user").(models.User)

	var activeBookings int64
	if err := config.DB.Model(&models.Booking{}).
		Where("user_email = ? AND status = ?", user.Email, models.BookingStatusActive).
		Count(&activeBookings).Error; err != nil {
		utils.LogError("Failed to count bookings for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var foodOrders int64
	if err := config.DB.Model(&models.FoodOrder{}).
		Where("user_email = ?", user.Email).
		Count(&foodOrders).Error; err != nil {
		utils.LogError("Failed to count food orders for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	var spentBookings, spentFood float64
	config.DB.Model(&models.Booking{}).
		Where("user_email = ? AND payment_status = ?", user.Email, models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&spentBookings)
	config.DB.Model(&models.FoodOrder{}).
		Where("user_email = ? AND payment_status = ?", user.Email, models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&spentFood)

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"username":        user.Username,
		"active_bookings": activeBookings,
		"food_orders":     foodOrders,
		"total_spent":     math.Round(spentBookings + spentFood),
		"loyalty_points":  user.LoyaltyPoints,
	})
}

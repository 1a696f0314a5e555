package controllers

import (
	"errors"
	"math"
	"os"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EnsureAdminAccount creates the admin user from ADMIN_EMAIL and
// ADMIN_PASSWORD if it does not exist yet. Called once at startup.
func EnsureAdminAccount() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			return config.DB.Model(&existing).Update("is_admin", true).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Username: "Administrator",
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded admin account: %s", email)
	return nil
}

// AdminDashboard returns site-wide stats and the most recent bookings
func AdminDashboard(c *gin.Context) {
	utils.LogInfo("AdminDashboard called")

	var totalUsers, totalBookings, totalOrders int64
	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.Booking{}).Count(&totalBookings)
	config.DB.Model(&models.FoodOrder{}).Count(&totalOrders)

	var revenueBookings, revenueFood float64
	config.DB.Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&revenueBookings)
	config.DB.Model(&models.FoodOrder{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_cost), 0)").Scan(&revenueFood)

	var recentBookings []models.Booking
	if err := config.DB.Order("created_at desc").Limit(5).Find(&recentBookings).Error; err != nil {
		utils.LogError("Failed to fetch recent bookings: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	utils.Success(c, "Admin dashboard retrieved successfully", gin.H{
		"stats": gin.H{
			"total_users":    totalUsers,
			"total_bookings": totalBookings,
			"total_orders":   totalOrders,
			"total_revenue":  math.Round(revenueBookings + revenueFood),
		},
		"recent_bookings": recentBookings,
	})
}

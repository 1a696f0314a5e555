package controllers

import (
	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// ListBookings returns all bookings, newest first, optionally filtered by
// a case-insensitive search over email, room type and booking id
func ListBookings(c *gin.Context) {
	utils.LogInfo("ListBookings called")

	pagination := utils.NewPagination(c)
	search := c.Query("search_query")

	query := config.DB.Model(&models.Booking{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(user_email) LIKE LOWER(?) OR LOWER(room_type) LIKE LOWER(?) OR LOWER(booking_id) LIKE LOWER(?)",
			pattern, pattern, pattern)
		utils.LogDebug("Searching bookings for: %s", search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := query.Order("created_at desc").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Bookings retrieved successfully", bookings, pagination)
}

// DeleteBooking removes a booking by its string id
func DeleteBooking(c *gin.Context) {
	utils.LogInfo("DeleteBooking called")

	bookingID := c.Param("booking_id")
	res := config.DB.Where("booking_id = ?", bookingID).Delete(&models.Booking{})
	if res.Error != nil {
		utils.LogError("Failed to delete booking %s: %v", bookingID, res.Error)
		utils.InternalServerError(c, "Failed to delete booking", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, utils.ErrRecordNotFound)
		return
	}

	utils.LogInfo("Deleted booking %s", bookingID)
	utils.Success(c, "Booking deleted successfully.", nil)
}

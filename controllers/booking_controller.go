package controllers

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// RoomType describes one bookable room category
type RoomType struct {
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// RoomCatalog is the static room inventory, priced per night.
var RoomCatalog = map[string]RoomType{
	"Standard Single":    {Price: 1500, Description: "A cozy room for a single traveler."},
	"Standard Double":    {Price: 2500, Description: "Comfortable room with a double bed."},
	"Deluxe Double":      {Price: 5000, Description: "Spacious room with luxury amenities."},
	"Suite":              {Price: 8000, Description: "A large suite with a separate living area."},
	"Presidential Suite": {Price: 15000, Description: "The ultimate in luxury and space."},
}

// ListRooms returns the room catalog
func ListRooms(c *gin.Context) {
	utils.Success(c, "Room catalog retrieved successfully", gin.H{"room_types": RoomCatalog})
}

// BookRoomRequest represents a new booking request
type BookRoomRequest struct {
	RoomType string `json:"room_type" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests" binding:"required,min=1"`
}

// BookRoom creates a new unpaid booking and sends a confirmation email
func BookRoom(c *gin.Context) {
	utils.LogInfo("BookRoom called")

	user := c.MustGet("user").(models.User)

	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid booking request for %s: %v", user.Email, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	room, ok := RoomCatalog[req.RoomType]
	if !ok {
		utils.LogError("Unknown room type %q requested by %s", req.RoomType, user.Email)
		utils.BadRequest(c, "Unknown room type", nil)
		return
	}

	if !utils.ValidateDateString(req.CheckIn) || !utils.ValidateDateString(req.CheckOut) {
		utils.BadRequest(c, "Dates must be in YYYY-MM-DD format", nil)
		return
	}
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		utils.BadRequest(c, "Invalid check-in date", err.Error())
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		utils.BadRequest(c, "Invalid check-out date", err.Error())
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		utils.BadRequest(c, "Check-in date cannot be in the past.", nil)
		return
	}
	if !checkOut.After(checkIn) {
		utils.BadRequest(c, "Check-out date must be after check-in date.", nil)
		return
	}

	numDays := int(checkOut.Sub(checkIn).Hours() / 24)
	totalCost := float64(numDays) * room.Price

	booking := models.Booking{
		BookingID:     utils.NewEntityID(),
		UserEmail:     user.Email,
		RoomType:      req.RoomType,
		RoomNumber:    rand.Intn(150) + 101,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		TotalCost:     totalCost,
		Status:        models.BookingStatusActive,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     time.Now().UTC(),
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		utils.LogError("Failed to create booking for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to create booking", nil)
		return
	}
	utils.LogInfo("Created booking %s for %s, total: %.2f", booking.BookingID, user.Email, totalCost)

	// Email failure never fails the booking.
	emailSent := true
	if err := utils.SendBookingConfirmation(user.Username, &booking); err != nil {
		utils.LogError("Failed to send booking confirmation to %s: %v", user.Email, err)
		emailSent = false
	}

	utils.Created(c, "Room booked successfully! Proceed to billing.", gin.H{
		"booking":    booking,
		"email_sent": emailSent,
	})
}

// MyBookings lists the user's bookings with spending and room-type
// analytics for the dashboard charts
func MyBookings(c *gin.Context) {
	utils.LogInfo("MyBookings called")

	user := c.MustGet("user").(models.User)

	var bookings []models.Booking
	if err := config.DB.Where("user_email = ?", user.Email).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}

	spendingByDate := make(map[string]float64)
	roomCounts := make(map[string]int)
	for _, b := range bookings {
		spendingByDate[b.CheckIn] += b.TotalCost
		roomCounts[b.RoomType]++
	}

	dates := make([]string, 0, len(spendingByDate))
	for d := range spendingByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	spending := make([]float64, 0, len(dates))
	for _, d := range dates {
		spending = append(spending, spendingByDate[d])
	}

	utils.Success(c, "Bookings retrieved successfully", gin.H{
		"bookings": bookings,
		"charts": gin.H{
			"dates":       dates,
			"spending":    spending,
			"room_counts": roomCounts,
		},
	})
}

// CancelBooking marks a booking cancelled. Cancelled bookings are excluded
// from settlement.
func CancelBooking(c *gin.Context) {
	utils.LogInfo("CancelBooking called")

	user := c.MustGet("user").(models.User)
	bookingID := c.Param("booking_id")

	res := config.DB.Model(&models.Booking{}).
		Where("booking_id = ? AND user_email = ? AND status = ?",
			bookingID, user.Email, models.BookingStatusActive).
		Update("status", models.BookingStatusCancelled)
	if res.Error != nil {
		utils.LogError("Failed to cancel booking %s for %s: %v", bookingID, user.Email, res.Error)
		utils.InternalServerError(c, "Failed to cancel booking", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.LogError("Booking not found or not cancellable: %s for %s", bookingID, user.Email)
		utils.NotFound(c, "Could not find or cancel booking.")
		return
	}

	utils.LogInfo("Cancelled booking %s for %s", bookingID, user.Email)
	utils.Success(c, "Booking cancelled successfully.", nil)
}

// GetBookedDates returns every unavailable date for a room type, derived
// from its active bookings
func GetBookedDates(c *gin.Context) {
	roomType := c.Param("room_type")

	var bookings []models.Booking
	if err := config.DB.Where("room_type = ? AND status = ?",
		roomType, models.BookingStatusActive).Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings for room type %s: %v", roomType, err)
		utils.InternalServerError(c, "Failed to fetch booked dates", nil)
		return
	}

	dateSet := make(map[string]bool)
	for _, booking := range bookings {
		start, err := time.Parse(dateLayout, booking.CheckIn)
		if err != nil {
			utils.LogError("Skipping booking %s with bad check-in %q", booking.BookingID, booking.CheckIn)
			continue
		}
		end, err := time.Parse(dateLayout, booking.CheckOut)
		if err != nil {
			utils.LogError("Skipping booking %s with bad check-out %q", booking.BookingID, booking.CheckOut)
			continue
		}
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			dateSet[d.Format(dateLayout)] = true
		}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	utils.Success(c, "Booked dates retrieved successfully", gin.H{"booked_dates": dates})
}

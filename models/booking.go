package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// Payment status constants shared by bookings and food orders
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Booking represents a room reservation. Check-in and check-out are stored
// as YYYY-MM-DD strings; only whole nights are billed.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	BookingID     string    `gorm:"uniqueIndex;not null" json:"booking_id"`
	UserEmail     string    `gorm:"index;not null" json:"user_email"`
	RoomType      string    `json:"room_type"`
	RoomNumber    int       `json:"room_number"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Guests        int       `json:"guests"`
	TotalCost     float64   `json:"total_cost"`
	Status        string    `json:"status" gorm:"default:'active'"`
	PaymentStatus string    `json:"payment_status" gorm:"default:'unpaid'"`
	CreatedAt     time.Time `json:"created_at"`
}

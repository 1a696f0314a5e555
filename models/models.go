package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a hotel guest account
type User struct {
	gorm.Model
	Username      string `gorm:"not null" json:"username"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	Phone         string `json:"phone"`
	IsAdmin       bool   `json:"is_admin" gorm:"default:false"`
	IsBlocked     bool   `json:"is_blocked" gorm:"default:false"`
	LoyaltyPoints int    `json:"loyalty_points" gorm:"default:0"`
}

// Review represents a guest review of the hotel, rooms or food
type Review struct {
	gorm.Model
	UserEmail  string `json:"user_email"`
	Username   string `json:"username"`
	Rating     int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	ReviewType string `json:"review_type"` // hotel, room, food
	Comment    string `json:"comment"`
	ImageFile  string `json:"image_file"`
}

// Contact represents a message submitted through the contact form
type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

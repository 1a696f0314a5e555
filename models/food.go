package models

import (
	"time"
)

// FoodOrder represents a room-service order placed against an active booking
type FoodOrder struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	OrderID       string          `gorm:"uniqueIndex;not null" json:"order_id"`
	UserEmail     string          `gorm:"index;not null" json:"user_email"`
	RoomNumber    int             `json:"room_number"`
	TotalCost     float64         `json:"total_cost"`
	PaymentStatus string          `json:"payment_status" gorm:"default:'unpaid'"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []FoodOrderItem `json:"items" gorm:"foreignKey:FoodOrderID"`
}

// FoodOrderItem is one menu line on a food order
type FoodOrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	FoodOrderID uint    `gorm:"index" json:"-"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CartItem is one menu line in a user's cart. The cart lives in the
// database keyed by user email, not in the session.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserEmail string    `gorm:"index;not null" json:"user_email"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

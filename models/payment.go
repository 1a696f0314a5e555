package models

import (
	"strings"
	"time"
)

// PaymentStatusSuccess is the only status a payment can carry; there is no
// gateway in this system, so a settlement that commits is always paid.
const PaymentStatusSuccess = "success"

// Payment is the immutable record of one settlement: the set of charges it
// covered, the discount math and the method the guest chose. Booking and
// food-order id sets are stored comma-joined; the ids are uuid hex so the
// separator never collides.
type Payment struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	PaymentID       string    `gorm:"uniqueIndex;not null" json:"payment_id"`
	OrderID         string    `gorm:"uniqueIndex;not null" json:"order_id"`
	UserEmail       string    `gorm:"index;not null" json:"user_email"`
	OriginalAmount  float64   `json:"original_amount"`
	DiscountApplied float64   `json:"discount_applied"`
	PromoCode       string    `json:"promo_code"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	BookingIDs      string    `gorm:"type:text" json:"-"`
	FoodOrderIDs    string    `gorm:"type:text" json:"-"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// SettledBookingIDs returns the booking ids this payment covered.
func (p *Payment) SettledBookingIDs() []string {
	return splitIDs(p.BookingIDs)
}

// SettledFoodOrderIDs returns the food order ids this payment covered.
func (p *Payment) SettledFoodOrderIDs() []string {
	return splitIDs(p.FoodOrderIDs)
}

// JoinIDs encodes an id set for storage on a payment record.
func JoinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

package utils

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewEntityID returns a 32-character hex id for bookings, food orders and
// payments.
func NewEntityID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// NewPaymentOrderID returns the short human-facing payment reference,
// format PAY-XXXXXXXX.
func NewPaymentOrderID() string {
	return "PAY-" + strings.ToUpper(NewEntityID()[:8])
}

// ChargeSummary aggregates a user's outstanding charges across both charge
// kinds.
type ChargeSummary struct {
	Bookings     []models.Booking
	FoodOrders   []models.FoodOrder
	BookingTotal float64
	FoodTotal    float64
	GrandTotal   float64
}

// Empty reports whether there is nothing eligible to settle.
func (s *ChargeSummary) Empty() bool {
	return len(s.Bookings) == 0 && len(s.FoodOrders) == 0
}

// GetOutstandingCharges fetches every charge eligible for settlement:
// unpaid active bookings and unpaid food orders.
func GetOutstandingCharges(db *gorm.DB, userEmail string) (*ChargeSummary, error) {
	var summary ChargeSummary

	if err := db.Where("user_email = ? AND payment_status = ? AND status = ?",
		userEmail, models.PaymentStatusUnpaid, models.BookingStatusActive).
		Find(&summary.Bookings).Error; err != nil {
		return nil, WrapError(err, "failed to fetch unpaid bookings")
	}

	if err := db.Preload("Items").
		Where("user_email = ? AND payment_status = ?", userEmail, models.PaymentStatusUnpaid).
		Find(&summary.FoodOrders).Error; err != nil {
		return nil, WrapError(err, "failed to fetch unpaid food orders")
	}

	for _, b := range summary.Bookings {
		summary.BookingTotal += b.TotalCost
	}
	for _, f := range summary.FoodOrders {
		summary.FoodTotal += f.TotalCost
	}
	summary.GrandTotal = summary.BookingTotal + summary.FoodTotal

	return &summary, nil
}

// SettleCharges converts every outstanding charge of a user into one
// payment record, applies the promo discount, flips the settled charges to
// paid and credits loyalty points. The whole sequence runs in one database
// transaction; the status flips are conditional on the charge still being
// unpaid, so a concurrent settlement over the same charges rolls back
// instead of double-charging.
//
// Returns ErrNoPendingCharges when nothing is eligible; in that case no
// payment is created and no state changes.
func SettleCharges(db *gorm.DB, userEmail, paymentMethod, promoRaw string) (*models.Payment, int, error) {
	var payment *models.Payment
	var pointsEarned int

	err := db.Transaction(func(tx *gorm.DB) error {
		summary, err := GetOutstandingCharges(tx, userEmail)
		if err != nil {
			return err
		}
		if summary.Empty() {
			return ErrNoPendingCharges
		}

		originalAmount := summary.GrandTotal

		// The stored code keeps the raw (normalized) input even when it is
		// unknown, for audit. The discount itself only ever comes from the
		// promo table.
		promoCode := NormalizePromoCode(promoRaw)
		var discountApplied float64
		if percent, ok := ResolvePromoCode(promoCode); ok {
			discountApplied = DiscountFor(originalAmount, percent)
		}
		finalAmount := originalAmount - discountApplied

		bookingIDs := make([]string, 0, len(summary.Bookings))
		for _, b := range summary.Bookings {
			bookingIDs = append(bookingIDs, b.BookingID)
		}
		foodOrderIDs := make([]string, 0, len(summary.FoodOrders))
		for _, f := range summary.FoodOrders {
			foodOrderIDs = append(foodOrderIDs, f.OrderID)
		}

		payment = &models.Payment{
			PaymentID:       NewEntityID(),
			OrderID:         NewPaymentOrderID(),
			UserEmail:       userEmail,
			OriginalAmount:  originalAmount,
			DiscountApplied: discountApplied,
			PromoCode:       promoCode,
			Amount:          finalAmount,
			PaymentMethod:   paymentMethod,
			BookingIDs:      models.JoinIDs(bookingIDs),
			FoodOrderIDs:    models.JoinIDs(foodOrderIDs),
			Status:          models.PaymentStatusSuccess,
			CreatedAt:       time.Now().UTC(),
		}
		if err := tx.Create(payment).Error; err != nil {
			return WrapError(err, "failed to record payment")
		}

		if len(bookingIDs) > 0 {
			res := tx.Model(&models.Booking{}).
				Where("booking_id IN ? AND payment_status = ?", bookingIDs, models.PaymentStatusUnpaid).
				Update("payment_status", models.PaymentStatusPaid)
			if res.Error != nil {
				return WrapError(res.Error, "failed to mark bookings paid")
			}
			if res.RowsAffected != int64(len(bookingIDs)) {
				return fmt.Errorf("booking charges changed during settlement: expected %d updates, got %d",
					len(bookingIDs), res.RowsAffected)
			}
		}

		if len(foodOrderIDs) > 0 {
			res := tx.Model(&models.FoodOrder{}).
				Where("order_id IN ? AND payment_status = ?", foodOrderIDs, models.PaymentStatusUnpaid).
				Update("payment_status", models.PaymentStatusPaid)
			if res.Error != nil {
				return WrapError(res.Error, "failed to mark food orders paid")
			}
			if res.RowsAffected != int64(len(foodOrderIDs)) {
				return fmt.Errorf("food order charges changed during settlement: expected %d updates, got %d",
					len(foodOrderIDs), res.RowsAffected)
			}
		}

		pointsEarned = LoyaltyPointsFor(finalAmount)
		if pointsEarned > 0 {
			if err := tx.Model(&models.User{}).
				Where("email = ?", userEmail).
				UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", pointsEarned)).Error; err != nil {
				return WrapError(err, "failed to credit loyalty points")
			}
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return payment, pointsEarned, nil
}

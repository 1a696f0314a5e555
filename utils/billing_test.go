package utils_test

import (
	"strings"
	"testing"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")
	require.NoError(t, config.MigrateModels(db), "failed to migrate models")
	return db
}

func seedGuest(t *testing.T, db *gorm.DB, email string) {
	require.NoError(t, db.Create(&models.User{
		Username: strings.Split(email, "@")[0],
		Email:    email,
		Password: "not-a-real-hash",
	}).Error)
}

func seedBooking(t *testing.T, db *gorm.DB, email string, cost float64) *models.Booking {
	booking := &models.Booking{
		BookingID:     utils.NewEntityID(),
		UserEmail:     email,
		RoomType:      "Deluxe Double",
		RoomNumber:    204,
		CheckIn:       "2026-09-01",
		CheckOut:      "2026-09-03",
		Guests:        2,
		TotalCost:     cost,
		Status:        models.BookingStatusActive,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func seedFoodOrder(t *testing.T, db *gorm.DB, email string, cost float64) *models.FoodOrder {
	order := &models.FoodOrder{
		OrderID:       utils.NewEntityID(),
		UserEmail:     email,
		RoomNumber:    204,
		TotalCost:     cost,
		PaymentStatus: models.PaymentStatusUnpaid,
		Items: []models.FoodOrderItem{
			{Name: "Butter Chicken", Price: cost, Quantity: 1},
		},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestGetOutstandingCharges(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")
	seedBooking(t, db, "guest@example.com", 5000)
	seedFoodOrder(t, db, "guest@example.com", 450)

	// Charges that must not count: cancelled, already paid, other guest
	cancelled := seedBooking(t, db, "guest@example.com", 9999)
	require.NoError(t, db.Model(cancelled).Update("status", models.BookingStatusCancelled).Error)
	paid := seedFoodOrder(t, db, "guest@example.com", 9999)
	require.NoError(t, db.Model(paid).Update("payment_status", models.PaymentStatusPaid).Error)
	seedBooking(t, db, "other@example.com", 9999)

	summary, err := utils.GetOutstandingCharges(db, "guest@example.com")
	require.NoError(t, err)
	assert.Len(t, summary.Bookings, 1)
	assert.Len(t, summary.FoodOrders, 1)
	assert.Equal(t, 5000.0, summary.BookingTotal)
	assert.Equal(t, 450.0, summary.FoodTotal)
	assert.Equal(t, 5450.0, summary.GrandTotal)
	assert.False(t, summary.Empty())

	// Food order items come back with the order
	require.Len(t, summary.FoodOrders[0].Items, 1)
	assert.Equal(t, "Butter Chicken", summary.FoodOrders[0].Items[0].Name)
}

func TestSettleChargesWithPromo(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")
	booking := seedBooking(t, db, "guest@example.com", 5000)
	order := seedFoodOrder(t, db, "guest@example.com", 450)

	payment, points, err := utils.SettleCharges(db, "guest@example.com", "card", "bombaat")
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.Equal(t, 5450.0, payment.OriginalAmount)
	assert.Equal(t, 1090.0, payment.DiscountApplied)
	assert.Equal(t, 4360.0, payment.Amount)
	assert.Equal(t, "BOMBAAT", payment.PromoCode)
	assert.Equal(t, "card", payment.PaymentMethod)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, 43, points)
	assert.True(t, strings.HasPrefix(payment.OrderID, "PAY-"))
	assert.Len(t, payment.OrderID, 12)

	assert.Equal(t, []string{booking.BookingID}, payment.SettledBookingIDs())
	assert.Equal(t, []string{order.OrderID}, payment.SettledFoodOrderIDs())

	// Both charges flipped to paid
	var gotBooking models.Booking
	require.NoError(t, db.Where("booking_id = ?", booking.BookingID).First(&gotBooking).Error)
	assert.Equal(t, models.PaymentStatusPaid, gotBooking.PaymentStatus)

	var gotOrder models.FoodOrder
	require.NoError(t, db.Where("order_id = ?", order.OrderID).First(&gotOrder).Error)
	assert.Equal(t, models.PaymentStatusPaid, gotOrder.PaymentStatus)

	// Loyalty points credited
	var guest models.User
	require.NoError(t, db.Where("email = ?", "guest@example.com").First(&guest).Error)
	assert.Equal(t, 43, guest.LoyaltyPoints)
}

func TestSettleChargesUnknownPromoCode(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")
	seedBooking(t, db, "guest@example.com", 5000)
	seedFoodOrder(t, db, "guest@example.com", 450)

	payment, points, err := utils.SettleCharges(db, "guest@example.com", "upi", "nope")
	require.NoError(t, err)

	// Unknown codes never fail the settlement; full price, code kept for audit
	assert.Equal(t, 5450.0, payment.OriginalAmount)
	assert.Equal(t, 0.0, payment.DiscountApplied)
	assert.Equal(t, 5450.0, payment.Amount)
	assert.Equal(t, "NOPE", payment.PromoCode)
	assert.Equal(t, 54, points)
}

func TestSettleChargesNoPendingCharges(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")

	payment, points, err := utils.SettleCharges(db, "guest@example.com", "card", "")
	assert.ErrorIs(t, err, utils.ErrNoPendingCharges)
	assert.Nil(t, payment)
	assert.Equal(t, 0, points)

	// Nothing was recorded
	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSettleChargesTwiceOnlyChargesOnce(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")
	seedBooking(t, db, "guest@example.com", 5000)

	_, _, err := utils.SettleCharges(db, "guest@example.com", "card", "")
	require.NoError(t, err)

	_, _, err = utils.SettleCharges(db, "guest@example.com", "card", "")
	assert.ErrorIs(t, err, utils.ErrNoPendingCharges)

	var guest models.User
	require.NoError(t, db.Where("email = ?", "guest@example.com").First(&guest).Error)
	assert.Equal(t, 50, guest.LoyaltyPoints)
}

func TestSettleChargesLeavesOtherGuestsAlone(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")
	seedGuest(t, db, "other@example.com")
	seedBooking(t, db, "guest@example.com", 3000)
	otherBooking := seedBooking(t, db, "other@example.com", 7000)

	payment, _, err := utils.SettleCharges(db, "guest@example.com", "card", "")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, payment.OriginalAmount)

	var got models.Booking
	require.NoError(t, db.Where("booking_id = ?", otherBooking.BookingID).First(&got).Error)
	assert.Equal(t, models.PaymentStatusUnpaid, got.PaymentStatus)

	var other models.User
	require.NoError(t, db.Where("email = ?", "other@example.com").First(&other).Error)
	assert.Equal(t, 0, other.LoyaltyPoints)
}

func TestSettleChargesAccumulatesLoyaltyPoints(t *testing.T) {
	db := setupTestDB(t)
	seedGuest(t, db, "guest@example.com")

	seedBooking(t, db, "guest@example.com", 1500)
	_, points, err := utils.SettleCharges(db, "guest@example.com", "card", "")
	require.NoError(t, err)
	assert.Equal(t, 15, points)

	seedFoodOrder(t, db, "guest@example.com", 450)
	_, points, err = utils.SettleCharges(db, "guest@example.com", "card", "")
	require.NoError(t, err)
	assert.Equal(t, 4, points)

	var guest models.User
	require.NoError(t, db.Where("email = ?", "guest@example.com").First(&guest).Error)
	assert.Equal(t, 19, guest.LoyaltyPoints)
}

func TestNewPaymentOrderID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := utils.NewPaymentOrderID()
		assert.True(t, strings.HasPrefix(id, "PAY-"))
		assert.Len(t, id, 12)
		assert.Equal(t, strings.ToUpper(id), id)
		assert.False(t, seen[id], "order ids must not repeat")
		seen[id] = true
	}
}

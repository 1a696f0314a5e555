package controllers_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/controllers"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayment(discount float64) *models.Payment {
	original := 5450.0
	code := ""
	if discount > 0 {
		code = "BOMBAAT"
	}
	return &models.Payment{
		PaymentID:       "a1b2c3d4e5f60718293a4b5c6d7e8f90",
		OrderID:         "PAY-A1B2C3D4",
		UserEmail:       "guest@example.com",
		OriginalAmount:  original,
		DiscountApplied: discount,
		PromoCode:       code,
		Amount:          original - discount,
		PaymentMethod:   "card",
		Status:          models.PaymentStatusSuccess,
		CreatedAt:       time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func sampleCharges() ([]models.Booking, []models.FoodOrder) {
	bookings := []models.Booking{{
		BookingID: "0011223344556677889900aabbccddee",
		UserEmail: "guest@example.com",
		RoomType:  "Deluxe Double",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-03",
		TotalCost: 5000,
	}}
	orders := []models.FoodOrder{{
		OrderID:   "ffeeddccbbaa00998877665544332211",
		UserEmail: "guest@example.com",
		TotalCost: 450,
		Items: []models.FoodOrderItem{
			{Name: "Butter Chicken", Price: 450, Quantity: 1},
		},
	}}
	return bookings, orders
}

func TestBuildInvoicePDF(t *testing.T) {
	bookings, orders := sampleCharges()
	pdf := controllers.BuildInvoicePDF(samplePayment(1090), bookings, orders)
	require.NotNil(t, pdf)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output must be a PDF document")
	assert.Greater(t, buf.Len(), 1000, "invoice should not be empty")
}

func TestBuildInvoicePDFWithoutDiscount(t *testing.T) {
	bookings, orders := sampleCharges()

	plain := controllers.BuildInvoicePDF(samplePayment(0), bookings, orders)
	discounted := controllers.BuildInvoicePDF(samplePayment(1090), bookings, orders)

	var plainBuf, discountedBuf bytes.Buffer
	require.NoError(t, plain.Output(&plainBuf))
	require.NoError(t, discounted.Output(&discountedBuf))

	assert.True(t, strings.HasPrefix(plainBuf.String(), "%PDF"))
	// The discounted invoice carries extra subtotal and discount lines
	assert.NotEqual(t, plainBuf.Len(), discountedBuf.Len())
}

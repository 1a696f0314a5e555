package models_test

import (
	"testing"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSettledIDs(t *testing.T) {
	p := models.Payment{
		BookingIDs:   models.JoinIDs([]string{"aaa", "bbb"}),
		FoodOrderIDs: models.JoinIDs([]string{"ccc"}),
	}
	assert.Equal(t, []string{"aaa", "bbb"}, p.SettledBookingIDs())
	assert.Equal(t, []string{"ccc"}, p.SettledFoodOrderIDs())
}

func TestPaymentSettledIDsEmpty(t *testing.T) {
	var p models.Payment
	assert.Nil(t, p.SettledBookingIDs())
	assert.Nil(t, p.SettledFoodOrderIDs())
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "", models.JoinIDs(nil))
	assert.Equal(t, "aaa", models.JoinIDs([]string{"aaa"}))
	assert.Equal(t, "aaa,bbb,ccc", models.JoinIDs([]string{"aaa", "bbb", "ccc"}))
}

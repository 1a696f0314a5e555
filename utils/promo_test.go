package utils_test

import (
	"testing"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePromoCode(t *testing.T) {
	assert.Equal(t, "BOMBAAT", utils.NormalizePromoCode("bombaat"))
	assert.Equal(t, "BOMBAAT", utils.NormalizePromoCode("  Bombaat  "))
	assert.Equal(t, "NOPE", utils.NormalizePromoCode("nope"))
	assert.Equal(t, "", utils.NormalizePromoCode("   "))
}

func TestResolvePromoCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		percent int
		valid   bool
	}{
		{"known code", "BOMBAAT", 20, true},
		{"known code lowercase", "sakkath", 10, true},
		{"known code padded", " welcome ", 5, true},
		{"unknown code", "NOPE", 0, false},
		{"empty code", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, ok := utils.ResolvePromoCode(tt.code)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.percent, percent)
		})
	}
}

func TestDiscountFor(t *testing.T) {
	assert.Equal(t, 1090.0, utils.DiscountFor(5450, 20))
	assert.Equal(t, 545.0, utils.DiscountFor(5450, 10))
	assert.Equal(t, 0.0, utils.DiscountFor(5450, 0))
}

func TestLoyaltyPointsFor(t *testing.T) {
	assert.Equal(t, 43, utils.LoyaltyPointsFor(4360))
	assert.Equal(t, 54, utils.LoyaltyPointsFor(5450))
	assert.Equal(t, 0, utils.LoyaltyPointsFor(99.99))
	assert.Equal(t, 1, utils.LoyaltyPointsFor(100))
	assert.Equal(t, 0, utils.LoyaltyPointsFor(0))
	assert.Equal(t, 0, utils.LoyaltyPointsFor(-50))
}

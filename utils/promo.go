package utils

import (
	"math"
	"strings"
)

// PromoCodes maps a promo code to its discount percentage. The table is
// static configuration; the discount value is always recomputed from it
// server-side, never taken from client input.
var PromoCodes = map[string]int{
	"SAKKATH": 10,
	"BOMBAAT": 20,
	"WELCOME": 5,
}

// NormalizePromoCode uppercases and trims a client-supplied promo code.
func NormalizePromoCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ResolvePromoCode looks up a promo code case-insensitively and returns its
// discount percentage. Unknown codes resolve to zero percent.
func ResolvePromoCode(raw string) (int, bool) {
	percent, ok := PromoCodes[NormalizePromoCode(raw)]
	return percent, ok
}

// DiscountFor computes the discount amount for an original total at the
// given percentage.
func DiscountFor(original float64, percent int) float64 {
	return original * float64(percent) / 100
}

// LoyaltyPointsFor returns the points earned for a paid amount: one point
// per full 100 units, never negative.
func LoyaltyPointsFor(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount / float64(LoyaltyPointsDivisor)))
}

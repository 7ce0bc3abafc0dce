package pricing

import (
	"math"

	"hotelDeskAI/domain"
)

// occupancy tiers; both boundaries are inclusive on the upper side
const (
	surgeOccupancy   = 0.85
	healthyOccupancy = 0.70
)

// fixed discount off P50 when demand is soft
const softDiscount = 100.0

// multiplicative bumps per tier and mode
const (
	surgeBumpAggressive = 0.05
	surgeBumpNeutral    = 0.02

	healthyBumpAggressive = 0.02
	healthyBumpNeutral    = 0.01

	softBumpAggressive = -0.02
	softBumpNeutral    = -0.01
)

// SuggestPrice maps an occupancy forecast and competitor reference prices to
// a suggested nightly rate. It is pure and total: every occupancy in [0,1]
// and every mode produces a deterministic price. Unrecognized modes price
// like conservative (no bump).
//
// Surge (occ >= 0.85) anchors on P75 with a positive bump, healthy
// (0.70 <= occ < 0.85) on P50 with a smaller bump, soft demand on P50 minus
// a fixed discount with a zero-or-negative bump that discounts harder the
// more aggressive the mode.
func SuggestPrice(occupancy, compP50, compP75 float64, mode domain.PricingMode) int {
	var base, bump float64

	switch {
	case occupancy >= surgeOccupancy:
		base = compP75
		switch mode {
		case domain.ModeAggressive:
			bump = surgeBumpAggressive
		case domain.ModeNeutral:
			bump = surgeBumpNeutral
		}
	case occupancy >= healthyOccupancy:
		base = compP50
		switch mode {
		case domain.ModeAggressive:
			bump = healthyBumpAggressive
		case domain.ModeNeutral:
			bump = healthyBumpNeutral
		}
	default:
		base = compP50 - softDiscount
		switch mode {
		case domain.ModeAggressive:
			bump = softBumpAggressive
		case domain.ModeNeutral:
			bump = softBumpNeutral
		}
	}

	return int(math.Round(base * (1 + bump)))
}

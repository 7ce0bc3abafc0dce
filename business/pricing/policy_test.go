package pricing

import (
	"testing"

	"hotelDeskAI/domain"
)

func TestSuggestPriceTiers(t *testing.T) {
	cases := []struct {
		name      string
		occupancy float64
		p50       float64
		p75       float64
		mode      domain.PricingMode
		want      int
	}{
		{"surge neutral", 0.90, 3200, 3600, domain.ModeNeutral, 3672},
		{"surge aggressive", 0.90, 3200, 3600, domain.ModeAggressive, 3780},
		{"surge conservative", 0.90, 3200, 3600, domain.ModeConservative, 3600},
		{"surge boundary inclusive", 0.85, 3200, 3600, domain.ModeConservative, 3600},
		{"healthy neutral", 0.75, 3200, 3600, domain.ModeNeutral, 3232},
		{"healthy aggressive", 0.75, 3200, 3600, domain.ModeAggressive, 3264},
		{"healthy boundary inclusive", 0.70, 3200, 3600, domain.ModeConservative, 3200},
		{"soft conservative", 0.50, 3200, 3600, domain.ModeConservative, 3100},
		{"soft neutral", 0.50, 3200, 3600, domain.ModeNeutral, 3069},
		{"soft aggressive discounts harder", 0.50, 3200, 3600, domain.ModeAggressive, 3038},
		{"just below surge uses p50", 0.8499, 3200, 3600, domain.ModeConservative, 3200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SuggestPrice(tc.occupancy, tc.p50, tc.p75, tc.mode)
			if got != tc.want {
				t.Errorf("SuggestPrice(%v, %v, %v, %s) = %d, want %d",
					tc.occupancy, tc.p50, tc.p75, tc.mode, got, tc.want)
			}
		})
	}
}

func TestSuggestPriceTotal(t *testing.T) {
	modes := []domain.PricingMode{domain.ModeConservative, domain.ModeNeutral, domain.ModeAggressive}

	for _, mode := range modes {
		for i := 0; i <= 1000; i++ {
			occ := float64(i) / 1000
			price := SuggestPrice(occ, 3200, 3600, mode)
			if price <= 0 {
				t.Fatalf("SuggestPrice(%v, 3200, 3600, %s) = %d, want positive", occ, mode, price)
			}
		}
	}
}

func TestSuggestPriceModeOrdering(t *testing.T) {
	// surge and healthy bumps grow with aggressiveness, soft discounts deepen
	surge := []int{
		SuggestPrice(0.9, 3200, 3600, domain.ModeConservative),
		SuggestPrice(0.9, 3200, 3600, domain.ModeNeutral),
		SuggestPrice(0.9, 3200, 3600, domain.ModeAggressive),
	}
	if !(surge[0] < surge[1] && surge[1] < surge[2]) {
		t.Errorf("surge prices not increasing with aggressiveness: %v", surge)
	}

	soft := []int{
		SuggestPrice(0.5, 3200, 3600, domain.ModeConservative),
		SuggestPrice(0.5, 3200, 3600, domain.ModeNeutral),
		SuggestPrice(0.5, 3200, 3600, domain.ModeAggressive),
	}
	if !(soft[0] > soft[1] && soft[1] > soft[2]) {
		t.Errorf("soft prices not decreasing with aggressiveness: %v", soft)
	}
}

func TestSuggestPriceUnknownModeActsConservative(t *testing.T) {
	got := SuggestPrice(0.9, 3200, 3600, domain.PricingMode("bogus"))
	want := SuggestPrice(0.9, 3200, 3600, domain.ModeConservative)
	if got != want {
		t.Errorf("unknown mode priced %d, want conservative %d", got, want)
	}
}

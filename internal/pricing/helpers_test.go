package pricing

import (
	"math"
	"testing"

	"github.com/printadmin/storformat/internal/domain"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func f64(v float64) *float64 { return &v }

func tier(from float64, to *float64, price float64, anchor bool, markup float64) domain.Tier {
	return domain.Tier{FromAreaM2: from, ToAreaM2: to, PricePerM2: price, IsAnchor: anchor, MarkupPct: markup}
}

// twoStepMaterial is 100 kr/m² up to 1 m² and 80 kr/m² above.
func twoStepMaterial() *domain.Material {
	return &domain.Material{
		ID:   "banner-510",
		Name: "Banner 510g",
		Pricing: domain.PerArea{Tiers: []domain.Tier{
			tier(0, f64(1), 100, true, 0),
			tier(1, nil, 80, true, 0),
		}},
	}
}

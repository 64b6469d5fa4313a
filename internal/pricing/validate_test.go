package pricing

import (
	"errors"
	"testing"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []domain.Tier
		wantErr bool
	}{
		{name: "empty", tiers: nil},
		{
			name: "shared boundaries",
			tiers: []domain.Tier{
				tier(0, f64(1), 100, true, 0),
				tier(1, f64(5), 90, false, 0),
				tier(5, nil, 80, true, 0),
			},
		},
		{
			name: "gap is allowed",
			tiers: []domain.Tier{
				tier(0, f64(1), 100, true, 0),
				tier(2, nil, 80, true, 0),
			},
		},
		{
			name: "overlap",
			tiers: []domain.Tier{
				tier(0, f64(2), 100, true, 0),
				tier(1, nil, 80, true, 0),
			},
			wantErr: true,
		},
		{
			name: "after unbounded",
			tiers: []domain.Tier{
				tier(0, nil, 100, true, 0),
				tier(3, nil, 80, true, 0),
			},
			wantErr: true,
		},
		{
			name: "unsorted",
			tiers: []domain.Tier{
				tier(3, nil, 80, true, 0),
				tier(0, f64(3), 100, true, 0),
			},
			wantErr: true,
		},
		{name: "inverted range", tiers: []domain.Tier{tier(3, f64(1), 80, true, 0)}, wantErr: true},
		{name: "negative price", tiers: []domain.Tier{tier(0, nil, -1, true, 0)}, wantErr: true},
		{name: "negative area", tiers: []domain.Tier{tier(-1, nil, 1, true, 0)}, wantErr: true},
		{name: "markup below -100", tiers: []domain.Tier{tier(0, nil, 1, false, -150)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiers(tt.tiers)
			if tt.wantErr {
				if !errors.Is(err, constants.ErrInvalidTiers) {
					t.Fatalf("err = %v, want ErrInvalidTiers", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateTiers: %v", err)
			}
		})
	}
}

func TestValidateProduct_FixedPrices(t *testing.T) {
	p := &domain.Product{Name: "Roll-up", Pricing: domain.FixedQuantity{
		Prices: []domain.QuantityPrice{{Quantity: 1, Price: 50}, {Quantity: 1, Price: 40}},
	}}
	if err := ValidateProduct(p); !errors.Is(err, constants.ErrInvalidPricing) {
		t.Fatalf("duplicate quantity: err = %v", err)
	}

	p.Pricing = domain.FixedQuantity{Prices: []domain.QuantityPrice{{Quantity: 0, Price: 50}}}
	if err := ValidateProduct(p); !errors.Is(err, constants.ErrInvalidPricing) {
		t.Fatalf("zero quantity: err = %v", err)
	}

	p.Pricing = domain.FixedQuantity{InitialPrice: 10, Prices: []domain.QuantityPrice{{Quantity: 1, Price: 50}}}
	if err := ValidateProduct(p); err != nil {
		t.Fatalf("valid product: %v", err)
	}
}

func TestValidateFinish(t *testing.T) {
	if err := ValidateFinish(&domain.Finish{Name: "none"}); !errors.Is(err, constants.ErrInvalidPricing) {
		t.Fatalf("nil pricing: err = %v", err)
	}
	if err := ValidateFinish(&domain.Finish{Name: "eyelets", Pricing: domain.FixedUnit{PricePerUnit: -2}}); err == nil {
		t.Fatal("negative unit price accepted")
	}
	overlap := domain.PerArea{Tiers: []domain.Tier{tier(0, f64(2), 1, true, 0), tier(1, nil, 1, true, 0)}}
	if err := ValidateFinish(&domain.Finish{Name: "laminate", Pricing: overlap}); !errors.Is(err, constants.ErrInvalidTiers) {
		t.Fatalf("overlap: err = %v", err)
	}
}

func TestValidateMaterial(t *testing.T) {
	m := twoStepMaterial()
	if err := ValidateMaterial(m); err != nil {
		t.Fatalf("valid material: %v", err)
	}

	m.MaxWidthMm = f64(0)
	if err := ValidateMaterial(m); !errors.Is(err, constants.ErrInvalidPricing) {
		t.Fatalf("zero max width: err = %v", err)
	}

	m = twoStepMaterial()
	m.MarkupPct = -101
	if err := ValidateMaterial(m); !errors.Is(err, constants.ErrInvalidPricing) {
		t.Fatalf("markup: err = %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(domain.Config{RoundingStepKr: -1}); err == nil {
		t.Fatal("negative rounding step accepted")
	}
	if err := ValidateConfig(domain.Config{RoundingStepKr: 5, GlobalMarkupPct: 25}); err != nil {
		t.Fatalf("valid config: %v", err)
	}
}

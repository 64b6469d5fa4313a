package pricing

import (
	"fmt"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

const minMarkupPct = -100

// ValidateTiers rejects tier lists the resolver cannot price deterministically:
// negative values, inverted ranges, unsorted input and overlapping ranges.
// Adjacent tiers may share a boundary.
func ValidateTiers(tiers []domain.Tier) error {
	for i, t := range tiers {
		switch {
		case t.FromAreaM2 < 0:
			return tierErr(i, "from_area_m2 is negative")
		case t.PricePerM2 < 0:
			return tierErr(i, "price_per_m2 is negative")
		case t.MarkupPct < minMarkupPct:
			return tierErr(i, "markup_pct is below -100")
		case t.ToAreaM2 != nil && *t.ToAreaM2 < t.FromAreaM2:
			return tierErr(i, "to_area_m2 is below from_area_m2")
		}

		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		if t.FromAreaM2 < prev.FromAreaM2 {
			return tierErr(i, "tiers are not sorted by from_area_m2")
		}
		if prev.ToAreaM2 == nil {
			return tierErr(i, fmt.Sprintf("overlaps unbounded tier starting at %g m²", prev.FromAreaM2))
		}
		if t.FromAreaM2 < *prev.ToAreaM2 {
			return tierErr(i, fmt.Sprintf("overlaps tier %g–%g m²", prev.FromAreaM2, *prev.ToAreaM2))
		}
	}
	return nil
}

func tierErr(i int, msg string) error {
	return fmt.Errorf("%w: tier %d: %s", constants.ErrInvalidTiers, i, msg)
}

func ValidateMaterial(m *domain.Material) error {
	if err := validateMarkup(m.MarkupPct); err != nil {
		return fmt.Errorf("material %q: %w", m.Name, err)
	}
	if (m.MaxWidthMm != nil && *m.MaxWidthMm <= 0) || (m.MaxHeightMm != nil && *m.MaxHeightMm <= 0) {
		return fmt.Errorf("%w: material %q: max size must be positive", constants.ErrInvalidPricing, m.Name)
	}
	if err := ValidateTiers(m.Pricing.Tiers); err != nil {
		return fmt.Errorf("material %q: %w", m.Name, err)
	}
	return nil
}

func ValidateFinish(f *domain.Finish) error {
	if err := validateMarkup(f.MarkupPct); err != nil {
		return fmt.Errorf("finish %q: %w", f.Name, err)
	}
	switch p := f.Pricing.(type) {
	case domain.PerArea:
		if err := ValidateTiers(p.Tiers); err != nil {
			return fmt.Errorf("finish %q: %w", f.Name, err)
		}
	case domain.FixedUnit:
		if p.PricePerUnit < 0 {
			return fmt.Errorf("%w: finish %q: negative unit price", constants.ErrInvalidPricing, f.Name)
		}
	default:
		return fmt.Errorf("%w: finish %q: unsupported pricing %T", constants.ErrInvalidPricing, f.Name, f.Pricing)
	}
	return nil
}

func ValidateProduct(p *domain.Product) error {
	if err := validateMarkup(p.MarkupPct); err != nil {
		return fmt.Errorf("product %q: %w", p.Name, err)
	}
	switch pr := p.Pricing.(type) {
	case domain.PerArea:
		if err := ValidateTiers(pr.Tiers); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
	case domain.FixedQuantity:
		if pr.InitialPrice < 0 {
			return fmt.Errorf("%w: product %q: negative initial price", constants.ErrInvalidPricing, p.Name)
		}
		seen := make(map[int]struct{}, len(pr.Prices))
		for _, qp := range pr.Prices {
			if qp.Quantity < 1 || qp.Price < 0 {
				return fmt.Errorf("%w: product %q: invalid fixed price for quantity %d", constants.ErrInvalidPricing, p.Name, qp.Quantity)
			}
			if _, dup := seen[qp.Quantity]; dup {
				return fmt.Errorf("%w: product %q: duplicate fixed price for quantity %d", constants.ErrInvalidPricing, p.Name, qp.Quantity)
			}
			seen[qp.Quantity] = struct{}{}
		}
	default:
		return fmt.Errorf("%w: product %q: unsupported pricing %T", constants.ErrInvalidPricing, p.Name, p.Pricing)
	}
	return nil
}

func ValidateConfig(c domain.Config) error {
	if c.RoundingStepKr < 0 {
		return fmt.Errorf("%w: rounding_step_kr is negative", constants.ErrInvalidPricing)
	}
	return validateMarkup(c.GlobalMarkupPct)
}

func validateMarkup(pct float64) error {
	if pct < minMarkupPct {
		return fmt.Errorf("%w: markup %g%% is below -100%%", constants.ErrInvalidPricing, pct)
	}
	return nil
}

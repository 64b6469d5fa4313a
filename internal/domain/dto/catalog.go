package dto

import (
	"fmt"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

type Tier struct {
	FromAreaM2 float64  `json:"from_area_m2" validate:"gte=0"`
	ToAreaM2   *float64 `json:"to_area_m2" validate:"omitempty,gte=0"`
	PricePerM2 float64  `json:"price_per_m2" validate:"gte=0"`
	IsAnchor   bool     `json:"is_anchor"`
	MarkupPct  float64  `json:"markup_pct" validate:"gte=-100"`
}

type QuantityPrice struct {
	Quantity int     `json:"quantity" validate:"gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type Material struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name" validate:"required,max=200"`
	GroupLabel           *string  `json:"group_label"`
	Tiers                []Tier   `json:"tiers" validate:"dive"`
	InterpolationEnabled bool     `json:"interpolation_enabled"`
	MarkupPct            float64  `json:"markup_pct" validate:"gte=-100"`
	MaxWidthMm           *float64 `json:"max_width_mm" validate:"omitempty,gt=0"`
	MaxHeightMm          *float64 `json:"max_height_mm" validate:"omitempty,gt=0"`
	AllowSplit           bool     `json:"allow_split"`
	SortOrder            int      `json:"sort_order"`
}

type Finish struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name" validate:"required,max=200"`
	GroupLabel           *string            `json:"group_label"`
	PricingMode          domain.PricingMode `json:"pricing_mode" validate:"required,oneof=per_m2 fixed"`
	Tiers                []Tier             `json:"tiers,omitempty" validate:"dive"`
	InterpolationEnabled bool               `json:"interpolation_enabled"`
	FixedPricePerUnit    *float64           `json:"fixed_price_per_unit,omitempty" validate:"omitempty,gte=0"`
	MarkupPct            float64            `json:"markup_pct" validate:"gte=-100"`
	SortOrder            int                `json:"sort_order"`
}

type Product struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name" validate:"required,max=200"`
	GroupLabel           *string            `json:"group_label"`
	PricingMode          domain.PricingMode `json:"pricing_mode" validate:"required,oneof=per_m2 fixed"`
	Tiers                []Tier             `json:"tiers,omitempty" validate:"dive"`
	InterpolationEnabled bool               `json:"interpolation_enabled"`
	InitialPrice         *float64           `json:"initial_price,omitempty" validate:"omitempty,gte=0"`
	FixedPrices          []QuantityPrice    `json:"fixed_prices,omitempty" validate:"dive"`
	MarkupPct            float64            `json:"markup_pct" validate:"gte=-100"`
	SortOrder            int                `json:"sort_order"`
}

func tiersToDomain(in []Tier) []domain.Tier {
	out := make([]domain.Tier, 0, len(in))
	for _, t := range in {
		out = append(out, domain.Tier(t))
	}
	return out
}

func tiersFromDomain(in []domain.Tier) []Tier {
	out := make([]Tier, 0, len(in))
	for _, t := range in {
		out = append(out, Tier(t))
	}
	return out
}

func (m *Material) ToDomain() *domain.Material {
	return &domain.Material{
		ID:         m.ID,
		Name:       m.Name,
		GroupLabel: m.GroupLabel,
		Pricing: domain.PerArea{
			Tiers:                tiersToDomain(m.Tiers),
			InterpolationEnabled: m.InterpolationEnabled,
		},
		MarkupPct:   m.MarkupPct,
		MaxWidthMm:  m.MaxWidthMm,
		MaxHeightMm: m.MaxHeightMm,
		AllowSplit:  m.AllowSplit,
		SortOrder:   m.SortOrder,
	}
}

func MaterialFromDomain(m *domain.Material) *Material {
	return &Material{
		ID:                   m.ID,
		Name:                 m.Name,
		GroupLabel:           m.GroupLabel,
		Tiers:                tiersFromDomain(m.Pricing.Tiers),
		InterpolationEnabled: m.Pricing.InterpolationEnabled,
		MarkupPct:            m.MarkupPct,
		MaxWidthMm:           m.MaxWidthMm,
		MaxHeightMm:          m.MaxHeightMm,
		AllowSplit:           m.AllowSplit,
		SortOrder:            m.SortOrder,
	}
}

// ToDomain rejects payloads that mix the fields of both pricing modes.
func (f *Finish) ToDomain() (*domain.Finish, error) {
	out := &domain.Finish{
		ID:         f.ID,
		Name:       f.Name,
		GroupLabel: f.GroupLabel,
		MarkupPct:  f.MarkupPct,
		SortOrder:  f.SortOrder,
	}

	switch f.PricingMode {
	case domain.PricingModePerM2:
		if f.FixedPricePerUnit != nil {
			return nil, fmt.Errorf("%w: finish %q: fixed_price_per_unit set in per_m2 mode", constants.ErrInvalidPricing, f.Name)
		}
		out.Pricing = domain.PerArea{Tiers: tiersToDomain(f.Tiers), InterpolationEnabled: f.InterpolationEnabled}
	case domain.PricingModeFixed:
		if f.FixedPricePerUnit == nil {
			return nil, fmt.Errorf("%w: finish %q: fixed mode needs fixed_price_per_unit", constants.ErrInvalidPricing, f.Name)
		}
		if len(f.Tiers) > 0 {
			return nil, fmt.Errorf("%w: finish %q: tiers set in fixed mode", constants.ErrInvalidPricing, f.Name)
		}
		out.Pricing = domain.FixedUnit{PricePerUnit: *f.FixedPricePerUnit}
	default:
		return nil, fmt.Errorf("%w: finish %q: unknown pricing mode %q", constants.ErrInvalidPricing, f.Name, f.PricingMode)
	}

	return out, nil
}

func FinishFromDomain(f *domain.Finish) *Finish {
	out := &Finish{
		ID:         f.ID,
		Name:       f.Name,
		GroupLabel: f.GroupLabel,
		MarkupPct:  f.MarkupPct,
		SortOrder:  f.SortOrder,
	}
	if f.Pricing != nil {
		out.PricingMode = f.Pricing.Mode()
	}
	switch p := f.Pricing.(type) {
	case domain.PerArea:
		out.Tiers = tiersFromDomain(p.Tiers)
		out.InterpolationEnabled = p.InterpolationEnabled
	case domain.FixedUnit:
		price := p.PricePerUnit
		out.FixedPricePerUnit = &price
	}
	return out
}

// ToDomain rejects payloads that mix the fields of both pricing modes.
func (p *Product) ToDomain() (*domain.Product, error) {
	out := &domain.Product{
		ID:         p.ID,
		Name:       p.Name,
		GroupLabel: p.GroupLabel,
		MarkupPct:  p.MarkupPct,
		SortOrder:  p.SortOrder,
	}

	switch p.PricingMode {
	case domain.PricingModePerM2:
		if p.InitialPrice != nil || len(p.FixedPrices) > 0 {
			return nil, fmt.Errorf("%w: product %q: fixed prices set in per_m2 mode", constants.ErrInvalidPricing, p.Name)
		}
		out.Pricing = domain.PerArea{Tiers: tiersToDomain(p.Tiers), InterpolationEnabled: p.InterpolationEnabled}
	case domain.PricingModeFixed:
		if len(p.Tiers) > 0 {
			return nil, fmt.Errorf("%w: product %q: tiers set in fixed mode", constants.ErrInvalidPricing, p.Name)
		}
		fixed := domain.FixedQuantity{Prices: make([]domain.QuantityPrice, 0, len(p.FixedPrices))}
		if p.InitialPrice != nil {
			fixed.InitialPrice = *p.InitialPrice
		}
		for _, qp := range p.FixedPrices {
			fixed.Prices = append(fixed.Prices, domain.QuantityPrice(qp))
		}
		out.Pricing = fixed
	default:
		return nil, fmt.Errorf("%w: product %q: unknown pricing mode %q", constants.ErrInvalidPricing, p.Name, p.PricingMode)
	}

	return out, nil
}

func ProductFromDomain(p *domain.Product) *Product {
	out := &Product{
		ID:         p.ID,
		Name:       p.Name,
		GroupLabel: p.GroupLabel,
		MarkupPct:  p.MarkupPct,
		SortOrder:  p.SortOrder,
	}
	if p.Pricing != nil {
		out.PricingMode = p.Pricing.Mode()
	}
	switch pr := p.Pricing.(type) {
	case domain.PerArea:
		out.Tiers = tiersFromDomain(pr.Tiers)
		out.InterpolationEnabled = pr.InterpolationEnabled
	case domain.FixedQuantity:
		initial := pr.InitialPrice
		out.InitialPrice = &initial
		for _, qp := range pr.Prices {
			out.FixedPrices = append(out.FixedPrices, QuantityPrice(qp))
		}
	}
	return out
}

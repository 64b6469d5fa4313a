package pricing

import (
	"fmt"
	"math"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

const mm2PerM2 = 1_000_000

// MaxDimensionMm bounds each side of a request; 1 km is far past any roll width.
const MaxDimensionMm = 1_000_000

// Calculate prices a storformat request. Per-area factors are summed per m² and
// scaled by area and quantity; flat factors are added once. The grand total is
// rounded to Config.RoundingStepKr as the last step.
func Calculate(req domain.PriceRequest) (*domain.PriceResult, error) {
	if req.Material == nil {
		return nil, constants.ErrMissingMaterial
	}
	if !positive(req.WidthMm) || !positive(req.HeightMm) {
		return nil, fmt.Errorf("%w: got %gx%g mm", constants.ErrInvalidDimensions, req.WidthMm, req.HeightMm)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", constants.ErrInvalidQuantity, req.Quantity)
	}

	split, err := DetectSplit(req.Material, req.WidthMm, req.HeightMm)
	if err != nil {
		return nil, err
	}

	area := req.WidthMm * req.HeightMm / mm2PerM2
	if math.IsInf(area, 0) || math.IsNaN(area) {
		return nil, fmt.Errorf("%w: area overflows", constants.ErrInvalidDimensions)
	}
	global := req.Config.GlobalMarkupPct

	res := &domain.PriceResult{
		TotalAreaM2:        area,
		MaterialPricePerM2: perAreaPrice(req.Material.Pricing, area, req.Material.MarkupPct, global),
		SplitInfo:          split,
	}

	if f := req.Finish; f != nil {
		switch p := f.Pricing.(type) {
		case domain.PerArea:
			res.FinishPricePerM2 = perAreaPrice(p, area, f.MarkupPct, global)
		case domain.FixedUnit:
			res.FinishFlatPrice = ApplyMarkups(p.PricePerUnit, f.MarkupPct, global) * float64(req.Quantity)
		default:
			return nil, fmt.Errorf("%w: finish %s has %T pricing", constants.ErrInvalidPricing, f.ID, f.Pricing)
		}
	}

	if p := req.Product; p != nil {
		switch pr := p.Pricing.(type) {
		case domain.PerArea:
			res.ProductPricePerM2 = perAreaPrice(pr, area, p.MarkupPct, global)
		case domain.FixedQuantity:
			matched, ok := pr.PriceFor(req.Quantity)
			res.ProductFlatPrice = pr.InitialPrice + matched
			res.UnmatchedQuantity = !ok
		default:
			return nil, fmt.Errorf("%w: product %s has %T pricing", constants.ErrInvalidPricing, p.ID, p.Pricing)
		}
	}

	perM2 := decimal.NewFromFloat(res.MaterialPricePerM2).
		Add(decimal.NewFromFloat(res.FinishPricePerM2)).
		Add(decimal.NewFromFloat(res.ProductPricePerM2))

	total := perM2.
		Mul(decimal.NewFromFloat(area)).
		Mul(decimal.NewFromInt(int64(req.Quantity))).
		Add(decimal.NewFromFloat(res.FinishFlatPrice)).
		Add(decimal.NewFromFloat(res.ProductFlatPrice))

	res.TotalPrice = roundDecimal(total, req.Config.RoundingStepKr).InexactFloat64()
	return res, nil
}

func positive(v float64) bool {
	return v > 0 && v <= MaxDimensionMm && !math.IsNaN(v)
}

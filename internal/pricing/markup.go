package pricing

import "github.com/printadmin/storformat/internal/domain"

// ApplyMarkups folds item and global markup percentages into base. Both are
// multiplicative: -50% item and +100% global leave base unchanged.
func ApplyMarkups(base, itemMarkupPct, globalMarkupPct float64) float64 {
	return base * (1 + itemMarkupPct/100) * (1 + globalMarkupPct/100)
}

func perAreaPrice(p domain.PerArea, area, itemMarkupPct, globalMarkupPct float64) float64 {
	base := ResolveBasePrice(p.Tiers, area, p.InterpolationEnabled)
	return ApplyMarkups(base, itemMarkupPct, globalMarkupPct)
}

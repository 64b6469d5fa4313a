package pricing

import (
	"sort"

	"github.com/printadmin/storformat/internal/domain"
)

// ResolveBasePrice returns the unit price per m² for area before item and global
// markups. Tier markup is already included in the returned value.
func ResolveBasePrice(tiers []domain.Tier, area float64, interpolationEnabled bool) float64 {
	if len(tiers) == 0 {
		return 0
	}

	sorted := sortTiers(tiers)
	covering := coveringTier(sorted, area)

	if interpolationEnabled {
		if price, ok := interpolate(sorted, covering, area); ok {
			return price
		}
	}

	return covering.MarkedUpPrice()
}

// sortTiers returns a copy ordered by FromAreaM2; equal bounds keep input order.
func sortTiers(tiers []domain.Tier) []domain.Tier {
	sorted := make([]domain.Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FromAreaM2 < sorted[j].FromAreaM2
	})
	return sorted
}

// coveringTier picks the first tier containing area. Below the first tier the
// first tier is used; an area no tier covers (a gap, or past the last bounded
// tier) gets the zero tier, which prices at 0.
func coveringTier(sorted []domain.Tier, area float64) domain.Tier {
	if area < sorted[0].FromAreaM2 {
		return sorted[0]
	}
	for _, t := range sorted {
		if t.Covers(area) {
			return t
		}
	}
	return domain.Tier{}
}

func anchors(sorted []domain.Tier) []domain.Tier {
	out := make([]domain.Tier, 0, len(sorted))
	for _, t := range sorted {
		if t.IsAnchor && t.PricePerM2 > 0 {
			out = append(out, t)
		}
	}
	return out
}

func interpolate(sorted []domain.Tier, covering domain.Tier, area float64) (float64, bool) {
	points := anchors(sorted)
	if len(points) < 2 {
		return 0, false
	}

	var before, after *domain.Tier
	for i := range points {
		p := &points[i]
		if p.FromAreaM2 <= area {
			before = p
		} else if after == nil {
			after = p
		}
	}
	if before != nil && before.FromAreaM2 == area {
		return before.MarkedUpPrice(), true
	}
	if before == nil || after == nil {
		return 0, false
	}

	// a marked-up intermediate tier is a manual point on the curve
	if !covering.IsAnchor && covering.MarkupPct != 0 {
		return covering.MarkedUpPrice(), true
	}

	t := (area - before.FromAreaM2) / (after.FromAreaM2 - before.FromAreaM2)
	lo, hi := before.MarkedUpPrice(), after.MarkedUpPrice()
	return lo + t*(hi-lo), true
}

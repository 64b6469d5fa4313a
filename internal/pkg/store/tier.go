package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/store/xpgx"
)

var tierColumns = []string{"item_kind", "item_id", "position", "from_area_m2", "to_area_m2", "price_per_m2", "is_anchor", "markup_pct"}

type tierRow struct {
	ItemKind   string   `db:"item_kind"`
	ItemID     string   `db:"item_id"`
	Position   int      `db:"position"`
	FromAreaM2 float64  `db:"from_area_m2"`
	ToAreaM2   *float64 `db:"to_area_m2"`
	PricePerM2 float64  `db:"price_per_m2"`
	IsAnchor   bool     `db:"is_anchor"`
	MarkupPct  float64  `db:"markup_pct"`
}

func (r tierRow) toDomain() domain.Tier {
	return domain.Tier{
		FromAreaM2: r.FromAreaM2,
		ToAreaM2:   r.ToAreaM2,
		PricePerM2: r.PricePerM2,
		IsAnchor:   r.IsAnchor,
		MarkupPct:  r.MarkupPct,
	}
}

// selectTiersQuery loads tiers of one kind, optionally restricted to a single item.
func selectTiersQuery(kind itemKind, itemID *string) sq.SelectBuilder {
	query := builder().Select(tierColumns...).
		From(tableTiers).
		Where(sq.Eq{"item_kind": string(kind)}).
		OrderBy("item_id", "position")

	if itemID != nil {
		query = query.Where(sq.Eq{"item_id": *itemID})
	}
	return query
}

func insertTiersQuery(kind itemKind, itemID string, tiers []domain.Tier) sq.InsertBuilder {
	query := builder().Insert(tableTiers).Columns(tierColumns...)
	for i, t := range tiers {
		query = query.Values(string(kind), itemID, i, t.FromAreaM2, t.ToAreaM2, t.PricePerM2, t.IsAnchor, t.MarkupPct)
	}
	return query
}

func deleteTiersQuery(kind itemKind, itemID string) sq.DeleteBuilder {
	return builder().Delete(tableTiers).
		Where(sq.Eq{"item_kind": string(kind), "item_id": itemID})
}

// loadTiers returns tiers grouped by item id, in stored order.
func loadTiers(ctx context.Context, q xpgx.Querier, kind itemKind, itemID *string) (map[string][]domain.Tier, error) {
	rows, err := xpgx.Selectx[tierRow](ctx, q, selectTiersQuery(kind, itemID))
	if err != nil {
		return nil, fmt.Errorf("select %s tiers: %w", kind, err)
	}

	grouped := make(map[string][]domain.Tier)
	for _, r := range rows {
		grouped[r.ItemID] = append(grouped[r.ItemID], r.toDomain())
	}
	return grouped, nil
}

func replaceTiers(ctx context.Context, q xpgx.Querier, kind itemKind, itemID string, tiers []domain.Tier) error {
	if _, err := xpgx.Execx(ctx, q, deleteTiersQuery(kind, itemID)); err != nil {
		return fmt.Errorf("delete %s tiers: %w", kind, err)
	}
	if len(tiers) == 0 {
		return nil
	}
	if _, err := xpgx.Execx(ctx, q, insertTiersQuery(kind, itemID, tiers)); err != nil {
		return fmt.Errorf("insert %s tiers: %w", kind, err)
	}
	return nil
}

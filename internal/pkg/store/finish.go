package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/logger"
	"github.com/printadmin/storformat/internal/pkg/store/xpgx"
)

var finishColumns = []string{"id", "name", "group_label", "pricing_mode", "interpolation_enabled", "fixed_price_per_unit", "markup_pct", "sort_order"}

type finishRow struct {
	ID                   string   `db:"id"`
	Name                 string   `db:"name"`
	GroupLabel           *string  `db:"group_label"`
	PricingMode          string   `db:"pricing_mode"`
	InterpolationEnabled bool     `db:"interpolation_enabled"`
	FixedPricePerUnit    *float64 `db:"fixed_price_per_unit"`
	MarkupPct            float64  `db:"markup_pct"`
	SortOrder            int      `db:"sort_order"`
}

func (r finishRow) toDomain(tiers []domain.Tier) (*domain.Finish, error) {
	f := &domain.Finish{
		ID:         r.ID,
		Name:       r.Name,
		GroupLabel: r.GroupLabel,
		MarkupPct:  r.MarkupPct,
		SortOrder:  r.SortOrder,
	}

	switch domain.PricingMode(r.PricingMode) {
	case domain.PricingModePerM2:
		f.Pricing = domain.PerArea{Tiers: tiers, InterpolationEnabled: r.InterpolationEnabled}
	case domain.PricingModeFixed:
		var price float64
		if r.FixedPricePerUnit != nil {
			price = *r.FixedPricePerUnit
		}
		f.Pricing = domain.FixedUnit{PricePerUnit: price}
	default:
		return nil, fmt.Errorf("%w: finish %s has pricing mode %q", constants.ErrInvalidPricing, r.ID, r.PricingMode)
	}

	return f, nil
}

func finishToRow(f *domain.Finish) finishRow {
	row := finishRow{
		ID:         f.ID,
		Name:       f.Name,
		GroupLabel: f.GroupLabel,
		MarkupPct:  f.MarkupPct,
		SortOrder:  f.SortOrder,
	}
	switch p := f.Pricing.(type) {
	case domain.PerArea:
		row.PricingMode = string(domain.PricingModePerM2)
		row.InterpolationEnabled = p.InterpolationEnabled
	case domain.FixedUnit:
		row.PricingMode = string(domain.PricingModeFixed)
		price := p.PricePerUnit
		row.FixedPricePerUnit = &price
	}
	return row
}

func finishTiers(f *domain.Finish) []domain.Tier {
	if p, ok := f.Pricing.(domain.PerArea); ok {
		return p.Tiers
	}
	return nil
}

func upsertFinishQuery(f *domain.Finish) sq.InsertBuilder {
	r := finishToRow(f)
	return builder().Insert(tableFinishes).
		Columns(finishColumns...).
		Values(r.ID, r.Name, r.GroupLabel, r.PricingMode, r.InterpolationEnabled, r.FixedPricePerUnit, r.MarkupPct, r.SortOrder).
		Suffix(`
on conflict (id)
do update
set
	name = excluded.name,
	group_label = excluded.group_label,
	pricing_mode = excluded.pricing_mode,
	interpolation_enabled = excluded.interpolation_enabled,
	fixed_price_per_unit = excluded.fixed_price_per_unit,
	markup_pct = excluded.markup_pct,
	sort_order = excluded.sort_order,
	updated_at = now()`)
}

func (s *store) ListFinishes(ctx context.Context) ([]*domain.Finish, error) {
	query := builder().Select(finishColumns...).
		From(tableFinishes).
		OrderBy("sort_order", "name")

	rows, err := xpgx.Selectx[finishRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, fmt.Errorf("select finishes: %w", err)
	}

	tiers, err := loadTiers(ctx, s.pool, kindFinish, nil)
	if err != nil {
		return nil, err
	}

	finishes := make([]*domain.Finish, 0, len(rows))
	for _, r := range rows {
		f, err := r.toDomain(tiers[r.ID])
		if err != nil {
			return nil, err
		}
		finishes = append(finishes, f)
	}
	return finishes, nil
}

func (s *store) GetFinish(ctx context.Context, id string) (*domain.Finish, error) {
	query := builder().Select(finishColumns...).
		From(tableFinishes).
		Where(sq.Eq{"id": id})

	row, err := xpgx.Getx[finishRow](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select finish %s: %w", id, wrapErr(err))
	}

	tiers, err := loadTiers(ctx, s.pool, kindFinish, &id)
	if err != nil {
		return nil, err
	}

	return row.toDomain(tiers[id])
}

func (s *store) UpsertFinish(ctx context.Context, f *domain.Finish) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := xpgx.Execx(ctx, tx, upsertFinishQuery(f)); err != nil {
			logger.Errorf(ctx, "upsertFinish: %s", err.Error())
			return fmt.Errorf("upsert finish %s: %w", f.ID, err)
		}
		return replaceTiers(ctx, tx, kindFinish, f.ID, finishTiers(f))
	})
}

func (s *store) DeleteFinish(ctx context.Context, id string) error {
	return deleteItem(ctx, s.pool, tableFinishes, kindFinish, id)
}

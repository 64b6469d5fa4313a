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

var materialColumns = []string{"id", "name", "group_label", "interpolation_enabled", "markup_pct", "max_width_mm", "max_height_mm", "allow_split", "sort_order"}

type materialRow struct {
	ID                   string   `db:"id"`
	Name                 string   `db:"name"`
	GroupLabel           *string  `db:"group_label"`
	InterpolationEnabled bool     `db:"interpolation_enabled"`
	MarkupPct            float64  `db:"markup_pct"`
	MaxWidthMm           *float64 `db:"max_width_mm"`
	MaxHeightMm          *float64 `db:"max_height_mm"`
	AllowSplit           bool     `db:"allow_split"`
	SortOrder            int      `db:"sort_order"`
}

func (r materialRow) toDomain(tiers []domain.Tier) *domain.Material {
	return &domain.Material{
		ID:          r.ID,
		Name:        r.Name,
		GroupLabel:  r.GroupLabel,
		Pricing:     domain.PerArea{Tiers: tiers, InterpolationEnabled: r.InterpolationEnabled},
		MarkupPct:   r.MarkupPct,
		MaxWidthMm:  r.MaxWidthMm,
		MaxHeightMm: r.MaxHeightMm,
		AllowSplit:  r.AllowSplit,
		SortOrder:   r.SortOrder,
	}
}

func upsertMaterialQuery(m *domain.Material) sq.InsertBuilder {
	return builder().Insert(tableMaterials).
		Columns(materialColumns...).
		Values(m.ID, m.Name, m.GroupLabel, m.Pricing.InterpolationEnabled, m.MarkupPct, m.MaxWidthMm, m.MaxHeightMm, m.AllowSplit, m.SortOrder).
		Suffix(`
on conflict (id)
do update
set
	name = excluded.name,
	group_label = excluded.group_label,
	interpolation_enabled = excluded.interpolation_enabled,
	markup_pct = excluded.markup_pct,
	max_width_mm = excluded.max_width_mm,
	max_height_mm = excluded.max_height_mm,
	allow_split = excluded.allow_split,
	sort_order = excluded.sort_order,
	updated_at = now()`)
}

func (s *store) ListMaterials(ctx context.Context) ([]*domain.Material, error) {
	query := builder().Select(materialColumns...).
		From(tableMaterials).
		OrderBy("sort_order", "name")

	rows, err := xpgx.Selectx[materialRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, fmt.Errorf("select materials: %w", err)
	}

	tiers, err := loadTiers(ctx, s.pool, kindMaterial, nil)
	if err != nil {
		return nil, err
	}

	materials := make([]*domain.Material, 0, len(rows))
	for _, r := range rows {
		materials = append(materials, r.toDomain(tiers[r.ID]))
	}
	return materials, nil
}

func (s *store) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	query := builder().Select(materialColumns...).
		From(tableMaterials).
		Where(sq.Eq{"id": id})

	row, err := xpgx.Getx[materialRow](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select material %s: %w", id, wrapErr(err))
	}

	tiers, err := loadTiers(ctx, s.pool, kindMaterial, &id)
	if err != nil {
		return nil, err
	}

	return row.toDomain(tiers[id]), nil
}

func (s *store) UpsertMaterial(ctx context.Context, m *domain.Material) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := xpgx.Execx(ctx, tx, upsertMaterialQuery(m)); err != nil {
			logger.Errorf(ctx, "upsertMaterial: %s", err.Error())
			return fmt.Errorf("upsert material %s: %w", m.ID, err)
		}
		return replaceTiers(ctx, tx, kindMaterial, m.ID, m.Pricing.Tiers)
	})
}

func (s *store) DeleteMaterial(ctx context.Context, id string) error {
	return deleteItem(ctx, s.pool, tableMaterials, kindMaterial, id)
}

// deleteItem removes an item and its tiers; fixed prices cascade in the schema.
func deleteItem(ctx context.Context, pool Pool, table string, kind itemKind, id string) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := xpgx.Execx(ctx, tx, deleteTiersQuery(kind, id)); err != nil {
			return fmt.Errorf("delete %s tiers: %w", kind, err)
		}

		tag, err := xpgx.Execx(ctx, tx, builder().Delete(table).Where(sq.Eq{"id": id}))
		if err != nil {
			return fmt.Errorf("delete %s %s: %w", kind, id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("delete %s %s: %w", kind, id, constants.ErrDBNotFound)
		}
		return nil
	})
}

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/store/xpgx"
)

// storformat_configs holds a single row.
const configRowID = 1

func (s *store) GetConfig(ctx context.Context) (*domain.Config, error) {
	query := builder().Select("rounding_step_kr", "global_markup_pct").
		From(tableConfigs).
		Where(sq.Eq{"id": configRowID})

	cfg, err := xpgx.Getx[domain.Config](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select config: %w", wrapErr(err))
	}
	return &cfg, nil
}

func updateConfigQuery(cfg domain.Config) sq.InsertBuilder {
	return builder().Insert(tableConfigs).
		Columns("id", "rounding_step_kr", "global_markup_pct").
		Values(configRowID, cfg.RoundingStepKr, cfg.GlobalMarkupPct).
		Suffix(`
on conflict (id)
do update
set
	rounding_step_kr = excluded.rounding_step_kr,
	global_markup_pct = excluded.global_markup_pct,
	updated_at = now()`)
}

func (s *store) UpdateConfig(ctx context.Context, cfg domain.Config) error {
	if _, err := xpgx.Execx(ctx, s.pool, updateConfigQuery(cfg)); err != nil {
		return fmt.Errorf("upsert config: %w", err)
	}
	return nil
}

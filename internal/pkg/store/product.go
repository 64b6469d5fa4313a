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

var (
	productColumns    = []string{"id", "name", "group_label", "pricing_mode", "interpolation_enabled", "initial_price", "markup_pct", "sort_order"}
	fixedPriceColumns = []string{"product_id", "quantity", "price"}
)

type productRow struct {
	ID                   string   `db:"id"`
	Name                 string   `db:"name"`
	GroupLabel           *string  `db:"group_label"`
	PricingMode          string   `db:"pricing_mode"`
	InterpolationEnabled bool     `db:"interpolation_enabled"`
	InitialPrice         *float64 `db:"initial_price"`
	MarkupPct            float64  `db:"markup_pct"`
	SortOrder            int      `db:"sort_order"`
}

type fixedPriceRow struct {
	ProductID string  `db:"product_id"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}

func (r productRow) toDomain(tiers []domain.Tier, prices []domain.QuantityPrice) (*domain.Product, error) {
	p := &domain.Product{
		ID:         r.ID,
		Name:       r.Name,
		GroupLabel: r.GroupLabel,
		MarkupPct:  r.MarkupPct,
		SortOrder:  r.SortOrder,
	}

	switch domain.PricingMode(r.PricingMode) {
	case domain.PricingModePerM2:
		p.Pricing = domain.PerArea{Tiers: tiers, InterpolationEnabled: r.InterpolationEnabled}
	case domain.PricingModeFixed:
		fixed := domain.FixedQuantity{Prices: prices}
		if r.InitialPrice != nil {
			fixed.InitialPrice = *r.InitialPrice
		}
		p.Pricing = fixed
	default:
		return nil, fmt.Errorf("%w: product %s has pricing mode %q", constants.ErrInvalidPricing, r.ID, r.PricingMode)
	}

	return p, nil
}

func productToRow(p *domain.Product) productRow {
	row := productRow{
		ID:         p.ID,
		Name:       p.Name,
		GroupLabel: p.GroupLabel,
		MarkupPct:  p.MarkupPct,
		SortOrder:  p.SortOrder,
	}
	switch pr := p.Pricing.(type) {
	case domain.PerArea:
		row.PricingMode = string(domain.PricingModePerM2)
		row.InterpolationEnabled = pr.InterpolationEnabled
	case domain.FixedQuantity:
		row.PricingMode = string(domain.PricingModeFixed)
		initial := pr.InitialPrice
		row.InitialPrice = &initial
	}
	return row
}

func upsertProductQuery(p *domain.Product) sq.InsertBuilder {
	r := productToRow(p)
	return builder().Insert(tableProducts).
		Columns(productColumns...).
		Values(r.ID, r.Name, r.GroupLabel, r.PricingMode, r.InterpolationEnabled, r.InitialPrice, r.MarkupPct, r.SortOrder).
		Suffix(`
on conflict (id)
do update
set
	name = excluded.name,
	group_label = excluded.group_label,
	pricing_mode = excluded.pricing_mode,
	interpolation_enabled = excluded.interpolation_enabled,
	initial_price = excluded.initial_price,
	markup_pct = excluded.markup_pct,
	sort_order = excluded.sort_order,
	updated_at = now()`)
}

func insertFixedPricesQuery(productID string, prices []domain.QuantityPrice) sq.InsertBuilder {
	query := builder().Insert(tableFixedPrices).Columns(fixedPriceColumns...)
	for _, qp := range prices {
		query = query.Values(productID, qp.Quantity, qp.Price)
	}
	return query
}

func loadFixedPrices(ctx context.Context, q xpgx.Querier, productID *string) (map[string][]domain.QuantityPrice, error) {
	query := builder().Select(fixedPriceColumns...).
		From(tableFixedPrices).
		OrderBy("product_id", "quantity")
	if productID != nil {
		query = query.Where(sq.Eq{"product_id": *productID})
	}

	rows, err := xpgx.Selectx[fixedPriceRow](ctx, q, query)
	if err != nil {
		return nil, fmt.Errorf("select fixed prices: %w", err)
	}

	grouped := make(map[string][]domain.QuantityPrice)
	for _, r := range rows {
		grouped[r.ProductID] = append(grouped[r.ProductID], domain.QuantityPrice{Quantity: r.Quantity, Price: r.Price})
	}
	return grouped, nil
}

func (s *store) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query := builder().Select(productColumns...).
		From(tableProducts).
		OrderBy("sort_order", "name")

	rows, err := xpgx.Selectx[productRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, fmt.Errorf("select products: %w", err)
	}

	tiers, err := loadTiers(ctx, s.pool, kindProduct, nil)
	if err != nil {
		return nil, err
	}
	prices, err := loadFixedPrices(ctx, s.pool, nil)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, r := range rows {
		p, err := r.toDomain(tiers[r.ID], prices[r.ID])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := builder().Select(productColumns...).
		From(tableProducts).
		Where(sq.Eq{"id": id})

	row, err := xpgx.Getx[productRow](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select product %s: %w", id, wrapErr(err))
	}

	tiers, err := loadTiers(ctx, s.pool, kindProduct, &id)
	if err != nil {
		return nil, err
	}
	prices, err := loadFixedPrices(ctx, s.pool, &id)
	if err != nil {
		return nil, err
	}

	return row.toDomain(tiers[id], prices[id])
}

func (s *store) UpsertProduct(ctx context.Context, p *domain.Product) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := xpgx.Execx(ctx, tx, upsertProductQuery(p)); err != nil {
			logger.Errorf(ctx, "upsertProduct: %s", err.Error())
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}

		var (
			tiers  []domain.Tier
			prices []domain.QuantityPrice
		)
		switch pr := p.Pricing.(type) {
		case domain.PerArea:
			tiers = pr.Tiers
		case domain.FixedQuantity:
			prices = pr.Prices
		}

		if err := replaceTiers(ctx, tx, kindProduct, p.ID, tiers); err != nil {
			return err
		}

		deletePrices := builder().Delete(tableFixedPrices).Where(sq.Eq{"product_id": p.ID})
		if _, err := xpgx.Execx(ctx, tx, deletePrices); err != nil {
			return fmt.Errorf("delete fixed prices: %w", err)
		}
		if len(prices) == 0 {
			return nil
		}
		if _, err := xpgx.Execx(ctx, tx, insertFixedPricesQuery(p.ID, prices)); err != nil {
			return fmt.Errorf("insert fixed prices: %w", err)
		}
		return nil
	})
}

func (s *store) DeleteProduct(ctx context.Context, id string) error {
	return deleteItem(ctx, s.pool, tableProducts, kindProduct, id)
}

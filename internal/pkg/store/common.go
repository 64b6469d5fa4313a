package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

const (
	tableMaterials   = "storformat_materials"
	tableFinishes    = "storformat_finishes"
	tableProducts    = "storformat_products"
	tableTiers       = "storformat_tiers"
	tableFixedPrices = "storformat_product_fixed_prices"
	tableConfigs     = "storformat_configs"
)

type itemKind string

const (
	kindMaterial itemKind = "material"
	kindFinish   itemKind = "finish"
	kindProduct  itemKind = "product"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

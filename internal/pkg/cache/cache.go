package cache

import (
	"context"

	"github.com/printadmin/storformat/internal/domain"
)

// QuoteCache stores computed quotes until the catalog or config changes.
type QuoteCache interface {
	Get(ctx context.Context, key string) (*domain.PriceResult, bool, error)
	Set(ctx context.Context, key string, res *domain.PriceResult) error
	// Invalidate drops every cached quote.
	Invalidate(ctx context.Context) error
}

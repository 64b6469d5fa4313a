package storformat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/cache"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/events"
	"github.com/printadmin/storformat/internal/pkg/logger"
	"github.com/printadmin/storformat/internal/pkg/store"
	"github.com/printadmin/storformat/internal/pricing"
)

const (
	kindMaterial = "material"
	kindFinish   = "finish"
	kindProduct  = "product"
	kindConfig   = "config"
)

const defaultTableWorkers = 8

type Service struct {
	store    store.Store
	cache    cache.QuoteCache
	events   events.Publisher
	defaults domain.Config

	tableWorkers int
	now          func() time.Time
}

func NewStorformatService(store store.Store, cache cache.QuoteCache, publisher events.Publisher, defaults domain.Config) *Service {
	return &Service{
		store:        store,
		cache:        cache,
		events:       publisher,
		defaults:     defaults,
		tableWorkers: defaultTableWorkers,
		now:          time.Now,
	}
}

// Config returns the stored pricing config, or the configured defaults when none is saved yet.
func (s *Service) Config(ctx context.Context) (*domain.Config, error) {
	cfg, err := s.store.GetConfig(ctx)
	if errors.Is(err, constants.ErrDBNotFound) {
		defaults := s.defaults
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.GetConfig: %w", err)
	}
	return cfg, nil
}

func (s *Service) UpdateConfig(ctx context.Context, cfg domain.Config) (*domain.Config, error) {
	if err := pricing.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.store.UpdateConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("store.UpdateConfig: %w", err)
	}
	if err := s.catalogChanged(ctx, kindConfig, "", events.ActionUpserted); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// catalogChanged drops cached quotes and notifies subscribers. A failed publish
// is only logged; the write itself already succeeded.
func (s *Service) catalogChanged(ctx context.Context, kind, id string, action events.Action) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}

	evt := events.CatalogEvent{Kind: kind, ItemID: id, Action: action, At: s.now().UTC()}
	if err := s.events.Publish(ctx, evt); err != nil {
		logger.Errorf(ctx, "publish %s %s event for %q: %v", kind, action, id, err)
	}
	return nil
}

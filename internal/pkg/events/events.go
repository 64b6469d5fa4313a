package events

import (
	"context"
	"time"
)

type Action string

const (
	ActionUpserted Action = "upserted"
	ActionDeleted  Action = "deleted"
)

// CatalogEvent tells storefront consumers that cached storformat prices are stale.
type CatalogEvent struct {
	Kind   string    `json:"kind"`
	ItemID string    `json:"item_id"`
	Action Action    `json:"action"`
	At     time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, evt CatalogEvent) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, CatalogEvent) error { return nil }
func (NopPublisher) Close() error                                { return nil }

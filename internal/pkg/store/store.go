package store

import (
	"context"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ListMaterials(ctx context.Context) ([]*domain.Material, error)
	GetMaterial(ctx context.Context, id string) (*domain.Material, error)
	UpsertMaterial(ctx context.Context, material *domain.Material) error
	DeleteMaterial(ctx context.Context, id string) error

	ListFinishes(ctx context.Context) ([]*domain.Finish, error)
	GetFinish(ctx context.Context, id string) (*domain.Finish, error)
	UpsertFinish(ctx context.Context, finish *domain.Finish) error
	DeleteFinish(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpsertProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetConfig(ctx context.Context) (*domain.Config, error)
	UpdateConfig(ctx context.Context, cfg domain.Config) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

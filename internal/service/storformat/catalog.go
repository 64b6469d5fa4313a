package storformat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/printadmin/storformat/internal/domain/dto"
	"github.com/printadmin/storformat/internal/pkg/events"
	"github.com/printadmin/storformat/internal/pricing"
)

func (s *Service) ListMaterials(ctx context.Context) ([]*dto.Material, error) {
	materials, err := s.store.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListMaterials: %w", err)
	}

	out := make([]*dto.Material, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.MaterialFromDomain(m))
	}
	return out, nil
}

func (s *Service) GetMaterial(ctx context.Context, id string) (*dto.Material, error) {
	m, err := s.store.GetMaterial(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetMaterial: %w", err)
	}
	return dto.MaterialFromDomain(m), nil
}

// SaveMaterial creates the material when it has no ID, otherwise replaces it.
func (s *Service) SaveMaterial(ctx context.Context, in *dto.Material) (*dto.Material, error) {
	m := in.ToDomain()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if err := pricing.ValidateMaterial(m); err != nil {
		return nil, err
	}

	if err := s.store.UpsertMaterial(ctx, m); err != nil {
		return nil, fmt.Errorf("store.UpsertMaterial: %w", err)
	}
	if err := s.catalogChanged(ctx, kindMaterial, m.ID, events.ActionUpserted); err != nil {
		return nil, err
	}
	return dto.MaterialFromDomain(m), nil
}

func (s *Service) DeleteMaterial(ctx context.Context, id string) error {
	if err := s.store.DeleteMaterial(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteMaterial: %w", err)
	}
	return s.catalogChanged(ctx, kindMaterial, id, events.ActionDeleted)
}

func (s *Service) ListFinishes(ctx context.Context) ([]*dto.Finish, error) {
	finishes, err := s.store.ListFinishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListFinishes: %w", err)
	}

	out := make([]*dto.Finish, 0, len(finishes))
	for _, f := range finishes {
		out = append(out, dto.FinishFromDomain(f))
	}
	return out, nil
}

func (s *Service) GetFinish(ctx context.Context, id string) (*dto.Finish, error) {
	f, err := s.store.GetFinish(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetFinish: %w", err)
	}
	return dto.FinishFromDomain(f), nil
}

func (s *Service) SaveFinish(ctx context.Context, in *dto.Finish) (*dto.Finish, error) {
	f, err := in.ToDomain()
	if err != nil {
		return nil, err
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if err := pricing.ValidateFinish(f); err != nil {
		return nil, err
	}

	if err := s.store.UpsertFinish(ctx, f); err != nil {
		return nil, fmt.Errorf("store.UpsertFinish: %w", err)
	}
	if err := s.catalogChanged(ctx, kindFinish, f.ID, events.ActionUpserted); err != nil {
		return nil, err
	}
	return dto.FinishFromDomain(f), nil
}

func (s *Service) DeleteFinish(ctx context.Context, id string) error {
	if err := s.store.DeleteFinish(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteFinish: %w", err)
	}
	return s.catalogChanged(ctx, kindFinish, id, events.ActionDeleted)
}

func (s *Service) ListProducts(ctx context.Context) ([]*dto.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListProducts: %w", err)
	}

	out := make([]*dto.Product, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductFromDomain(p))
	}
	return out, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*dto.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetProduct: %w", err)
	}
	return dto.ProductFromDomain(p), nil
}

func (s *Service) SaveProduct(ctx context.Context, in *dto.Product) (*dto.Product, error) {
	p, err := in.ToDomain()
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := pricing.ValidateProduct(p); err != nil {
		return nil, err
	}

	if err := s.store.UpsertProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("store.UpsertProduct: %w", err)
	}
	if err := s.catalogChanged(ctx, kindProduct, p.ID, events.ActionUpserted); err != nil {
		return nil, err
	}
	return dto.ProductFromDomain(p), nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteProduct: %w", err)
	}
	return s.catalogChanged(ctx, kindProduct, id, events.ActionDeleted)
}

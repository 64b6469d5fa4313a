package storformat

import (
	"context"
	"fmt"

	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/domain/dto"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/logger"
	"github.com/printadmin/storformat/internal/pricing"
	"golang.org/x/sync/errgroup"
)

type quoteInputs struct {
	material *domain.Material
	finish   *domain.Finish
	product  *domain.Product
	config   domain.Config
}

func (in quoteInputs) request(widthMm, heightMm float64, qty int) domain.PriceRequest {
	return domain.PriceRequest{
		WidthMm:  widthMm,
		HeightMm: heightMm,
		Quantity: qty,
		Material: in.material,
		Finish:   in.finish,
		Product:  in.product,
		Config:   in.config,
	}
}

func selected(id *string) bool {
	return id != nil && *id != ""
}

func (s *Service) loadInputs(ctx context.Context, materialID string, finishID, productID *string) (*quoteInputs, error) {
	if materialID == "" {
		return nil, constants.ErrMissingMaterial
	}

	in := new(quoteInputs)
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		m, err := s.store.GetMaterial(egCtx, materialID)
		if err != nil {
			return fmt.Errorf("material %s: %w", materialID, err)
		}
		in.material = m
		return nil
	})
	if selected(finishID) {
		eg.Go(func() error {
			f, err := s.store.GetFinish(egCtx, *finishID)
			if err != nil {
				return fmt.Errorf("finish %s: %w", *finishID, err)
			}
			in.finish = f
			return nil
		})
	}
	if selected(productID) {
		eg.Go(func() error {
			p, err := s.store.GetProduct(egCtx, *productID)
			if err != nil {
				return fmt.Errorf("product %s: %w", *productID, err)
			}
			in.product = p
			return nil
		})
	}
	eg.Go(func() error {
		cfg, err := s.Config(egCtx)
		if err != nil {
			return err
		}
		in.config = *cfg
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

func quoteKey(req dto.QuoteRequest) string {
	var finishID, productID string
	if req.FinishID != nil {
		finishID = *req.FinishID
	}
	if req.ProductID != nil {
		productID = *req.ProductID
	}
	return fmt.Sprintf("%s|%s|%s|%g|%g|%d", req.MaterialID, finishID, productID, req.WidthMm, req.HeightMm, req.Quantity)
}

func (s *Service) warnUnmatched(ctx context.Context, in *quoteInputs, qty int, res *domain.PriceResult) {
	if res.UnmatchedQuantity && in.product != nil {
		logger.Warnf(ctx, "product %s has no fixed price for quantity %d, priced at initial price only", in.product.ID, qty)
	}
}

// Quote prices a request against the stored catalog. Results are cached until
// the next catalog or config change.
func (s *Service) Quote(ctx context.Context, req dto.QuoteRequest) (*domain.PriceResult, error) {
	key := quoteKey(req)
	ctx = logger.WithFields(ctx, "quote", key)

	if res, ok, err := s.cache.Get(ctx, key); err != nil {
		logger.Warnf(ctx, "quote cache get: %v", err)
	} else if ok {
		return res, nil
	}

	in, err := s.loadInputs(ctx, req.MaterialID, req.FinishID, req.ProductID)
	if err != nil {
		return nil, err
	}

	res, err := pricing.Calculate(in.request(req.WidthMm, req.HeightMm, req.Quantity))
	if err != nil {
		return nil, err
	}
	s.warnUnmatched(ctx, in, req.Quantity, res)

	if err := s.cache.Set(ctx, key, res); err != nil {
		logger.Warnf(ctx, "quote cache set: %v", err)
	}
	return res, nil
}

// QuoteTable prices every size against every quantity. A cell that cannot be
// priced carries its error instead of failing the whole table.
func (s *Service) QuoteTable(ctx context.Context, req dto.QuoteTableRequest) (*dto.QuoteTableResponse, error) {
	in, err := s.loadInputs(ctx, req.MaterialID, req.FinishID, req.ProductID)
	if err != nil {
		return nil, err
	}

	cells := make([]dto.QuoteTableCell, len(req.Sizes)*len(req.Quantities))
	eg := new(errgroup.Group)
	eg.SetLimit(s.tableWorkers)

	for i, size := range req.Sizes {
		for j, qty := range req.Quantities {
			idx, size, qty := i*len(req.Quantities)+j, size, qty
			eg.Go(func() error {
				cell := dto.QuoteTableCell{WidthMm: size.WidthMm, HeightMm: size.HeightMm, Quantity: qty}
				res, err := pricing.Calculate(in.request(size.WidthMm, size.HeightMm, qty))
				if err != nil {
					cell.Error = err.Error()
				} else {
					s.warnUnmatched(ctx, in, qty, res)
					cell.Result = res
				}
				cells[idx] = cell
				return nil
			})
		}
	}
	_ = eg.Wait()

	return &dto.QuoteTableResponse{MaterialID: req.MaterialID, Cells: cells}, nil
}

// Calculate prices fully described items without touching the store.
func (s *Service) Calculate(ctx context.Context, req dto.CalculateRequest) (*domain.PriceResult, error) {
	if req.Material == nil {
		return nil, constants.ErrMissingMaterial
	}

	in := &quoteInputs{material: req.Material.ToDomain(), config: s.defaults}
	if req.Finish != nil {
		f, err := req.Finish.ToDomain()
		if err != nil {
			return nil, err
		}
		in.finish = f
	}
	if req.Product != nil {
		p, err := req.Product.ToDomain()
		if err != nil {
			return nil, err
		}
		in.product = p
	}
	if req.Config != nil {
		in.config = domain.Config(*req.Config)
		if err := pricing.ValidateConfig(in.config); err != nil {
			return nil, err
		}
	}

	res, err := pricing.Calculate(in.request(req.WidthMm, req.HeightMm, req.Quantity))
	if err != nil {
		return nil, err
	}
	s.warnUnmatched(ctx, in, req.Quantity, res)
	return res, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
)

var _ port.CatalogReader = (*CatalogService)(nil)

// CatalogService loads catalog snapshots from the provider and answers the
// derived comparison queries over them. It holds no state of its own: every
// call works from a fresh provider read, so "refresh" is just another load.
type CatalogService struct {
	provider port.CatalogProvider
	now      func() time.Time
}

func NewCatalogService(provider port.CatalogProvider) CatalogService {
	return CatalogService{provider: provider, now: time.Now}
}

// NewCatalogServiceAt pins the clock used for deal windowing. Test seam.
func NewCatalogServiceAt(
	provider port.CatalogProvider, now func() time.Time,
) CatalogService {
	return CatalogService{provider: provider, now: now}
}

// LoadCatalog reads the full snapshot through the four-method provider
// contract.
func (s CatalogService) LoadCatalog(
	ctx context.Context,
) (domain.CatalogSnapshot, error) {
	const op = "CatalogService.LoadCatalog"

	if err := ctx.Err(); err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	stores, err := s.provider.ListStores(ctx)
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	deals, err := s.provider.ListDeals(ctx)
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	reviews, err := s.provider.ListReviews(ctx, domain.ReviewFilter{})
	if err != nil {
		return domain.CatalogSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.CatalogSnapshot{
		Products: products,
		Stores:   stores,
		Deals:    deals,
		Reviews:  reviews,
	}, nil
}

// GetProduct looks a product up by id. An absent id yields ErrNotFound.
func (s CatalogService) GetProduct(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "CatalogService.GetProduct"

	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf(
		"%s: product %q: %w", op, productID, domain.ErrNotFound,
	)
}

// GetStore looks a store up by id. An absent id yields ErrNotFound.
func (s CatalogService) GetStore(
	ctx context.Context, storeID string,
) (domain.Store, error) {
	const op = "CatalogService.GetStore"

	stores, err := s.provider.ListStores(ctx)
	if err != nil {
		return domain.Store{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, st := range stores {
		if st.StoreID == storeID {
			return st, nil
		}
	}
	return domain.Store{}, fmt.Errorf(
		"%s: store %q: %w", op, storeID, domain.ErrNotFound,
	)
}

// GetReviews lists reviews narrowed to one product or store.
func (s CatalogService) GetReviews(
	ctx context.Context, f domain.ReviewFilter,
) ([]domain.Review, error) {
	const op = "CatalogService.GetReviews"

	reviews, err := s.provider.ListReviews(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}

// SearchProducts applies the search/category product filter.
func (s CatalogService) SearchProducts(
	ctx context.Context, searchText string, category *domain.Category,
) ([]domain.Product, error) {
	const op = "CatalogService.SearchProducts"

	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return FilterProducts(products, searchText, category), nil
}

// BestDeals returns products whose cross-store savings exceed the threshold.
func (s CatalogService) BestDeals(
	ctx context.Context, thresholdPercent float64,
) ([]domain.Product, error) {
	const op = "CatalogService.BestDeals"

	products, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return BestDeals(products, thresholdPercent), nil
}

// ActiveDeals returns currently running deals, optionally narrowed to one
// category.
func (s CatalogService) ActiveDeals(
	ctx context.Context, category *domain.Category,
) ([]domain.Deal, error) {
	const op = "CatalogService.ActiveDeals"

	deals, err := s.provider.ListDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	active := ActiveDeals(deals, s.now())
	if category != nil {
		active = DealsForCategory(active, *category)
	}
	return active, nil
}

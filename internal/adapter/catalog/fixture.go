package catalog

import (
	"context"
	"slices"
	"time"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
)

var _ port.CatalogProvider = (*Fixture)(nil)

// Fixture is the in-process catalog source. It generates a deterministic
// mock data set once at construction and serves it on every call; a real
// backend replaces it behind the same four-method contract. It has no
// failure modes.
type Fixture struct {
	products []domain.Product
	stores   []domain.Store
	deals    []domain.Deal
	reviews  []domain.Review
}

func NewFixture() *Fixture {
	f := &Fixture{}
	now := time.Now()
	f.stores = buildStores()
	f.products = buildProducts(f.stores, now)
	f.deals = buildDeals(f.products, now)
	f.reviews = buildReviews(now)
	return f
}

func (f *Fixture) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.products), nil
}

func (f *Fixture) ListStores(ctx context.Context) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.stores), nil
}

func (f *Fixture) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.deals), nil
}

// ListReviews returns the review set narrowed by the filter. The generic
// fixture reviews are unattached, so a product or store filter stamps the
// requested id onto the returned copies.
func (f *Fixture) ListReviews(
	ctx context.Context, filter domain.ReviewFilter,
) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reviews := slices.Clone(f.reviews)
	switch {
	case filter.ProductID != "":
		for i := range reviews {
			reviews[i].ProductID = filter.ProductID
			reviews[i].StoreID = ""
		}
	case filter.StoreID != "":
		for i := range reviews {
			reviews[i].StoreID = filter.StoreID
			reviews[i].ProductID = ""
		}
	}
	return reviews, nil
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savora-app/savora/internal/adapter/catalog"
	"github.com/savora-app/savora/internal/core/domain"
)

func TestFixture(t *testing.T) {
	fixture := catalog.NewFixture()

	t.Run("Stores", func(t *testing.T) {
		stores, err := fixture.ListStores(t.Context())
		require.NoError(t, err)
		require.Len(t, stores, 10)
		for _, s := range stores {
			assert.NotEmpty(t, s.StoreID)
			assert.NotEmpty(t, s.Name)
			assert.NotEmpty(t, s.Categories)
		}
	})

	t.Run("Products", func(t *testing.T) {
		products, err := fixture.ListProducts(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, products)

		var flagship domain.Product
		for _, p := range products {
			assert.NotEmpty(t, p.ProductID)
			assert.True(t, p.Category.Valid())
			if p.Name == "Flagship Smartphone" {
				flagship = p
			}
		}
		require.NotEmpty(t, flagship.ProductID)

		lowest, ok := flagship.LowestPrice()
		require.True(t, ok)
		assert.Equal(t, 949.00, lowest.Price)
		assert.Equal(t, "ShopZone", lowest.StoreName)
		assert.InDelta(t, 5.005, flagship.SavingsPercentage(), 0.001)
	})

	t.Run("PricesReferenceFixtureStores", func(t *testing.T) {
		stores, err := fixture.ListStores(t.Context())
		require.NoError(t, err)
		storeIDs := make(map[string]bool, len(stores))
		for _, s := range stores {
			storeIDs[s.StoreID] = true
		}

		products, err := fixture.ListProducts(t.Context())
		require.NoError(t, err)
		for _, p := range products {
			for _, sp := range p.Prices {
				assert.True(t, storeIDs[sp.StoreID],
					"price %s references unknown store", sp.PriceID)
			}
		}
	})

	t.Run("Deals", func(t *testing.T) {
		deals, err := fixture.ListDeals(t.Context())
		require.NoError(t, err)
		require.Len(t, deals, 5)

		products, err := fixture.ListProducts(t.Context())
		require.NoError(t, err)
		productIDs := make(map[string]bool, len(products))
		for _, p := range products {
			productIDs[p.ProductID] = true
		}

		for _, d := range deals {
			assert.True(t, productIDs[d.ProductID],
				"deal %s references unknown product", d.Title)
			assert.Greater(t, d.OriginalPrice, d.DiscountedPrice)
			assert.True(t, d.EndDate.After(d.StartDate))
		}
	})

	t.Run("ReviewsUnfiltered", func(t *testing.T) {
		reviews, err := fixture.ListReviews(t.Context(), domain.ReviewFilter{})
		require.NoError(t, err)
		require.Len(t, reviews, 12)
		for _, r := range reviews {
			assert.Empty(t, r.ProductID)
			assert.Empty(t, r.StoreID)
			assert.GreaterOrEqual(t, r.Rating, 0.0)
			assert.LessOrEqual(t, r.Rating, 5.0)
		}
	})

	t.Run("ReviewsStampProductID", func(t *testing.T) {
		reviews, err := fixture.ListReviews(
			t.Context(), domain.ReviewFilter{ProductID: "product-1"},
		)
		require.NoError(t, err)
		require.NotEmpty(t, reviews)
		for _, r := range reviews {
			assert.Equal(t, "product-1", r.ProductID)
			assert.Empty(t, r.StoreID)
		}
	})

	t.Run("ReviewsStampStoreID", func(t *testing.T) {
		reviews, err := fixture.ListReviews(
			t.Context(), domain.ReviewFilter{StoreID: "store-1"},
		)
		require.NoError(t, err)
		require.NotEmpty(t, reviews)
		for _, r := range reviews {
			assert.Equal(t, "store-1", r.StoreID)
			assert.Empty(t, r.ProductID)
		}
	})

	t.Run("StampingDoesNotLeakBetweenCalls", func(t *testing.T) {
		_, err := fixture.ListReviews(
			t.Context(), domain.ReviewFilter{ProductID: "product-1"},
		)
		require.NoError(t, err)

		reviews, err := fixture.ListReviews(t.Context(), domain.ReviewFilter{})
		require.NoError(t, err)
		for _, r := range reviews {
			assert.Empty(t, r.ProductID)
		}
	})
}

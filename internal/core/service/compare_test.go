package service_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/service"
)

func product(
	name, description string, category domain.Category, prices ...float64,
) domain.Product {
	p := domain.Product{
		ProductID:   domain.NewID(),
		Name:        name,
		Description: description,
		Category:    category,
	}
	for _, price := range prices {
		p.Prices = append(p.Prices, domain.StorePrice{
			PriceID:  domain.NewID(),
			StoreID:  domain.NewID(),
			Price:    price,
			Currency: "USD",
		})
	}
	return p
}

func TestFilterProducts(t *testing.T) {
	products := []domain.Product{
		product("Flagship Smartphone", "advanced camera system",
			domain.CategoryElectronics, 999.00),
		product("Running Shoes", "cushioning technology for runners",
			domain.CategorySports, 150.00),
		product("Classic Denim Jeans", "quality denim fabric",
			domain.CategoryClothing, 69.50),
	}

	t.Run("PassThrough", func(t *testing.T) {
		got := service.FilterProducts(products, "", nil)
		assert.Len(t, got, 3)
	})

	t.Run("CaseInsensitiveNameMatch", func(t *testing.T) {
		got := service.FilterProducts(products, "SMARTPHONE", nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Flagship Smartphone", got[0].Name)
	})

	t.Run("DescriptionMatch", func(t *testing.T) {
		got := service.FilterProducts(products, "cushioning", nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Running Shoes", got[0].Name)
	})

	t.Run("CategoryOnly", func(t *testing.T) {
		c := domain.CategoryClothing
		got := service.FilterProducts(products, "", &c)
		require.Len(t, got, 1)
		assert.Equal(t, "Classic Denim Jeans", got[0].Name)
	})

	t.Run("SearchAndCategoryAreANDed", func(t *testing.T) {
		c := domain.CategorySports
		got := service.FilterProducts(products, "smartphone", &c)
		assert.Empty(t, got)
	})

	t.Run("NoMatch", func(t *testing.T) {
		got := service.FilterProducts(products, "nonexistent", nil)
		assert.Empty(t, got)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		before := slices.Clone(products)
		_ = service.FilterProducts(products, "shoes", nil)
		assert.Equal(t, before, products)
	})
}

func TestBestDeals(t *testing.T) {
	bigSaver := product("Headphones", "", domain.CategoryElectronics,
		399.00, 299.00) // ~25%
	midSaver := product("Vacuum", "", domain.CategoryHome,
		649.99, 549.99) // ~15.4%
	smallSaver := product("E-Reader", "", domain.CategoryBooks,
		149.99, 139.99) // ~6.7%
	noPrices := product("Ghost", "", domain.CategoryOther)

	products := []domain.Product{smallSaver, midSaver, bigSaver, noPrices}

	t.Run("ThresholdAndOrder", func(t *testing.T) {
		got := service.BestDeals(products, service.DefaultBestDealsThreshold)
		require.Len(t, got, 2)
		assert.Equal(t, bigSaver.Name, got[0].Name)
		assert.Equal(t, midSaver.Name, got[1].Name)
	})

	t.Run("ThresholdIsExclusive", func(t *testing.T) {
		got := service.BestDeals(
			[]domain.Product{bigSaver}, bigSaver.SavingsPercentage(),
		)
		assert.Empty(t, got)
	})

	t.Run("StableOrderForEqualSavings", func(t *testing.T) {
		twinA := product("Twin A", "", domain.CategoryOther, 200.00, 100.00)
		twinB := product("Twin B", "", domain.CategoryOther, 400.00, 200.00)
		got := service.BestDeals([]domain.Product{twinA, twinB}, 10)
		require.Len(t, got, 2)
		assert.Equal(t, "Twin A", got[0].Name)
		assert.Equal(t, "Twin B", got[1].Name)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		before := slices.Clone(products)
		_ = service.BestDeals(products, 10)
		assert.Equal(t, before, products)
	})
}

func TestActiveDeals(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	deal := func(title string, original, discounted float64,
		start, end time.Time,
	) domain.Deal {
		return domain.Deal{
			DealID:          domain.NewID(),
			Title:           title,
			OriginalPrice:   original,
			DiscountedPrice: discounted,
			StartDate:       start,
			EndDate:         end,
			Category:        domain.CategoryElectronics,
		}
	}

	running := deal("Flash Sale", 999.00, 799.00, // ~20%
		now.AddDate(0, 0, -1), now.AddDate(0, 0, 7))
	deeper := deal("Audio Sale", 399.00, 199.00, // ~50%
		now.AddDate(0, 0, -2), now.AddDate(0, 0, 2))
	expired := deal("Old Sale", 150.00, 99.99,
		now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	upcoming := deal("Future Sale", 249.00, 199.00,
		now.AddDate(0, 0, 3), now.AddDate(0, 0, 10))
	endsNow := deal("Last Call", 649.99, 499.99,
		now.AddDate(0, 0, -5), now)
	startsNow := deal("Just Started", 100.00, 90.00, now, now.AddDate(0, 0, 1))

	deals := []domain.Deal{running, deeper, expired, upcoming, endsNow, startsNow}

	t.Run("WindowingInclusive", func(t *testing.T) {
		got := service.ActiveDeals(deals, now)
		titles := make([]string, 0, len(got))
		for _, d := range got {
			titles = append(titles, d.Title)
		}
		assert.NotContains(t, titles, "Old Sale")
		assert.NotContains(t, titles, "Future Sale")
		assert.Contains(t, titles, "Last Call")
		assert.Contains(t, titles, "Just Started")
	})

	t.Run("SortedByDiscountDescending", func(t *testing.T) {
		got := service.ActiveDeals(deals, now)
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t,
				got[i-1].DiscountPercentage(), got[i].DiscountPercentage(),
			)
		}
		assert.Equal(t, "Audio Sale", got[0].Title)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		before := slices.Clone(deals)
		_ = service.ActiveDeals(deals, now)
		assert.Equal(t, before, deals)
	})
}

func TestDealsForCategory(t *testing.T) {
	active := []domain.Deal{
		{DealID: domain.NewID(), Title: "A", Category: domain.CategoryElectronics},
		{DealID: domain.NewID(), Title: "B", Category: domain.CategoryHome},
		{DealID: domain.NewID(), Title: "C", Category: domain.CategoryElectronics},
	}

	got := service.DealsForCategory(active, domain.CategoryElectronics)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "C", got[1].Title)

	assert.Empty(t, service.DealsForCategory(active, domain.CategoryBooks))
}

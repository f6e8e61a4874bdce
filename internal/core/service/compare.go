package service

import (
	"slices"
	"strings"
	"time"

	"github.com/savora-app/savora/internal/core/domain"
)

// DefaultBestDealsThreshold is the minimum savings percentage for a product
// to count as a best deal.
const DefaultBestDealsThreshold = 10.0

// FilterProducts narrows products by a case-insensitive substring match on
// name or description and, when category is non-nil, an exact category
// match. Empty search text and nil category both pass everything through.
// The input slice is never mutated.
func FilterProducts(
	products []domain.Product, searchText string, category *domain.Category,
) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(searchText))

	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if category != nil && p.Category != *category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// BestDeals returns products whose savings percentage exceeds the threshold,
// stable-sorted by savings percentage descending.
func BestDeals(
	products []domain.Product, thresholdPercent float64,
) []domain.Product {
	best := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.SavingsPercentage() > thresholdPercent {
			best = append(best, p)
		}
	}
	slices.SortStableFunc(best, func(a, b domain.Product) int {
		switch as, bs := a.SavingsPercentage(), b.SavingsPercentage(); {
		case as > bs:
			return -1
		case as < bs:
			return 1
		default:
			return 0
		}
	})
	return best
}

// ActiveDeals returns deals whose window contains now, both endpoints
// inclusive, sorted by discount percentage descending.
func ActiveDeals(deals []domain.Deal, now time.Time) []domain.Deal {
	active := make([]domain.Deal, 0, len(deals))
	for _, d := range deals {
		if d.IsActive(now) {
			active = append(active, d)
		}
	}
	slices.SortStableFunc(active, func(a, b domain.Deal) int {
		switch ad, bd := a.DiscountPercentage(), b.DiscountPercentage(); {
		case ad > bd:
			return -1
		case ad < bd:
			return 1
		default:
			return 0
		}
	})
	return active
}

// DealsForCategory narrows an already-active deal set to one category.
func DealsForCategory(
	activeDeals []domain.Deal, category domain.Category,
) []domain.Deal {
	matched := make([]domain.Deal, 0, len(activeDeals))
	for _, d := range activeDeals {
		if d.Category == category {
			matched = append(matched, d)
		}
	}
	return matched
}

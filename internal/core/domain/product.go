package domain

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Product is a read-only catalog snapshot. Prices may be empty, in
	// which case lowest/highest price are absent rather than zero.
	Product struct {
		ProductID     string
		Name          string
		Description   string
		Category      Category
		ImageRef      string
		Prices        []StorePrice
		AverageRating float64
		ReviewCount   int
	}

	// StorePrice is one store's offer for a product. StoreID is a weak
	// reference; StoreName is a denormalized display copy.
	StorePrice struct {
		PriceID     string
		StoreID     string
		StoreName   string
		Price       float64
		Currency    string
		InStock     bool
		LastUpdated time.Time
	}
)

// NewID generates an opaque entity identity.
func NewID() string {
	return uuid.NewString()
}

// LowestPrice returns the cheapest offer. ok is false when the product has
// no prices. Ties resolve to the first entry encountered.
func (p Product) LowestPrice() (StorePrice, bool) {
	if len(p.Prices) == 0 {
		return StorePrice{}, false
	}
	lowest := p.Prices[0]
	for _, sp := range p.Prices[1:] {
		if sp.Price < lowest.Price {
			lowest = sp
		}
	}
	return lowest, true
}

// HighestPrice returns the most expensive offer. ok is false when the
// product has no prices.
func (p Product) HighestPrice() (StorePrice, bool) {
	if len(p.Prices) == 0 {
		return StorePrice{}, false
	}
	highest := p.Prices[0]
	for _, sp := range p.Prices[1:] {
		if sp.Price > highest.Price {
			highest = sp
		}
	}
	return highest, true
}

// PriceDifference is highest minus lowest, zero when prices are absent.
func (p Product) PriceDifference() float64 {
	lowest, ok := p.LowestPrice()
	if !ok {
		return 0
	}
	highest, _ := p.HighestPrice()
	return highest.Price - lowest.Price
}

// SavingsPercentage is the saving of buying at the lowest price instead of
// the highest, as a percentage of the highest. Zero when prices are absent
// or the highest price is zero.
func (p Product) SavingsPercentage() float64 {
	lowest, ok := p.LowestPrice()
	if !ok {
		return 0
	}
	highest, _ := p.HighestPrice()
	if highest.Price <= 0 {
		return 0
	}
	return (highest.Price - lowest.Price) / highest.Price * 100
}

package domain

import "time"

// Deal is a time-windowed discount at one store. ProductName and StoreName
// are point-in-time denormalized copies, as are both prices: a later catalog
// change must not retroactively alter a historical deal.
type Deal struct {
	DealID          string
	Title           string
	Description     string
	ProductID       string
	ProductName     string
	StoreID         string
	StoreName       string
	OriginalPrice   float64
	DiscountedPrice float64
	StartDate       time.Time
	EndDate         time.Time
	ImageRef        string
	Category        Category
}

// DiscountPercentage is the saving relative to the original price. Zero
// when the original price is zero.
func (d Deal) DiscountPercentage() float64 {
	if d.OriginalPrice <= 0 {
		return 0
	}
	return (d.OriginalPrice - d.DiscountedPrice) / d.OriginalPrice * 100
}

// IsActive reports whether now falls within [StartDate, EndDate], inclusive
// on both ends.
func (d Deal) IsActive(now time.Time) bool {
	return !now.Before(d.StartDate) && !now.After(d.EndDate)
}

// DaysRemaining is the whole days until EndDate. Negative once the deal is
// expired; callers treat <= 0 as "no time left".
func (d Deal) DaysRemaining(now time.Time) int {
	return int(d.EndDate.Sub(now) / (24 * time.Hour))
}

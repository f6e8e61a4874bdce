package domain

import "time"

type (
	// WishlistItem snapshots a product at add-time: name, image, category
	// and current price are denormalized copies, not live references.
	WishlistItem struct {
		ItemID            string
		ProductID         string
		ProductName       string
		ProductImageRef   string
		CurrentPrice      float64
		TargetPrice       *float64
		PriceAlertEnabled bool
		Notes             string
		AddedDate         time.Time
		Category          Category
	}

	// Wishlist is an ordered user-owned item collection.
	Wishlist struct {
		WishlistID  string
		Name        string
		Items       []WishlistItem
		IsShared    bool
		CreatedDate time.Time
	}
)

// IsPriceAtTarget reports whether a target price is set and the current
// price has reached it.
func (i WishlistItem) IsPriceAtTarget() bool {
	return i.TargetPrice != nil && i.CurrentPrice <= *i.TargetPrice
}

// TotalValue sums the current price of every item.
func (w Wishlist) TotalValue() float64 {
	var total float64
	for _, item := range w.Items {
		total += item.CurrentPrice
	}
	return total
}

package domain

import "time"

// Review is a read-only rating snapshot. At most one of ProductID and
// StoreID is populated; both empty means the review is unattached.
type Review struct {
	ReviewID         string
	AuthorName       string
	Rating           float64
	Title            string
	Content          string
	Date             time.Time
	ProductID        string
	StoreID          string
	HelpfulCount     int
	VerifiedPurchase bool
}

// ReviewFilter narrows a review listing to one product or one store.
// Zero value means no filtering.
type ReviewFilter struct {
	ProductID string
	StoreID   string
}

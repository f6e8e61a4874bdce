package domain

// Store is a read-only retailer snapshot.
type Store struct {
	StoreID       string
	Name          string
	Description   string
	LogoRef       string
	Website       string
	AverageRating float64
	ReviewCount   int
	Categories    []Category
}

package domain

// CatalogSnapshot is one full catalog load. A refresh replaces the whole
// snapshot; there is no per-entity update path.
type CatalogSnapshot struct {
	Products []Product
	Stores   []Store
	Deals    []Deal
	Reviews  []Review
}

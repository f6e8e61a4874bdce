package port

import (
	"context"

	"github.com/savora-app/savora/internal/core/domain"
)

// CatalogProvider supplies the full read-only catalog. The in-process
// fixture generator never fails; a networked replacement plugs in behind
// the same four operations.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListDeals(ctx context.Context) ([]domain.Deal, error)
	ListReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error)
}

// KeyValueStore is the injected local persistence capability. Get reports
// ok=false for an absent key, which callers treat as "use defaults".
type KeyValueStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// WishlistStore persists the whole wishlist collection as one blob.
type WishlistStore interface {
	LoadWishlists() ([]domain.Wishlist, error)
	SaveWishlists([]domain.Wishlist) error
	ClearWishlists() error
}

// SettingsStore persists user settings and the first-run onboarding flag.
type SettingsStore interface {
	LoadSettings() (domain.UserSettings, error)
	SaveSettings(domain.UserSettings) error
	CompletedOnboarding() (bool, error)
	SetCompletedOnboarding(bool) error
	ClearSettings() error
}

// CatalogReader is the catalog surface consumed by inbound adapters.
type CatalogReader interface {
	LoadCatalog(ctx context.Context) (domain.CatalogSnapshot, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	GetStore(ctx context.Context, storeID string) (domain.Store, error)
	GetReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error)
	SearchProducts(ctx context.Context, searchText string, category *domain.Category) ([]domain.Product, error)
	BestDeals(ctx context.Context, thresholdPercent float64) ([]domain.Product, error)
	ActiveDeals(ctx context.Context, category *domain.Category) ([]domain.Deal, error)
}

// WishlistTracker is the mutable wishlist surface consumed by inbound
// adapters.
type WishlistTracker interface {
	AddItem(ctx context.Context, product domain.Product) (domain.WishlistItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	UpdateItem(ctx context.Context, item domain.WishlistItem) error
	CreateWishlist(ctx context.Context, name string) (domain.Wishlist, error)
	DeleteWishlist(ctx context.Context, wishlistID string) error
	IsWishlisted(ctx context.Context, productID string) bool
	Wishlists(ctx context.Context) []domain.Wishlist
}

// SettingsManager is the preferences surface consumed by inbound adapters.
type SettingsManager interface {
	Settings(ctx context.Context) domain.UserSettings
	UpdateSettings(ctx context.Context, s domain.UserSettings) error
	CompletedOnboarding(ctx context.Context) bool
	SetCompletedOnboarding(ctx context.Context, done bool) error
}

// AppResetter clears all user-owned state: wishlists, settings and the
// onboarding flag.
type AppResetter interface {
	ResetApp(ctx context.Context) error
}

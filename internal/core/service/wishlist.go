package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
)

var _ port.WishlistTracker = (*WishlistService)(nil)

// DefaultWishlistName is used for the wishlist created implicitly by the
// first AddItem.
const DefaultWishlistName = "My Wishlist"

// WishlistService owns the mutable wishlist collection. Every mutation runs
// as a single read-modify-write under one mutex and writes the whole
// collection back through the store. Save failures are logged, never
// surfaced: persistence is best-effort by contract.
type WishlistService struct {
	mu        sync.Mutex
	store     port.WishlistStore
	wishlists []domain.Wishlist
	now       func() time.Time
}

// NewWishlistService loads persisted state once. A corrupt blob is logged
// and replaced by the empty collection.
func NewWishlistService(store port.WishlistStore) *WishlistService {
	const op = "NewWishlistService"

	wishlists, err := store.LoadWishlists()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptState) {
			slog.Warn("wishlist state is corrupt, starting empty",
				"op", op, "err", err)
		} else {
			slog.Error("failed to load wishlist state, starting empty",
				"op", op, "err", err)
		}
		wishlists = nil
	}
	return &WishlistService{store: store, wishlists: wishlists, now: time.Now}
}

// AddItem snapshots the product's lowest price into a new item. The first
// item ever added creates the default wishlist; later items append to the
// first wishlist.
func (s *WishlistService) AddItem(
	ctx context.Context, product domain.Product,
) (domain.WishlistItem, error) {
	const op = "WishlistService.AddItem"

	if err := ctx.Err(); err != nil {
		return domain.WishlistItem{}, fmt.Errorf("%s: %w", op, err)
	}

	lowest, ok := product.LowestPrice()
	if !ok {
		return domain.WishlistItem{}, fmt.Errorf(
			"%s: product %q: %w",
			op, product.ProductID, domain.ErrNoPriceAvailable,
		)
	}

	item := domain.WishlistItem{
		ItemID:          domain.NewID(),
		ProductID:       product.ProductID,
		ProductName:     product.Name,
		ProductImageRef: product.ImageRef,
		CurrentPrice:    lowest.Price,
		AddedDate:       s.now(),
		Category:        product.Category,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.wishlists) == 0 {
		s.wishlists = append(s.wishlists, domain.Wishlist{
			WishlistID:  domain.NewID(),
			Name:        DefaultWishlistName,
			CreatedDate: s.now(),
		})
	}
	s.wishlists[0].Items = append(s.wishlists[0].Items, item)

	s.persist(op)
	return item, nil
}

// RemoveItem deletes the item from every wishlist it appears in. An absent
// id is a no-op, not an error.
func (s *WishlistService) RemoveItem(ctx context.Context, itemID string) error {
	const op = "WishlistService.RemoveItem"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlists {
		s.wishlists[i].Items = slices.DeleteFunc(
			s.wishlists[i].Items,
			func(item domain.WishlistItem) bool { return item.ItemID == itemID },
		)
	}

	s.persist(op)
	return nil
}

// UpdateItem replaces the stored item with a matching id wholesale. An
// absent id is a no-op.
func (s *WishlistService) UpdateItem(
	ctx context.Context, item domain.WishlistItem,
) error {
	const op = "WishlistService.UpdateItem"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if item.TargetPrice != nil && *item.TargetPrice < 0 {
		return fmt.Errorf(
			"%s: target price %v: %w",
			op, *item.TargetPrice, domain.ErrInvalidInput,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for wi := range s.wishlists {
		for ii := range s.wishlists[wi].Items {
			if s.wishlists[wi].Items[ii].ItemID == item.ItemID {
				s.wishlists[wi].Items[ii] = item
			}
		}
	}

	s.persist(op)
	return nil
}

// CreateWishlist appends a new empty wishlist. The engine accepts any name;
// the HTTP boundary rejects empty ones.
func (s *WishlistService) CreateWishlist(
	ctx context.Context, name string,
) (domain.Wishlist, error) {
	const op = "WishlistService.CreateWishlist"

	if err := ctx.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	w := domain.Wishlist{
		WishlistID:  domain.NewID(),
		Name:        name,
		CreatedDate: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlists = append(s.wishlists, w)
	s.persist(op)
	return w, nil
}

// DeleteWishlist removes the wishlist with that identity, items included.
func (s *WishlistService) DeleteWishlist(
	ctx context.Context, wishlistID string,
) error {
	const op = "WishlistService.DeleteWishlist"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlists = slices.DeleteFunc(
		s.wishlists,
		func(w domain.Wishlist) bool { return w.WishlistID == wishlistID },
	)

	s.persist(op)
	return nil
}

// IsWishlisted reports whether any item in any wishlist references the
// product.
func (s *WishlistService) IsWishlisted(
	ctx context.Context, productID string,
) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wishlists {
		for _, item := range w.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}

// Wishlists returns a snapshot copy of the current collection.
func (s *WishlistService) Wishlists(ctx context.Context) []domain.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Clear drops every wishlist and wipes the persisted blob. Used by the
// app-reset flow.
func (s *WishlistService) Clear(ctx context.Context) error {
	const op = "WishlistService.Clear"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlists = nil
	if err := s.store.ClearWishlists(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// persist writes the full collection through the store. Caller holds the
// mutex.
func (s *WishlistService) persist(op string) {
	if err := s.store.SaveWishlists(s.snapshotLocked()); err != nil {
		slog.Error("failed to persist wishlists", "op", op, "err", err)
	}
}

func (s *WishlistService) snapshotLocked() []domain.Wishlist {
	snapshot := make([]domain.Wishlist, len(s.wishlists))
	for i, w := range s.wishlists {
		w.Items = slices.Clone(w.Items)
		snapshot[i] = w
	}
	return snapshot
}

package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
)

// GET /v1/wishlists (200 OK)
// POST /v1/wishlists {"name"} (201 Created, 400 Bad request)
// DELETE /v1/wishlists/{id} (204 No content)
// POST /v1/wishlists/items {"product_id"} (201 Created, 404, 422)
// PUT /v1/wishlists/items {item} (204 No content, 400 Bad request)
// DELETE /v1/wishlists/items/{id} (204 No content)

type WishlistHandler struct {
	tracker port.WishlistTracker
	catalog port.CatalogReader
}

func RegisterWishlists(
	mux *http.ServeMux,
	tracker port.WishlistTracker,
	catalog port.CatalogReader,
) {
	h := WishlistHandler{tracker, catalog}
	mux.HandleFunc("GET /v1/wishlists", h.GetWishlists)
	mux.HandleFunc("POST /v1/wishlists", h.PostWishlist)
	mux.HandleFunc("DELETE /v1/wishlists/{id}", h.DeleteWishlist)
	mux.HandleFunc("POST /v1/wishlists/items", h.PostItem)
	mux.HandleFunc("PUT /v1/wishlists/items", h.PutItem)
	mux.HandleFunc("DELETE /v1/wishlists/items/{id}", h.DeleteItem)
}

func (h WishlistHandler) GetWishlists(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetWishlists"
	log := slog.With("op", op)

	wishlists := h.tracker.Wishlists(r.Context())
	vs := make([]Wishlist, 0, len(wishlists))
	for _, wl := range wishlists {
		vs = append(vs, toWishlist(wl))
	}
	writeJSON(w, log, vs)
}

// PostWishlist creates an empty named wishlist. The empty-name rejection
// lives here at the boundary; the tracker itself accepts any name.
func (h WishlistHandler) PostWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostWishlist"
	log := slog.With("op", op)

	var req CreateWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "wishlist name is required", http.StatusBadRequest)
		return
	}

	wishlist, err := h.tracker.CreateWishlist(r.Context(), req.Name)
	if err != nil {
		http.Error(w, "failed to create wishlist", http.StatusInternalServerError)
		log.Error("failed to create wishlist", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toWishlist(wishlist)); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (h WishlistHandler) DeleteWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteWishlist"
	log := slog.With("op", op)

	err := h.tracker.DeleteWishlist(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "failed to delete wishlist", http.StatusInternalServerError)
		log.Error("failed to delete wishlist", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h WishlistHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		log.Error("failed to get product", "err", err)
		return
	}

	item, err := h.tracker.AddItem(r.Context(), product)
	if err != nil {
		if errors.Is(err, domain.ErrNoPriceAvailable) {
			http.Error(
				w, "product has no store prices",
				http.StatusUnprocessableEntity,
			)
			return
		}
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		log.Error("failed to add wishlist item", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toWishlistItem(item)); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (h WishlistHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PutItem"
	log := slog.With("op", op)

	var req WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	item, err := req.toDomain()
	if err != nil {
		http.Error(w, "invalid wishlist item", http.StatusBadRequest)
		return
	}

	if err := h.tracker.UpdateItem(r.Context(), item); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "invalid wishlist item", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to update item", http.StatusInternalServerError)
		log.Error("failed to update wishlist item", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteItem"
	log := slog.With("op", op)

	if err := h.tracker.RemoveItem(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "failed to remove item", http.StatusInternalServerError)
		log.Error("failed to remove wishlist item", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

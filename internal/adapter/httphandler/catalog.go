package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
	"github.com/savora-app/savora/internal/core/service"
)

// GET /v1/products?search=&category= (200 OK, 400 Bad request)
// GET /v1/products/{id} (200 OK, 404 Not found)
// GET /v1/products/best-deals?threshold= (200 OK, 400 Bad request)
// GET /v1/stores, /v1/stores/{id}, /v1/deals?category=, /v1/reviews

type CatalogHandler struct {
	catalog port.CatalogReader
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogReader) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/best-deals", h.GetBestDeals)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/stores", h.GetStores)
	mux.HandleFunc("GET /v1/stores/{id}", h.GetStore)
	mux.HandleFunc("GET /v1/deals", h.GetDeals)
	mux.HandleFunc("GET /v1/reviews", h.GetReviews)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	category, ok := categoryParam(w, r)
	if !ok {
		return
	}

	products, err := h.catalog.SearchProducts(
		r.Context(), r.URL.Query().Get("search"), category,
	)
	if err != nil {
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		log.Error("failed to search products", "err", err)
		return
	}

	writeJSON(w, log, toProducts(products))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	product, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		log.Error("failed to get product", "err", err)
		return
	}

	writeJSON(w, log, toProduct(product))
}

func (h CatalogHandler) GetBestDeals(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetBestDeals"
	log := slog.With("op", op)

	threshold := service.DefaultBestDealsThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid threshold", http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	products, err := h.catalog.BestDeals(r.Context(), threshold)
	if err != nil {
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		log.Error("failed to compute best deals", "err", err)
		return
	}

	writeJSON(w, log, toProducts(products))
}

func (h CatalogHandler) GetStores(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetStores"
	log := slog.With("op", op)

	snapshot, err := h.catalog.LoadCatalog(r.Context())
	if err != nil {
		http.Error(w, "failed to load stores", http.StatusInternalServerError)
		log.Error("failed to load catalog", "err", err)
		return
	}

	stores := make([]Store, 0, len(snapshot.Stores))
	for _, s := range snapshot.Stores {
		stores = append(stores, toStore(s))
	}
	writeJSON(w, log, stores)
}

func (h CatalogHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetStore"
	log := slog.With("op", op)

	store, err := h.catalog.GetStore(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "store not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load store", http.StatusInternalServerError)
		log.Error("failed to get store", "err", err)
		return
	}

	writeJSON(w, log, toStore(store))
}

func (h CatalogHandler) GetDeals(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetDeals"
	log := slog.With("op", op)

	category, ok := categoryParam(w, r)
	if !ok {
		return
	}

	deals, err := h.catalog.ActiveDeals(r.Context(), category)
	if err != nil {
		http.Error(w, "failed to load deals", http.StatusInternalServerError)
		log.Error("failed to load active deals", "err", err)
		return
	}

	now := time.Now()
	vs := make([]Deal, 0, len(deals))
	for _, d := range deals {
		vs = append(vs, toDeal(d, now))
	}
	writeJSON(w, log, vs)
}

func (h CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetReviews"
	log := slog.With("op", op)

	filter := domain.ReviewFilter{
		ProductID: r.URL.Query().Get("product_id"),
		StoreID:   r.URL.Query().Get("store_id"),
	}
	if filter.ProductID != "" && filter.StoreID != "" {
		http.Error(
			w, "product_id and store_id are mutually exclusive",
			http.StatusBadRequest,
		)
		return
	}

	reviews, err := h.catalog.GetReviews(r.Context(), filter)
	if err != nil {
		http.Error(w, "failed to load reviews", http.StatusInternalServerError)
		log.Error("failed to load reviews", "err", err)
		return
	}

	vs := make([]Review, 0, len(reviews))
	for _, review := range reviews {
		vs = append(vs, toReview(review))
	}
	writeJSON(w, log, vs)
}

func categoryParam(
	w http.ResponseWriter, r *http.Request,
) (*domain.Category, bool) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		return nil, true
	}
	category, err := domain.ParseCategory(raw)
	if err != nil {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return nil, false
	}
	return &category, true
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

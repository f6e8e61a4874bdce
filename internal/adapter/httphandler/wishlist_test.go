package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savora-app/savora/internal/adapter/catalog"
	"github.com/savora-app/savora/internal/adapter/httphandler"
	"github.com/savora-app/savora/internal/adapter/storage"
	"github.com/savora-app/savora/internal/core/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo, err := storage.NewStateRepository(storage.NewMemoryKV())
	require.NoError(t, err)

	catalogSvc := service.NewCatalogService(catalog.NewFixture())
	wishlists := service.NewWishlistService(repo)
	settings := service.NewSettingsService(repo)
	resetter := service.NewResetService(wishlists, settings)

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, catalogSvc)
	httphandler.RegisterWishlists(mux, wishlists, catalogSvc)
	httphandler.RegisterSettings(mux, settings, resetter)

	srv := httptest.NewServer(httphandler.AllowJSON(mux))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(
	t *testing.T, srv *httptest.Server, method, path, body string,
) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(
		t.Context(), method, srv.URL+path, strings.NewReader(body),
	)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func firstProductID(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := doJSON(t, srv, http.MethodGet, "/v1/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []httphandler.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.NotEmpty(t, products)
	return products[0].ProductID
}

func TestWishlistEndpoints(t *testing.T) {
	t.Run("CreateWishlist", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doJSON(t, srv, http.MethodPost, "/v1/wishlists",
			`{"name":"Birthday Ideas"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created httphandler.Wishlist
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Equal(t, "Birthday Ideas", created.Name)
		assert.NotEmpty(t, created.WishlistID)
	})

	t.Run("EmptyNameRejectedAtBoundary", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doJSON(t, srv, http.MethodPost, "/v1/wishlists",
			`{"name":"   "}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = doJSON(t, srv, http.MethodGet, "/v1/wishlists", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var wishlists []httphandler.Wishlist
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&wishlists))
		assert.Empty(t, wishlists)
	})

	t.Run("AddItemSnapshotsLowestPrice", func(t *testing.T) {
		srv := newTestServer(t)
		productID := firstProductID(t, srv)

		resp := doJSON(t, srv, http.MethodPost, "/v1/wishlists/items",
			`{"product_id":"`+productID+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var item httphandler.WishlistItem
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		assert.Equal(t, productID, item.ProductID)
		assert.Greater(t, item.CurrentPrice, 0.0)

		resp = doJSON(t, srv, http.MethodGet, "/v1/wishlists", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var wishlists []httphandler.Wishlist
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&wishlists))
		require.Len(t, wishlists, 1)
		assert.Equal(t, service.DefaultWishlistName, wishlists[0].Name)
		require.Len(t, wishlists[0].Items, 1)
	})

	t.Run("AddItemUnknownProduct", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doJSON(t, srv, http.MethodPost, "/v1/wishlists/items",
			`{"product_id":"missing-id"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("NonJSONBodyRejected", func(t *testing.T) {
		srv := newTestServer(t)

		req, err := http.NewRequestWithContext(
			t.Context(), http.MethodPost, srv.URL+"/v1/wishlists",
			strings.NewReader("name=Birthday"),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	t.Run("DefaultsServed", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doJSON(t, srv, http.MethodGet, "/v1/settings", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var settings httphandler.UserSettings
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
		assert.True(t, settings.NotificationsEnabled)
		assert.Equal(t, "USD", settings.PreferredCurrency)
	})

	t.Run("UpdateRejectsUnknownCategory", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doJSON(t, srv, http.MethodPut, "/v1/settings",
			`{"preferred_currency":"USD","favorite_categories":["Groceries"]}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ResetClearsWishlists", func(t *testing.T) {
		srv := newTestServer(t)
		productID := firstProductID(t, srv)

		resp := doJSON(t, srv, http.MethodPost, "/v1/wishlists/items",
			`{"product_id":"`+productID+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, srv, http.MethodPost, "/v1/reset", "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, srv, http.MethodGet, "/v1/wishlists", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var wishlists []httphandler.Wishlist
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&wishlists))
		assert.Empty(t, wishlists)
	})
}

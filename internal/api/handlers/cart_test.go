package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvault/storefront/internal/api/handlers"
	"github.com/techvault/storefront/internal/cart"
	"github.com/techvault/storefront/internal/catalog"
	"github.com/techvault/storefront/internal/config"
	"github.com/techvault/storefront/internal/storage"
	"github.com/techvault/storefront/internal/utils/response"
)

func newCartHandler(t *testing.T) (*handlers.CartHandler, *cart.Store) {
	t.Helper()

	catalogSvc, err := catalog.New(config.CatalogConfig{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cart.NewStore(t.Context(), storage.NewMemory(), logger)

	return handlers.NewCartHandler(store, catalogSvc), store
}

func decodeCartView(t *testing.T, rec *httptest.ResponseRecorder) handlers.CartView {
	t.Helper()

	var resp struct {
		Success bool              `json:"success"`
		Data    handlers.CartView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)

	return resp.Data
}

func TestAddItemHandler(t *testing.T) {

	t.Run("Success - Adds Product From Catalog", func(t *testing.T) {
		// Arrange
		handler, _ := newCartHandler(t)
		body := `{"product_id": 5, "quantity": 2}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		view := decodeCartView(t, rec)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int64(5), view.Items[0].ProductID)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.Equal(t, "Aria ANC Headphones", view.Items[0].Product.Name)
		assert.Equal(t, "599.98", view.TotalValue)
		assert.Equal(t, 2, view.TotalCount)
	})

	t.Run("Success - Quantity Defaults To One", func(t *testing.T) {
		// Arrange
		handler, store := newCartHandler(t)
		body := `{"product_id": 5}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, store.TotalCount())
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		handler, store := newCartHandler(t)
		body := `{"product_id": 99999}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, store.Items())
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		handler, _ := newCartHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(""))
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp response.APIResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Success)
	})
}

func TestSetQuantityHandler(t *testing.T) {

	t.Run("Success - Zero Quantity Removes The Row", func(t *testing.T) {
		// Arrange
		handler, store := newCartHandler(t)
		seedCart(t, handler, 5, 2)

		body := `{"product_id": 5, "quantity": 0}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.SetQuantity()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, store.Contains(5))
	})

	t.Run("Success - Replaces Quantity", func(t *testing.T) {
		// Arrange
		handler, store := newCartHandler(t)
		seedCart(t, handler, 5, 2)

		body := `{"product_id": 5, "quantity": 7}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.SetQuantity()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		item, found := store.Find(5)
		require.True(t, found)
		assert.Equal(t, 7, item.Quantity)
	})
}

func TestRemoveItemHandler(t *testing.T) {

	t.Run("Success - Removes The Row", func(t *testing.T) {
		// Arrange
		handler, store := newCartHandler(t)
		seedCart(t, handler, 5, 1)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/5", nil)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()

		// Act
		handler.RemoveItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, store.Contains(5))
	})

	t.Run("Failure - Non-Numeric Id", func(t *testing.T) {
		// Arrange
		handler, _ := newCartHandler(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		// Act
		handler.RemoveItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCartAndClearHandlers(t *testing.T) {

	t.Run("Success - Get Reflects Store, Clear Empties It", func(t *testing.T) {
		// Arrange
		handler, store := newCartHandler(t)
		seedCart(t, handler, 5, 2)
		seedCart(t, handler, 9, 1)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart()(rec, req)

		// Assert
		view := decodeCartView(t, rec)
		assert.Len(t, view.Items, 2)
		assert.Equal(t, 3, view.TotalCount)
		// 299.99*2 + 149.99
		assert.Equal(t, "749.97", view.TotalValue)

		// Act - clear
		rec = httptest.NewRecorder()
		handler.Clear()(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, store.Items())
	})
}

func seedCart(t *testing.T, handler *handlers.CartHandler, productID int64, quantity int) {
	t.Helper()

	var payload struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	payload.ProductID = productID
	payload.Quantity = quantity

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	handler.AddItem()(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

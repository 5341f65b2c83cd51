package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/techvault/storefront/internal/api/middleware"
	"github.com/techvault/storefront/internal/cart"
	"github.com/techvault/storefront/internal/catalog"
	"github.com/techvault/storefront/internal/models"
	"github.com/techvault/storefront/internal/utils"
	"github.com/techvault/storefront/internal/utils/response"
)

type CartHandler struct {
	store     *cart.Store
	catalog   catalog.Service
	validator *validator.Validate
}

func NewCartHandler(store *cart.Store, catalogSvc catalog.Service) *CartHandler {
	return &CartHandler{
		store:     store,
		catalog:   catalogSvc,
		validator: validator.New(),
	}
}

// CartView is what the display layer renders.
type CartView struct {
	Items      []models.LineItem `json:"items"`
	TotalValue string            `json:"total_value"`
	TotalCount int               `json:"total_count"`
}

func (h *CartHandler) view() CartView {
	return CartView{
		Items:      h.store.Items(),
		TotalValue: h.store.TotalValue().StringFixed(2),
		TotalCount: h.store.TotalCount(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		// snapshot the product at add time; price changes later in the
		// catalog never reach rows already in the cart
		product, err := h.catalog.Get(r.Context(), req.ProductID)
		if err != nil {
			logger.Warn("Product lookup failed", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		h.store.AddItem(r.Context(), *product, quantity)

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("quantity", quantity))
		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *CartHandler) SetQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SetQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// zero or negative quantities remove the row
		h.store.SetQuantity(r.Context(), req.ProductID, req.Quantity)

		logger.Info("Cart quantity updated", slog.Int64("productId", req.ProductID), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseProductID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		h.store.RemoveItem(r.Context(), id)

		logger.Info("Item removed from cart", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *CartHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		h.store.Clear(r.Context())

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, h.view())
	}
}

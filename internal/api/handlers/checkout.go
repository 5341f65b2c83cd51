package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/techvault/storefront/internal/api/middleware"
	"github.com/techvault/storefront/internal/cart"
	"github.com/techvault/storefront/internal/models"
	"github.com/techvault/storefront/internal/orders"
	"github.com/techvault/storefront/internal/pricing"
	"github.com/techvault/storefront/internal/utils"
	"github.com/techvault/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	store        *cart.Store
	calculator   *pricing.Calculator
	orderService orders.Service
	validator    *validator.Validate
}

func NewCheckoutHandler(store *cart.Store, calculator *pricing.Calculator, orderService orders.Service) *CheckoutHandler {
	return &CheckoutHandler{
		store:        store,
		calculator:   calculator,
		orderService: orderService,
		validator:    validator.New(),
	}
}

// Quote prices the current cart for a shipping method without creating an
// order.
func (h *CheckoutHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.QuoteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		method := req.ShippingMethod
		if method == "" {
			method = models.ShippingStandard
		}

		totals := h.calculator.Totals(h.store.Items(), method)

		response.Success(w, http.StatusOK, totals)
	}
}

func (h *CheckoutHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.Create(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully", slog.String("orderId", order.ID.String()))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *CheckoutHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.orderService.Get(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *CheckoutHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.String("orderId", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

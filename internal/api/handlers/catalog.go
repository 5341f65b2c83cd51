package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/techvault/storefront/internal/api/middleware"
	"github.com/techvault/storefront/internal/catalog"
	"github.com/techvault/storefront/internal/errors"
	"github.com/techvault/storefront/internal/models"
	"github.com/techvault/storefront/internal/utils"
	"github.com/techvault/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalog   catalog.Service
	validator *validator.Validate
}

func NewCatalogHandler(catalogSvc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogSvc, validator: validator.New()}
}

// ListProducts serves the full listing, narrowed by query parameters:
// category, brands (comma separated), min_price, max_price, in_stock, sort.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		req, err := filterFromQuery(r)
		if err != nil {
			logger.Warn("Invalid filter parameters", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := h.validator.Struct(req); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, errors.InternalError("Unexpected validation error").WithError(err))
			return
		}

		products, err := h.catalog.Filter(r.Context(), req)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseProductID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalog.Get(r.Context(), id)
		if err != nil {
			logger.Warn("Product not found", slog.Int64("productId", id))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query().Get("q")
		if query == "" {
			response.Error(w, errors.BadRequestError("Query parameter 'q' is required"))
			return
		}

		products, err := h.catalog.Search(r.Context(), query)
		if err != nil {
			logger.Error("Search failed", slog.String("query", query), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalog.Featured(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) RelatedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseProductID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalog.Get(r.Context(), id)
		if err != nil {
			logger.Warn("Product not found", slog.Int64("productId", id))
			response.Error(w, err)
			return
		}

		products, err := h.catalog.Related(r.Context(), id, product.Category)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func filterFromQuery(r *http.Request) (*models.FilterRequest, error) {

	q := r.URL.Query()

	req := &models.FilterRequest{
		Category: q.Get("category"),
		InStock:  q.Get("in_stock") == "true",
		SortBy:   q.Get("sort"),
	}

	if brands := q.Get("brands"); brands != "" {
		req.Brands = strings.Split(brands, ",")
	}

	if raw := q.Get("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.BadRequestError("Invalid min_price").WithError(err)
		}
		req.MinPrice = &price
	}

	if raw := q.Get("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.BadRequestError("Invalid max_price").WithError(err)
		}
		req.MaxPrice = &price
	}

	return req, nil
}

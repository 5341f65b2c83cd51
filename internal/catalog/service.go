package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/techvault/storefront/internal/config"
	"github.com/techvault/storefront/internal/errors"
	"github.com/techvault/storefront/internal/models"
)

//go:embed products.json
var productsData []byte

const (
	maxFeatured = 8
	maxRelated  = 4

	featuredMinRating = 4.5
)

type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Featured(ctx context.Context) ([]models.Product, error)
	Related(ctx context.Context, productID int64, category string) ([]models.Product, error)
	Filter(ctx context.Context, req *models.FilterRequest) ([]models.Product, error)
}

// service serves a static product set with a configurable simulated latency,
// standing in for a real catalog backend.
type service struct {
	products []models.Product
	latency  time.Duration
}

func New(cfg config.CatalogConfig) (Service, error) {

	var products []models.Product
	if err := json.Unmarshal(productsData, &products); err != nil {
		return nil, fmt.Errorf("failed to parse embedded product data: %w", err)
	}

	return &service{products: products, latency: cfg.Latency}, nil
}

// delay simulates backend latency, honoring context cancellation.
func (s *service) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *service) List(ctx context.Context) ([]models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	return s.copyAll(), nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

func (s *service) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var result []models.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			result = append(result, p)
		}
	}

	return result, nil
}

func (s *service) Search(ctx context.Context, query string) ([]models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	term := strings.ToLower(query)

	var result []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			result = append(result, p)
		}
	}

	return result, nil
}

func (s *service) Featured(ctx context.Context) ([]models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var result []models.Product
	for _, p := range s.products {
		if p.Rating >= featuredMinRating || p.Featured {
			result = append(result, p)
		}

		if len(result) == maxFeatured {
			break
		}
	}

	return result, nil
}

func (s *service) Related(ctx context.Context, productID int64, category string) ([]models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var result []models.Product
	for _, p := range s.products {
		if p.ID == productID || !strings.EqualFold(p.Category, category) {
			continue
		}

		result = append(result, p)

		if len(result) == maxRelated {
			break
		}
	}

	return result, nil
}

func (s *service) Filter(ctx context.Context, req *models.FilterRequest) ([]models.Product, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	result := s.copyAll()

	if req.Category != "" && req.Category != "all" {
		result = keep(result, func(p models.Product) bool {
			return strings.EqualFold(p.Category, req.Category)
		})
	}

	if len(req.Brands) > 0 {
		result = keep(result, func(p models.Product) bool {
			for _, brand := range req.Brands {
				if strings.EqualFold(p.Brand, brand) {
					return true
				}
			}
			return false
		})
	}

	if req.MinPrice != nil {
		result = keep(result, func(p models.Product) bool {
			return p.Price.GreaterThanOrEqual(*req.MinPrice)
		})
	}

	if req.MaxPrice != nil {
		result = keep(result, func(p models.Product) bool {
			return p.Price.LessThanOrEqual(*req.MaxPrice)
		})
	}

	if req.InStock {
		result = keep(result, func(p models.Product) bool {
			return p.InStock
		})
	}

	switch req.SortBy {
	case "price-low":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case "price-high":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.GreaterThan(result[j].Price)
		})
	case "rating":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case "name":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	}

	return result, nil
}

func (s *service) copyAll() []models.Product {
	result := make([]models.Product, len(s.products))
	copy(result, s.products)

	return result
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	result := products[:0]
	for _, p := range products {
		if pred(p) {
			result = append(result, p)
		}
	}

	return result
}

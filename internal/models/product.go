package models

import "github.com/shopspring/decimal"

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
	Image         string          `json:"image,omitempty"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	StockCount    int             `json:"stock_count"`
	InStock       bool            `json:"in_stock"`
	Featured      bool            `json:"featured,omitempty"`
}

// FilterRequest narrows and orders a catalog listing. Zero values mean
// "no constraint" for every field.
type FilterRequest struct {
	Category string           `json:"category,omitempty"`
	Brands   []string         `json:"brands,omitempty"`
	MinPrice *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice *decimal.Decimal `json:"max_price,omitempty"`
	InStock  bool             `json:"in_stock,omitempty"`
	SortBy   string           `json:"sort_by,omitempty" validate:"omitempty,oneof=price-low price-high rating name"`
}

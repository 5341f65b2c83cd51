package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product-and-quantity row in the cart. Product is a
// snapshot taken when the row was first added; later catalog changes do not
// reach items already in the cart.
type LineItem struct {
	ProductID int64     `json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"omitempty,min=1"`
}

type SetQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"`
}

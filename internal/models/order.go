package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ShippingMethod selects the pricing tier used to compute shipping cost.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingNextDay  ShippingMethod = "nextday"
)

// OrderTotals is derived from a line-item list on demand; it is never stored
// with the cart. All figures are rounded to cents.
type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
}

type Order struct {
	ID                uuid.UUID      `json:"id"`
	Items             []LineItem     `json:"items"`
	Totals            OrderTotals    `json:"totals"`
	ShippingMethod    ShippingMethod `json:"shipping_method"`
	ShippingAddress   *Address       `json:"shipping_address,omitempty"`
	Status            OrderStatus    `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
}

type QuoteRequest struct {
	ShippingMethod ShippingMethod `json:"shipping_method" validate:"omitempty,oneof=standard express nextday"`
}

type CreateOrderRequest struct {
	ShippingMethod  ShippingMethod `json:"shipping_method" validate:"omitempty,oneof=standard express nextday"`
	ShippingAddress Address        `json:"shipping_address" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=processing shipped delivered cancelled"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a wholesale order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCanceled   OrderStatus = "canceled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderShipped, OrderCanceled},
	OrderProcessing: {OrderShipped, OrderCanceled},
	OrderShipped:    {OrderDelivered, OrderCanceled},
	OrderDelivered:  {},
	OrderCanceled:   {},
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, st := range orderTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// Order represents the orders table
type Order struct {
	ID               int             `db:"id" json:"id"`
	UUID             string          `db:"uuid" json:"uuid"`
	RetailerID       int             `db:"retailer_id" json:"retailer_id"`
	LocationID       *int            `db:"location_id" json:"location_id,omitempty"`
	Subtotal         decimal.Decimal `db:"subtotal" json:"subtotal"`
	Total            decimal.Decimal `db:"total" json:"total"`
	Status           OrderStatus     `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
	DeliveryDate     *time.Time      `db:"delivery_date" json:"delivery_date,omitempty"`
	PromotionCode    *string         `db:"promotion_code" json:"promotion_code,omitempty"`
	TrackingNumber   *string         `db:"tracking_number" json:"tracking_number,omitempty"`
	TrackingCarrier  *string         `db:"tracking_carrier" json:"tracking_carrier,omitempty"`
	IncludeSamples   bool            `db:"include_samples" json:"include_samples"`
	Notes            *string         `db:"notes" json:"notes,omitempty"`
	InvoiceURL       *string         `db:"invoice_url" json:"invoice_url,omitempty"`
	InvoiceSentAt    *time.Time      `db:"invoice_sent_at" json:"invoice_sent_at,omitempty"`
	InvoiceSentCount int             `db:"invoice_sent_count" json:"invoice_sent_count"`
}

// OrderItem represents the order_item table. Product is filled by joins and
// is never part of the row itself.
type OrderItem struct {
	ID         int             `db:"id" json:"id"`
	OrderID    int             `db:"order_id" json:"order_id"`
	ProductID  int             `db:"product_id" json:"product_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	Product    *Product        `db:"-" json:"product"`
}

// LineTotal returns TotalPrice, falling back to UnitPrice * Quantity when the
// stored total is missing.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	if !oi.TotalPrice.IsZero() {
		return oi.TotalPrice
	}
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// OrderFull is an order with its items and, when joined, its retailer.
type OrderFull struct {
	Order
	Items    []OrderItem `json:"order_items"`
	Retailer *Retailer   `json:"retailer,omitempty"`
}

// OrderNew is the checkout payload. Prices are never taken from the caller.
type OrderNew struct {
	RetailerID     int            `valid:"required"`
	LocationID     *int           `valid:"-"`
	Items          []OrderItemNew `valid:"required"`
	PromotionCode  *string        `valid:"-"`
	IncludeSamples bool           `valid:"-"`
	Notes          *string        `valid:"-"`
	DeliveryDate   *time.Time     `valid:"-"`
}

type OrderItemNew struct {
	ProductID int `json:"product_id" valid:"required"`
	Quantity  int `json:"quantity" valid:"required"`
}

// OrderFilter narrows admin order listings. Zero values mean "any".
type OrderFilter struct {
	Status     OrderStatus
	RetailerID int
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

// Shipment annotates an order with carrier tracking.
type Shipment struct {
	TrackingNumber  string `json:"tracking_number" valid:"required"`
	TrackingCarrier string `json:"tracking_carrier" valid:"required"`
}

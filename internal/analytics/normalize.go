// Package analytics holds the pure reductions behind the admin insights and
// retailer dashboard views. Every function works on an in-memory snapshot and
// never fails on partial data: missing joins and empty fields contribute zero.
package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
)

// ProductRef decodes a joined product that the backend serializes either as
// an object or as an array holding that object.
type ProductRef struct {
	product *entity.Product
}

// UnmarshalJSON accepts an object, an array (first element wins), or null.
func (pr *ProductRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		pr.product = nil
		return nil
	}
	if b[0] == '[' {
		var list []*RawProduct
		if err := json.Unmarshal(b, &list); err != nil {
			return fmt.Errorf("product list: %w", err)
		}
		pr.product = nil
		if len(list) > 0 && list[0] != nil {
			pr.product = list[0].toEntity()
		}
		return nil
	}
	var p RawProduct
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("product object: %w", err)
	}
	pr.product = p.toEntity()
	return nil
}

// Product returns the decoded product or nil.
func (pr ProductRef) Product() *entity.Product {
	return pr.product
}

// RawProduct is a product as exported by the backend.
type RawProduct struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`
	Size          string              `json:"size"`
	Category      string              `json:"category"`
	Description   *string             `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	MSRP          decimal.NullDecimal `json:"msrp"`
	StockQuantity int                 `json:"stock_quantity"`
	IsActive      bool                `json:"is_active"`
	DisplayOrder  *int                `json:"display_order"`
}

func (rp *RawProduct) toEntity() *entity.Product {
	return &entity.Product{
		ID: rp.ID,
		ProductInsert: entity.ProductInsert{
			Name:          rp.Name,
			Size:          rp.Size,
			Category:      rp.Category,
			Description:   rp.Description,
			Price:         rp.Price,
			MSRP:          rp.MSRP,
			StockQuantity: rp.StockQuantity,
			IsActive:      rp.IsActive,
			DisplayOrder:  rp.DisplayOrder,
		},
	}
}

// RawOrderItem is an order line as exported by the backend.
type RawOrderItem struct {
	ID         int              `json:"id"`
	ProductID  int              `json:"product_id"`
	Quantity   int              `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Product    ProductRef       `json:"product"`
}

// RawOrder is an order with nested items as exported by the backend.
type RawOrder struct {
	ID               int                `json:"id"`
	UUID             string             `json:"uuid"`
	RetailerID       int                `json:"retailer_id"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	Total            decimal.Decimal    `json:"total"`
	Status           entity.OrderStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	DeliveryDate     *time.Time         `json:"delivery_date"`
	PromotionCode    *string            `json:"promotion_code"`
	TrackingNumber   *string            `json:"tracking_number"`
	TrackingCarrier  *string            `json:"tracking_carrier"`
	IncludeSamples   bool               `json:"include_samples"`
	Notes            *string            `json:"notes"`
	InvoiceURL       *string            `json:"invoice_url"`
	InvoiceSentAt    *time.Time         `json:"invoice_sent_at"`
	InvoiceSentCount int                `json:"invoice_sent_count"`
	OrderItems       []RawOrderItem     `json:"order_items"`
}

// Normalize converts backend orders into entities: each item's product is a
// single object or nil, and each line carries a total price.
func Normalize(raw []RawOrder) []entity.OrderFull {
	out := make([]entity.OrderFull, 0, len(raw))
	for _, ro := range raw {
		of := entity.OrderFull{
			Order: entity.Order{
				ID:               ro.ID,
				UUID:             ro.UUID,
				RetailerID:       ro.RetailerID,
				Subtotal:         ro.Subtotal,
				Total:            ro.Total,
				Status:           ro.Status,
				CreatedAt:        ro.CreatedAt,
				UpdatedAt:        ro.CreatedAt,
				DeliveryDate:     ro.DeliveryDate,
				PromotionCode:    ro.PromotionCode,
				TrackingNumber:   ro.TrackingNumber,
				TrackingCarrier:  ro.TrackingCarrier,
				IncludeSamples:   ro.IncludeSamples,
				Notes:            ro.Notes,
				InvoiceURL:       ro.InvoiceURL,
				InvoiceSentAt:    ro.InvoiceSentAt,
				InvoiceSentCount: ro.InvoiceSentCount,
			},
			Items: make([]entity.OrderItem, 0, len(ro.OrderItems)),
		}
		for _, ri := range ro.OrderItems {
			item := entity.OrderItem{
				ID:        ri.ID,
				OrderID:   ro.ID,
				ProductID: ri.ProductID,
				Quantity:  ri.Quantity,
				UnitPrice: ri.UnitPrice,
				Product:   ri.Product.Product(),
			}
			if item.ProductID == 0 && item.Product != nil {
				item.ProductID = item.Product.ID
			}
			if ri.TotalPrice != nil {
				item.TotalPrice = *ri.TotalPrice
			} else {
				item.TotalPrice = item.LineTotal()
			}
			of.Items = append(of.Items, item)
		}
		out = append(out, of)
	}
	return out
}

// ExcludeCanceled returns the orders that count towards financial figures.
// History views keep using the unfiltered slice.
func ExcludeCanceled(orders []entity.OrderFull) []entity.OrderFull {
	out := make([]entity.OrderFull, 0, len(orders))
	for _, o := range orders {
		if o.Status == entity.OrderCanceled {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ForRetailer returns the orders placed by one retailer.
func ForRetailer(orders []entity.OrderFull, retailerID int) []entity.OrderFull {
	out := make([]entity.OrderFull, 0)
	for _, o := range orders {
		if o.RetailerID == retailerID {
			out = append(out, o)
		}
	}
	return out
}

// CatalogIndex keys a product slice by id.
func CatalogIndex(products []entity.Product) map[int]entity.Product {
	idx := make(map[int]entity.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

package form

import (
	"net/http"
	"strings"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/entity"
)

const maxOrderLines = 100

type CheckoutRequest struct {
	Items          []entity.OrderItemNew `json:"items" valid:"required"`
	LocationID     *int                  `json:"location_id,omitempty" valid:"-"`
	PromotionCode  *string               `json:"promotion_code,omitempty" valid:"-"`
	IncludeSamples bool                  `json:"include_samples" valid:"-"`
	Notes          *string               `json:"notes,omitempty" valid:"-"`
	DeliveryDate   *time.Time            `json:"delivery_date,omitempty" valid:"-"`
}

func (f *CheckoutRequest) Bind(r *http.Request) error {
	f.PromotionCode = trimPtr(f.PromotionCode)
	f.Notes = trimPtr(f.Notes)
	if f.PromotionCode != nil {
		up := strings.ToUpper(*f.PromotionCode)
		f.PromotionCode = &up
	}
	if len(f.Items) == 0 {
		return badRequest("order has no items")
	}
	if err := ValidateStruct(f); err != nil {
		return err
	}
	var msgs []string
	if len(f.Items) > maxOrderLines {
		msgs = append(msgs, "too many order lines")
	}
	for _, it := range f.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			msgs = append(msgs, "every item needs a product and a positive quantity")
			break
		}
	}
	if f.Notes != nil && len(*f.Notes) > 2000 {
		msgs = append(msgs, "notes are too long")
	}
	if len(msgs) > 0 {
		return badRequest(msgs...)
	}
	return nil
}

// ToOrderNew builds the store payload. Prices are never read from the request.
func (f *CheckoutRequest) ToOrderNew(retailerID int) *entity.OrderNew {
	return &entity.OrderNew{
		RetailerID:     retailerID,
		LocationID:     f.LocationID,
		Items:          f.Items,
		PromotionCode:  f.PromotionCode,
		IncludeSamples: f.IncludeSamples,
		Notes:          f.Notes,
		DeliveryDate:   f.DeliveryDate,
	}
}

// AdminOrderRequest places an order on behalf of a retailer.
type AdminOrderRequest struct {
	RetailerID int `json:"retailer_id"`
	CheckoutRequest
}

func (f *AdminOrderRequest) Bind(r *http.Request) error {
	if f.RetailerID <= 0 {
		return badRequest("retailer id is required")
	}
	return f.CheckoutRequest.Bind(r)
}

type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status"`
}

func (f *UpdateStatusRequest) Bind(r *http.Request) error {
	f.Status = entity.OrderStatus(strings.ToLower(strings.TrimSpace(string(f.Status))))
	if !f.Status.Valid() {
		return badRequest("unknown order status")
	}
	return nil
}

type ShipmentRequest struct {
	entity.Shipment
}

func (f *ShipmentRequest) Bind(r *http.Request) error {
	f.TrackingNumber = strings.TrimSpace(f.TrackingNumber)
	f.TrackingCarrier = strings.TrimSpace(f.TrackingCarrier)
	return ValidateStruct(f)
}

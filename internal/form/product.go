package form

import (
	"net/http"
	"strings"

	"github.com/jekabolt/wholesale-portal/internal/entity"
)

type ProductRequest struct {
	entity.ProductInsert
}

func (f *ProductRequest) Bind(r *http.Request) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Size = strings.TrimSpace(f.Size)
	f.Category = strings.TrimSpace(f.Category)
	f.Description = trimPtr(f.Description)
	if err := ValidateStruct(f); err != nil {
		return err
	}
	var msgs []string
	if !f.Price.IsPositive() {
		msgs = append(msgs, "price must be positive")
	}
	if f.Price.Exponent() < -2 {
		msgs = append(msgs, "price has more than two decimals")
	}
	if f.MSRP.Valid && f.MSRP.Decimal.IsNegative() {
		msgs = append(msgs, "msrp must not be negative")
	}
	if f.StockQuantity < 0 {
		msgs = append(msgs, "stock quantity must not be negative")
	}
	if f.DisplayOrder != nil && *f.DisplayOrder < 0 {
		msgs = append(msgs, "display order must not be negative")
	}
	if len(msgs) > 0 {
		return badRequest(msgs...)
	}
	return nil
}

type UpdateStockRequest struct {
	StockQuantity int `json:"stock_quantity"`
}

func (f *UpdateStockRequest) Bind(r *http.Request) error {
	if f.StockQuantity < 0 {
		return badRequest("stock quantity must not be negative")
	}
	return nil
}

// ProductImageRequest carries a data URI, "data:image/png;base64,...".
type ProductImageRequest struct {
	Image string `json:"image" valid:"required"`
}

func (f *ProductImageRequest) Bind(r *http.Request) error {
	if err := ValidateStruct(f); err != nil {
		return err
	}
	if !strings.HasPrefix(f.Image, "data:image/jpeg;base64,") && !strings.HasPrefix(f.Image, "data:image/png;base64,") {
		return badRequest("image must be a base64 jpeg or png data uri")
	}
	return nil
}

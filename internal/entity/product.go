package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Known catalog categories. Category is free text, these are the ones the
// catalog ships with.
const (
	CategoryToppers = "Toppers"
	CategoryTreats  = "Treats"
)

// ProductInsert holds the editable product fields.
type ProductInsert struct {
	Name          string              `db:"name" json:"name" valid:"required"`
	Size          string              `db:"size" json:"size"`
	Category      string              `db:"category" json:"category" valid:"required"`
	Description   *string             `db:"description" json:"description,omitempty"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	MSRP          decimal.NullDecimal `db:"msrp" json:"msrp"`
	StockQuantity int                 `db:"stock_quantity" json:"stock_quantity"`
	IsActive      bool                `db:"is_active" json:"is_active"`
	DisplayOrder  *int                `db:"display_order" json:"display_order,omitempty"`
}

// Product represents the products table
type Product struct {
	ID int `db:"id" json:"id"`
	ProductInsert
	ImageURL     *string   `db:"image_url" json:"image_url,omitempty"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	Blurhash     *string   `db:"blurhash" json:"blurhash,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ProductImage is the result of a processed product image upload.
type ProductImage struct {
	FullSizeURL  string `json:"full_size_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Blurhash     string `json:"blurhash"`
}

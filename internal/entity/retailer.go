package entity

import (
	"time"
)

// RetailerInsert holds the fields a retailer provides at signup.
type RetailerInsert struct {
	CompanyName     string  `db:"company_name" json:"company_name" valid:"required"`
	ContactName     string  `db:"contact_name" json:"contact_name" valid:"required"`
	Email           string  `db:"email" json:"email" valid:"required,email"`
	Phone           string  `db:"phone" json:"phone"`
	BusinessAddress *string `db:"business_address" json:"business_address,omitempty"`
	TaxID           *string `db:"tax_id" json:"tax_id,omitempty"`
}

// Retailer represents the retailers table
type Retailer struct {
	ID int `db:"id" json:"id"`
	RetailerInsert
	AccountNumber    string     `db:"account_number" json:"account_number"`
	PasswordHash     string     `db:"password_hash" json:"-"`
	InvoiceURL       *string    `db:"invoice_url" json:"invoice_url,omitempty"`
	InvoiceSentAt    *time.Time `db:"invoice_sent_at" json:"invoice_sent_at,omitempty"`
	InvoiceSentCount int        `db:"invoice_sent_count" json:"invoice_sent_count"`
	StripeCustomerID *string    `db:"stripe_customer_id" json:"-"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// RetailerLocationInsert holds the editable ship-to fields.
type RetailerLocationInsert struct {
	Name   string  `db:"name" json:"name" valid:"required"`
	Street string  `db:"street" json:"street" valid:"required"`
	City   string  `db:"city" json:"city" valid:"required"`
	State  string  `db:"state" json:"state" valid:"required,stringlength(2|2)"`
	Zip    string  `db:"zip" json:"zip" valid:"required"`
	Phone  *string `db:"phone" json:"phone,omitempty"`
}

// RetailerLocation represents the retailer_locations table. At most one
// location per retailer has IsDefault set.
type RetailerLocation struct {
	ID         int `db:"id" json:"id"`
	RetailerID int `db:"retailer_id" json:"retailer_id"`
	RetailerLocationInsert
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

package form

import (
	"net/http"
	"strings"

	"github.com/jekabolt/wholesale-portal/internal/address"
	"github.com/jekabolt/wholesale-portal/internal/entity"
)

// AddressFields is the structured business address captured on signup and
// profile edits.
type AddressFields struct {
	Street string `json:"street" valid:"required"`
	City   string `json:"city" valid:"required"`
	State  string `json:"state" valid:"required,alpha,stringlength(2|2)"`
	Zip    string `json:"zip" valid:"required,matches(^[0-9]{5}(-[0-9]{4})?$)"`
}

func (a *AddressFields) normalize() {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
	a.Zip = strings.TrimSpace(a.Zip)
}

// Format joins the parts into the free-text business address.
func (a *AddressFields) Format() string {
	return address.Format(address.Address{
		Street: a.Street,
		City:   a.City,
		State:  a.State,
		Zip:    a.Zip,
	})
}

// AddressFieldsFrom splits a stored business address for editing.
func AddressFieldsFrom(s string) AddressFields {
	a := address.Parse(s)
	return AddressFields{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip}
}

type RetailerSignupRequest struct {
	CompanyName string  `json:"company_name" valid:"required,stringlength(1|200)"`
	ContactName string  `json:"contact_name" valid:"required,stringlength(1|200)"`
	Email       string  `json:"email" valid:"required,email"`
	Password    string  `json:"password" valid:"required"`
	Phone       string  `json:"phone" valid:"optional,stringlength(7|32)"`
	TaxID       *string `json:"tax_id,omitempty" valid:"-"`
	AddressFields
}

func (f *RetailerSignupRequest) Bind(r *http.Request) error {
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.ContactName = strings.TrimSpace(f.ContactName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	f.TaxID = trimPtr(f.TaxID)
	f.AddressFields.normalize()
	if err := ValidateStruct(f); err != nil {
		return err
	}
	if len(f.Password) < minPasswordLength {
		return badRequest("password is too short")
	}
	return nil
}

func (f *RetailerSignupRequest) ToInsert() *entity.RetailerInsert {
	addr := f.AddressFields.Format()
	return &entity.RetailerInsert{
		CompanyName:     f.CompanyName,
		ContactName:     f.ContactName,
		Email:           f.Email,
		Phone:           f.Phone,
		BusinessAddress: &addr,
		TaxID:           f.TaxID,
	}
}

// AccountUpdateRequest edits retailer profile fields. Email is immutable here.
type AccountUpdateRequest struct {
	CompanyName string  `json:"company_name" valid:"required,stringlength(1|200)"`
	ContactName string  `json:"contact_name" valid:"required,stringlength(1|200)"`
	Phone       string  `json:"phone" valid:"optional,stringlength(7|32)"`
	TaxID       *string `json:"tax_id,omitempty" valid:"-"`
	AddressFields
}

func (f *AccountUpdateRequest) Bind(r *http.Request) error {
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.ContactName = strings.TrimSpace(f.ContactName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.TaxID = trimPtr(f.TaxID)
	f.AddressFields.normalize()
	return ValidateStruct(f)
}

// Apply copies the editable fields onto the stored retailer.
func (f *AccountUpdateRequest) Apply(r *entity.Retailer) *entity.RetailerInsert {
	addr := f.AddressFields.Format()
	return &entity.RetailerInsert{
		CompanyName:     f.CompanyName,
		ContactName:     f.ContactName,
		Email:           r.Email,
		Phone:           f.Phone,
		BusinessAddress: &addr,
		TaxID:           f.TaxID,
	}
}

type LocationRequest struct {
	entity.RetailerLocationInsert
}

func (f *LocationRequest) Bind(r *http.Request) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Street = strings.TrimSpace(f.Street)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Zip = strings.TrimSpace(f.Zip)
	f.Phone = trimPtr(f.Phone)
	return ValidateStruct(f)
}

// AdminRetailerRequest lets the vendor team correct any profile field,
// including the login email.
type AdminRetailerRequest struct {
	Email string `json:"email" valid:"required,email"`
	AccountUpdateRequest
}

func (f *AdminRetailerRequest) Bind(r *http.Request) error {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	if err := f.AccountUpdateRequest.Bind(r); err != nil {
		return err
	}
	return ValidateStruct(f)
}

func (f *AdminRetailerRequest) ToInsert() *entity.RetailerInsert {
	ins := f.Apply(&entity.Retailer{})
	ins.Email = f.Email
	return ins
}

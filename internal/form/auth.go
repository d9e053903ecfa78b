package form

import (
	"net/http"
	"strings"
)

const minPasswordLength = 8

type LoginRequest struct {
	Username string `json:"username" valid:"required"`
	Password string `json:"password" valid:"required"`
}

func (f *LoginRequest) Bind(r *http.Request) error {
	f.Username = strings.ToLower(strings.TrimSpace(f.Username))
	return ValidateStruct(f)
}

type CreateAdminRequest struct {
	MasterPassword string `json:"master_password" valid:"required"`
	Username       string `json:"username" valid:"required,alphanum,stringlength(3|64)"`
	Password       string `json:"password" valid:"required"`
}

func (f *CreateAdminRequest) Bind(r *http.Request) error {
	f.Username = strings.ToLower(strings.TrimSpace(f.Username))
	if err := ValidateStruct(f); err != nil {
		return err
	}
	if len(f.Password) < minPasswordLength {
		return badRequest("password is too short")
	}
	return nil
}

type ChangePasswordRequest struct {
	Username        string `json:"username" valid:"required"`
	CurrentPassword string `json:"current_password" valid:"required"`
	NewPassword     string `json:"new_password" valid:"required"`
}

func (f *ChangePasswordRequest) Bind(r *http.Request) error {
	f.Username = strings.ToLower(strings.TrimSpace(f.Username))
	if err := ValidateStruct(f); err != nil {
		return err
	}
	if len(f.NewPassword) < minPasswordLength {
		return badRequest("new password is too short")
	}
	return nil
}

type RetailerLoginRequest struct {
	Email    string `json:"email" valid:"required,email"`
	Password string `json:"password" valid:"required"`
}

func (f *RetailerLoginRequest) Bind(r *http.Request) error {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return ValidateStruct(f)
}

// RetailerPasswordRequest sets a retailer password on behalf of the
// retailer, e.g. after an import.
type RetailerPasswordRequest struct {
	MasterPassword string `json:"master_password" valid:"required"`
	Password       string `json:"password" valid:"required"`
}

func (f *RetailerPasswordRequest) Bind(r *http.Request) error {
	if err := ValidateStruct(f); err != nil {
		return err
	}
	if len(f.Password) < minPasswordLength {
		return badRequest("password is too short")
	}
	return nil
}

type DeleteAdminRequest struct {
	MasterPassword string `json:"master_password" valid:"required"`
	Username       string `json:"username" valid:"required"`
}

func (f *DeleteAdminRequest) Bind(r *http.Request) error {
	f.Username = strings.ToLower(strings.TrimSpace(f.Username))
	return ValidateStruct(f)
}

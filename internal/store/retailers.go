package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type retailerStore struct {
	*MYSQLStore
}

// Retailers returns an object implementing retailers interface
func (ms *MYSQLStore) Retailers() dependency.Retailers {
	return &retailerStore{
		MYSQLStore: ms,
	}
}

// generateAccountNumber returns a short human-friendly account reference (WS-XXXXXXXX).
func generateAccountNumber() string {
	return "WS-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (rs *retailerStore) AddRetailer(ctx context.Context, r *entity.RetailerInsert, pwHash string) (*entity.Retailer, error) {
	query := `
	INSERT INTO retailers
		(account_number, company_name, contact_name, email, phone, business_address, tax_id, password_hash)
	VALUES
		(:accountNumber, :companyName, :contactName, :email, :phone, :businessAddress, :taxId, :passwordHash)
	`
	for attempt := 0; attempt < 3; attempt++ {
		id, err := ExecNamedLastId(ctx, rs.DB(), query, map[string]any{
			"accountNumber":   generateAccountNumber(),
			"companyName":     r.CompanyName,
			"contactName":     r.ContactName,
			"email":           strings.ToLower(strings.TrimSpace(r.Email)),
			"phone":           r.Phone,
			"businessAddress": r.BusinessAddress,
			"taxId":           r.TaxID,
			"passwordHash":    pwHash,
		})
		if err == nil {
			return rs.GetRetailerById(ctx, id)
		}
		if !rs.IsErrUniqueViolation(err) {
			return nil, fmt.Errorf("can't add retailer: %w", err)
		}
		if _, lookupErr := rs.GetRetailerByEmail(ctx, r.Email); lookupErr == nil {
			return nil, fmt.Errorf("retailer %s: %w", r.Email, gerr.AlreadyExists)
		}
	}
	return nil, fmt.Errorf("can't allocate account number: %w", gerr.AlreadyExists)
}

func (rs *retailerStore) getBy(ctx context.Context, query string, params map[string]any) (*entity.Retailer, error) {
	r, err := QueryNamedOne[entity.Retailer](ctx, rs.DB(), query, params)
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.RetailerNotFound
		}
		return nil, fmt.Errorf("can't get retailer: %w", err)
	}
	return &r, nil
}

func (rs *retailerStore) GetRetailerById(ctx context.Context, id int) (*entity.Retailer, error) {
	return rs.getBy(ctx, `SELECT * FROM retailers WHERE id = :id`, map[string]any{"id": id})
}

func (rs *retailerStore) GetRetailerByEmail(ctx context.Context, email string) (*entity.Retailer, error) {
	return rs.getBy(ctx, `SELECT * FROM retailers WHERE email = :email`, map[string]any{
		"email": strings.ToLower(strings.TrimSpace(email)),
	})
}

func (rs *retailerStore) ListRetailers(ctx context.Context) ([]entity.Retailer, error) {
	retailers, err := QueryListNamed[entity.Retailer](ctx, rs.DB(), `SELECT * FROM retailers ORDER BY id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list retailers: %w", err)
	}
	return retailers, nil
}

func (rs *retailerStore) UpdateRetailer(ctx context.Context, id int, r *entity.RetailerInsert) error {
	query := `
	UPDATE retailers SET
		company_name = :companyName,
		contact_name = :contactName,
		email = :email,
		phone = :phone,
		business_address = :businessAddress,
		tax_id = :taxId
	WHERE id = :id
	`
	n, err := execNamedAffected(ctx, rs.DB(), query, map[string]any{
		"id":              id,
		"companyName":     r.CompanyName,
		"contactName":     r.ContactName,
		"email":           strings.ToLower(strings.TrimSpace(r.Email)),
		"phone":           r.Phone,
		"businessAddress": r.BusinessAddress,
		"taxId":           r.TaxID,
	})
	if err != nil {
		if rs.IsErrUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", r.Email, gerr.AlreadyExists)
		}
		return fmt.Errorf("can't update retailer: %w", err)
	}
	if n == 0 {
		if _, err := rs.GetRetailerById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (rs *retailerStore) SetStripeCustomerId(ctx context.Context, id int, customerId string) error {
	err := ExecNamed(ctx, rs.DB(), `UPDATE retailers SET stripe_customer_id = :customerId WHERE id = :id`, map[string]any{
		"id":         id,
		"customerId": customerId,
	})
	if err != nil {
		return fmt.Errorf("can't set stripe customer id: %w", err)
	}
	return nil
}

func (rs *retailerStore) SetPasswordHash(ctx context.Context, id int, pwHash string) error {
	n, err := execNamedAffected(ctx, rs.DB(), `UPDATE retailers SET password_hash = :pwHash WHERE id = :id`, map[string]any{
		"id":     id,
		"pwHash": pwHash,
	})
	if err != nil {
		return fmt.Errorf("can't set retailer password: %w", err)
	}
	if n == 0 {
		if _, err := rs.GetRetailerById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// SetRetailerInvoiceSent records the latest invoice sent to the retailer.
func (rs *retailerStore) SetRetailerInvoiceSent(ctx context.Context, id int, url string) error {
	err := ExecNamed(ctx, rs.DB(), `
	UPDATE retailers SET
		invoice_url = :url,
		invoice_sent_at = :sentAt,
		invoice_sent_count = invoice_sent_count + 1
	WHERE id = :id`, map[string]any{
		"id":     id,
		"url":    url,
		"sentAt": rs.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't set retailer invoice: %w", err)
	}
	return nil
}

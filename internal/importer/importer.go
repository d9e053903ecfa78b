// Package importer loads a JSON export of the previous backend into the
// portal database.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

// RawRetailer is a retailer as exported by the backend.
type RawRetailer struct {
	ID              int     `json:"id"`
	CompanyName     string  `json:"company_name"`
	ContactName     string  `json:"contact_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BusinessAddress *string `json:"business_address"`
	TaxID           *string `json:"tax_id"`
}

// Export is the whole document.
type Export struct {
	Retailers []RawRetailer          `json:"retailers"`
	Products  []analytics.RawProduct `json:"products"`
	Orders    []analytics.RawOrder   `json:"orders"`
}

// Result counts inserted rows. Retailers matched by email are counted in
// RetailersMatched, not Retailers.
type Result struct {
	Retailers        int `json:"retailers"`
	RetailersMatched int `json:"retailers_matched"`
	Products         int `json:"products"`
	Orders           int `json:"orders"`
}

// Decode reads an export.
func Decode(r io.Reader) (*Export, error) {
	ex := &Export{}
	if err := json.NewDecoder(r).Decode(ex); err != nil {
		return nil, fmt.Errorf("can't decode export: %w", err)
	}
	return ex, nil
}

// Import inserts the export in one transaction. Ids are reassigned; order
// references are remapped. A product that only appears joined on an order
// item is created inactive so history keeps its name and size. Imported
// retailers get no password; one is set with PUT /api/auth/retailer/{id}/password.
func Import(ctx context.Context, repo dependency.Repository, ex *Export) (*Result, error) {
	res := &Result{}
	err := repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		*res = Result{}

		retailerIDs := make(map[int]int, len(ex.Retailers))
		for _, rr := range ex.Retailers {
			id, matched, err := importRetailer(ctx, rep, &rr)
			if err != nil {
				return err
			}
			retailerIDs[rr.ID] = id
			if matched {
				res.RetailersMatched++
			} else {
				res.Retailers++
			}
		}

		productIDs := make(map[int]int, len(ex.Products))
		for _, rp := range ex.Products {
			p := productInsert(&rp)
			id, err := rep.Products().AddProduct(ctx, p)
			if err != nil {
				return fmt.Errorf("product %d: %w", rp.ID, err)
			}
			productIDs[rp.ID] = id
			res.Products++
		}

		for _, of := range analytics.Normalize(ex.Orders) {
			newRetailer, ok := retailerIDs[of.RetailerID]
			if !ok {
				return fmt.Errorf("order %s references unknown retailer %d: %w", of.UUID, of.RetailerID, gerr.BadRequest)
			}
			of.RetailerID = newRetailer
			of.LocationID = nil

			for i := range of.Items {
				it := &of.Items[i]
				newProduct, ok := productIDs[it.ProductID]
				if !ok {
					if it.Product == nil {
						return fmt.Errorf("order %s item %d references unknown product %d: %w",
							of.UUID, it.ID, it.ProductID, gerr.BadRequest)
					}
					p := it.Product.ProductInsert
					p.IsActive = false
					id, err := rep.Products().AddProduct(ctx, &p)
					if err != nil {
						return fmt.Errorf("product %d from order %s: %w", it.ProductID, of.UUID, err)
					}
					productIDs[it.ProductID] = id
					newProduct = id
					res.Products++
				}
				it.ProductID = newProduct
				it.Product = nil
			}

			if _, err := rep.Order().InsertImported(ctx, &of); err != nil {
				return fmt.Errorf("order %s: %w", of.UUID, err)
			}
			res.Orders++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Default().InfoContext(ctx, "import done",
		slog.Int("retailers", res.Retailers),
		slog.Int("retailers_matched", res.RetailersMatched),
		slog.Int("products", res.Products),
		slog.Int("orders", res.Orders),
	)
	return res, nil
}

func importRetailer(ctx context.Context, rep dependency.Repository, rr *RawRetailer) (int, bool, error) {
	email := strings.ToLower(strings.TrimSpace(rr.Email))
	if email == "" {
		return 0, false, fmt.Errorf("retailer %d has no email: %w", rr.ID, gerr.BadRequest)
	}
	existing, err := rep.Retailers().GetRetailerByEmail(ctx, email)
	if err == nil {
		return existing.ID, true, nil
	}
	if !errors.Is(err, gerr.RetailerNotFound) {
		return 0, false, fmt.Errorf("retailer %d: %w", rr.ID, err)
	}
	rt, err := rep.Retailers().AddRetailer(ctx, &entity.RetailerInsert{
		CompanyName:     strings.TrimSpace(rr.CompanyName),
		ContactName:     strings.TrimSpace(rr.ContactName),
		Email:           email,
		Phone:           strings.TrimSpace(rr.Phone),
		BusinessAddress: rr.BusinessAddress,
		TaxID:           rr.TaxID,
	}, "")
	if err != nil {
		return 0, false, fmt.Errorf("retailer %d: %w", rr.ID, err)
	}
	return rt.ID, false, nil
}

func productInsert(rp *analytics.RawProduct) *entity.ProductInsert {
	return &entity.ProductInsert{
		Name:          strings.TrimSpace(rp.Name),
		Size:          strings.TrimSpace(rp.Size),
		Category:      strings.TrimSpace(rp.Category),
		Description:   rp.Description,
		Price:         rp.Price,
		MSRP:          rp.MSRP,
		StockQuantity: rp.StockQuantity,
		IsActive:      rp.IsActive,
		DisplayOrder:  rp.DisplayOrder,
	}
}

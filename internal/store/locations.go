package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type locationStore struct {
	*MYSQLStore
}

// Locations returns an object implementing locations interface
func (ms *MYSQLStore) Locations() dependency.Locations {
	return &locationStore{
		MYSQLStore: ms,
	}
}

func (ls *locationStore) ListLocations(ctx context.Context, retailerId int) ([]entity.RetailerLocation, error) {
	locs, err := QueryListNamed[entity.RetailerLocation](ctx, ls.DB(), `
	SELECT * FROM retailer_locations
	WHERE retailer_id = :retailerId
	ORDER BY is_default DESC, id`, map[string]any{
		"retailerId": retailerId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list locations: %w", err)
	}
	return locs, nil
}

func (ls *locationStore) GetLocation(ctx context.Context, retailerId, id int) (*entity.RetailerLocation, error) {
	loc, err := QueryNamedOne[entity.RetailerLocation](ctx, ls.DB(), `
	SELECT * FROM retailer_locations WHERE id = :id AND retailer_id = :retailerId`, map[string]any{
		"id":         id,
		"retailerId": retailerId,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.LocationNotFound
		}
		return nil, fmt.Errorf("can't get location: %w", err)
	}
	return &loc, nil
}

// AddLocation inserts a location. The first location of a retailer becomes its default.
func (ls *locationStore) AddLocation(ctx context.Context, retailerId int, l *entity.RetailerLocationInsert) (int, error) {
	var id int
	err := ls.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var count int
		if err := rep.DB().GetContext(ctx, &count, `SELECT COUNT(*) FROM retailer_locations WHERE retailer_id = ?`, retailerId); err != nil {
			return fmt.Errorf("can't count locations: %w", err)
		}

		var err error
		id, err = ExecNamedLastId(ctx, rep.DB(), `
		INSERT INTO retailer_locations
			(retailer_id, name, street, city, state, zip, phone, is_default)
		VALUES
			(:retailerId, :name, :street, :city, :state, :zip, :phone, :isDefault)`, map[string]any{
			"retailerId": retailerId,
			"name":       l.Name,
			"street":     l.Street,
			"city":       l.City,
			"state":      l.State,
			"zip":        l.Zip,
			"phone":      l.Phone,
			"isDefault":  count == 0,
		})
		if err != nil {
			return fmt.Errorf("can't add location: %w", err)
		}
		return nil
	})
	return id, err
}

func (ls *locationStore) UpdateLocation(ctx context.Context, retailerId, id int, l *entity.RetailerLocationInsert) error {
	if _, err := ls.GetLocation(ctx, retailerId, id); err != nil {
		return err
	}
	err := ExecNamed(ctx, ls.DB(), `
	UPDATE retailer_locations SET
		name = :name,
		street = :street,
		city = :city,
		state = :state,
		zip = :zip,
		phone = :phone
	WHERE id = :id AND retailer_id = :retailerId`, map[string]any{
		"id":         id,
		"retailerId": retailerId,
		"name":       l.Name,
		"street":     l.Street,
		"city":       l.City,
		"state":      l.State,
		"zip":        l.Zip,
		"phone":      l.Phone,
	})
	if err != nil {
		return fmt.Errorf("can't update location: %w", err)
	}
	return nil
}

// DeleteLocation removes a location. When it was the default, the oldest
// remaining location takes over.
func (ls *locationStore) DeleteLocation(ctx context.Context, retailerId, id int) error {
	return ls.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		loc, err := rep.Locations().GetLocation(ctx, retailerId, id)
		if err != nil {
			return err
		}
		err = ExecNamed(ctx, rep.DB(), `DELETE FROM retailer_locations WHERE id = :id AND retailer_id = :retailerId`, map[string]any{
			"id":         id,
			"retailerId": retailerId,
		})
		if err != nil {
			return fmt.Errorf("can't delete location: %w", err)
		}
		if !loc.IsDefault {
			return nil
		}
		return ExecNamed(ctx, rep.DB(), `
		UPDATE retailer_locations SET is_default = true
		WHERE retailer_id = :retailerId
		ORDER BY id
		LIMIT 1`, map[string]any{
			"retailerId": retailerId,
		})
	})
}

// SetDefault clears and sets the default flag in one transaction, so readers
// never observe zero or two defaults for a retailer.
func (ls *locationStore) SetDefault(ctx context.Context, retailerId, id int) error {
	return ls.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if _, err := rep.Locations().GetLocation(ctx, retailerId, id); err != nil {
			return err
		}
		err := ExecNamed(ctx, rep.DB(), `
		UPDATE retailer_locations SET is_default = (id = :id)
		WHERE retailer_id = :retailerId`, map[string]any{
			"id":         id,
			"retailerId": retailerId,
		})
		if err != nil {
			return fmt.Errorf("can't set default location: %w", err)
		}
		return nil
	})
}

package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

// AddAdmin creates a new admin
func (as *adminStore) AddAdmin(ctx context.Context, un, pwHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		_, err := rep.DB().ExecContext(ctx, `
		INSERT INTO admins
		(username, password_hash)
		VALUES
		(?, ?)`, un, pwHash)
		if err != nil {
			if as.IsErrUniqueViolation(err) {
				return fmt.Errorf("admin %s: %w", un, gerr.AlreadyExists)
			}
			return fmt.Errorf("can't add admin user: %w", err)
		}
		return nil
	})
}

// DeleteAdmin deletes an admin
func (as *adminStore) DeleteAdmin(ctx context.Context, username string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		res, err := rep.DB().ExecContext(ctx, `
		DELETE FROM admins WHERE username = ?`, username)
		if err != nil {
			return fmt.Errorf("failed to delete admin user")
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows")
		}
		if ra == 0 {
			return gerr.NotFound
		}
		return nil
	})
}

// ChangePassword changes the password of an admin
func (as *adminStore) ChangePassword(ctx context.Context, un, newHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		res, err := rep.DB().ExecContext(ctx, `
			UPDATE admins
			SET password_hash = ?
			WHERE username = ?`, newHash, un)
		if err != nil {
			return fmt.Errorf("failed change admin user password")
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows")
		}
		if ra == 0 {
			return gerr.NotFound
		}
		return nil
	})
}

// PasswordHashByUsername returns password hash of an admin
func (as *adminStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	var pw string
	err := as.db.GetContext(ctx, &pw, `
		SELECT
		password_hash
		FROM admins WHERE username = ?`, un)
	if err != nil {
		if isNoRows(err) {
			return "", gerr.NotFound
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return pw, nil
}

// GetAdminByUsername returns admin by username
func (as *adminStore) GetAdminByUsername(ctx context.Context, un string) (*entity.Admin, error) {
	admin, err := QueryNamedOne[entity.Admin](ctx, as.DB(), `
		SELECT
		id,
		username,
		password_hash,
		created_at
		FROM admins WHERE username = :username`, map[string]any{
		"username": un,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.NotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

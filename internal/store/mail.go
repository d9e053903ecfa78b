package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
)

type mailStore struct {
	*MYSQLStore
}

// Mail returns an object implementing mail interface
func (ms *MYSQLStore) Mail() dependency.Mail {
	return &mailStore{
		MYSQLStore: ms,
	}
}

func (ms *mailStore) AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error) {
	query := `
	INSERT INTO send_email_request
		(from_email, to_email, html, subject, reply_to, sent, sent_at)
	VALUES
		(:fromEmail, :toEmail, :html, :subject, :replyTo, :sent, :sentAt)`

	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"fromEmail": ser.From,
		"toEmail":   ser.To,
		"html":      ser.HTML,
		"subject":   ser.Subject,
		"replyTo":   ser.ReplyTo,
		"sent":      ser.Sent,
		"sentAt":    sql.NullTime{Time: ms.Now(), Valid: ser.Sent},
	})
	if err != nil {
		return 0, fmt.Errorf("can't queue mail: %w", err)
	}
	return id, nil
}

func (ms *mailStore) ListUnsent(ctx context.Context, maxAttempts, limit int) ([]entity.SendEmailRequest, error) {
	query := `
	SELECT * FROM send_email_request
	WHERE sent = false AND attempts < :maxAttempts
	ORDER BY id
	LIMIT :limit`

	srs, err := QueryListNamed[entity.SendEmailRequest](ctx, ms.DB(), query, map[string]any{
		"maxAttempts": maxAttempts,
		"limit":       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list unsent mail: %w", err)
	}
	return srs, nil
}

func (ms *mailStore) MarkSent(ctx context.Context, id int) error {
	query := `UPDATE send_email_request SET sent = true, sent_at = :sentAt WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":     id,
		"sentAt": ms.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't mark mail %d sent: %w", id, err)
	}
	return nil
}

func (ms *mailStore) MarkFailed(ctx context.Context, id int, errMsg string) error {
	query := `
	UPDATE send_email_request
	SET attempts = attempts + 1, last_error = :err
	WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":  id,
		"err": errMsg,
	})
	if err != nil {
		return fmt.Errorf("can't mark mail %d failed: %w", id, err)
	}
	return nil
}

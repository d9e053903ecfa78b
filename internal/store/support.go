package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type sampleStore struct {
	*MYSQLStore
}

// Samples returns an object implementing samples interface
func (ms *MYSQLStore) Samples() dependency.Samples {
	return &sampleStore{
		MYSQLStore: ms,
	}
}

func (ss *sampleStore) AddSampleRequest(ctx context.Context, s *entity.SampleRequestInsert) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
	INSERT INTO sample_requests (retailer_id, products, notes)
	VALUES (:retailerId, :products, :notes)`, map[string]any{
		"retailerId": s.RetailerID,
		"products":   s.Products,
		"notes":      s.Notes,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add sample request: %w", err)
	}
	return id, nil
}

func (ss *sampleStore) ListSampleRequests(ctx context.Context, includeHandled bool) ([]entity.SampleRequest, error) {
	query := `SELECT * FROM sample_requests`
	if !includeHandled {
		query += ` WHERE handled = false`
	}
	query += ` ORDER BY created_at DESC, id DESC`
	srs, err := QueryListNamed[entity.SampleRequest](ctx, ss.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list sample requests: %w", err)
	}
	return srs, nil
}

func (ss *sampleStore) MarkHandled(ctx context.Context, id int) error {
	n, err := execNamedAffected(ctx, ss.DB(), `UPDATE sample_requests SET handled = true WHERE id = :id AND handled = false`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't mark sample request handled: %w", err)
	}
	if n == 0 {
		var exists bool
		if err := ss.DB().GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM sample_requests WHERE id = ?)`, id); err != nil {
			return fmt.Errorf("can't check sample request: %w", err)
		}
		if !exists {
			return gerr.NotFound
		}
	}
	return nil
}

type messageStore struct {
	*MYSQLStore
}

// Messages returns an object implementing messages interface
func (ms *MYSQLStore) Messages() dependency.Messages {
	return &messageStore{
		MYSQLStore: ms,
	}
}

func (ms *messageStore) AddMessage(ctx context.Context, retailerId int, sender entity.MessageSender, body string) (*entity.Message, error) {
	id, err := ExecNamedLastId(ctx, ms.DB(), `
	INSERT INTO messages (retailer_id, sender, body)
	VALUES (:retailerId, :sender, :body)`, map[string]any{
		"retailerId": retailerId,
		"sender":     sender,
		"body":       body,
	})
	if err != nil {
		return nil, fmt.Errorf("can't add message: %w", err)
	}
	m, err := QueryNamedOne[entity.Message](ctx, ms.DB(), `SELECT * FROM messages WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("can't get message: %w", err)
	}
	return &m, nil
}

func (ms *messageStore) ListMessages(ctx context.Context, retailerId int) ([]entity.Message, error) {
	msgs, err := QueryListNamed[entity.Message](ctx, ms.DB(), `
	SELECT * FROM messages WHERE retailer_id = :retailerId ORDER BY created_at, id`, map[string]any{
		"retailerId": retailerId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list messages: %w", err)
	}
	return msgs, nil
}

func (ms *messageStore) ListLatestMessages(ctx context.Context, limit int) ([]entity.Message, error) {
	msgs, err := QueryListNamed[entity.Message](ctx, ms.DB(), `
	SELECT * FROM messages ORDER BY created_at DESC, id DESC LIMIT :limit`, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't list latest messages: %w", err)
	}
	return msgs, nil
}

func (ms *messageStore) MarkRead(ctx context.Context, retailerId int, sender entity.MessageSender) error {
	err := ExecNamed(ctx, ms.DB(), `
	UPDATE messages SET read_at = :readAt
	WHERE retailer_id = :retailerId AND sender = :sender AND read_at IS NULL`, map[string]any{
		"retailerId": retailerId,
		"sender":     sender,
		"readAt":     ms.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't mark messages read: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type contentStore struct {
	*MYSQLStore
}

// Content returns an object implementing content interface
func (ms *MYSQLStore) Content() dependency.Content {
	return &contentStore{
		MYSQLStore: ms,
	}
}

func (cs *contentStore) AddAnnouncement(ctx context.Context, a *entity.AnnouncementInsert) (int, error) {
	id, err := ExecNamedLastId(ctx, cs.DB(), `
	INSERT INTO announcements (title, body, is_active)
	VALUES (:title, :body, :isActive)`, map[string]any{
		"title":    a.Title,
		"body":     a.Body,
		"isActive": a.IsActive,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add announcement: %w", err)
	}
	return id, nil
}

func (cs *contentStore) UpdateAnnouncement(ctx context.Context, id int, a *entity.AnnouncementInsert) error {
	n, err := execNamedAffected(ctx, cs.DB(), `
	UPDATE announcements SET title = :title, body = :body, is_active = :isActive
	WHERE id = :id`, map[string]any{
		"id":       id,
		"title":    a.Title,
		"body":     a.Body,
		"isActive": a.IsActive,
	})
	if err != nil {
		return fmt.Errorf("can't update announcement: %w", err)
	}
	if n == 0 {
		var exists bool
		if err := cs.DB().GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM announcements WHERE id = ?)`, id); err != nil {
			return fmt.Errorf("can't check announcement: %w", err)
		}
		if !exists {
			return gerr.NotFound
		}
	}
	return nil
}

func (cs *contentStore) DeleteAnnouncement(ctx context.Context, id int) error {
	n, err := execNamedAffected(ctx, cs.DB(), `DELETE FROM announcements WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete announcement: %w", err)
	}
	if n == 0 {
		return gerr.NotFound
	}
	return nil
}

func (cs *contentStore) ListAnnouncements(ctx context.Context, activeOnly bool) ([]entity.Announcement, error) {
	query := `SELECT * FROM announcements`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC, id DESC`
	as, err := QueryListNamed[entity.Announcement](ctx, cs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list announcements: %w", err)
	}
	return as, nil
}

func (cs *contentStore) AddResource(ctx context.Context, r *entity.ResourceInsert) (int, error) {
	id, err := ExecNamedLastId(ctx, cs.DB(), `
	INSERT INTO resources (title, description, file_url, content_type)
	VALUES (:title, :description, :fileUrl, :contentType)`, map[string]any{
		"title":       r.Title,
		"description": r.Description,
		"fileUrl":     r.FileURL,
		"contentType": r.ContentType,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add resource: %w", err)
	}
	return id, nil
}

func (cs *contentStore) UpdateResource(ctx context.Context, id int, r *entity.ResourceInsert) error {
	if _, err := cs.GetResourceById(ctx, id); err != nil {
		return err
	}
	err := ExecNamed(ctx, cs.DB(), `
	UPDATE resources SET title = :title, description = :description, file_url = :fileUrl, content_type = :contentType
	WHERE id = :id`, map[string]any{
		"id":          id,
		"title":       r.Title,
		"description": r.Description,
		"fileUrl":     r.FileURL,
		"contentType": r.ContentType,
	})
	if err != nil {
		return fmt.Errorf("can't update resource: %w", err)
	}
	return nil
}

func (cs *contentStore) GetResourceById(ctx context.Context, id int) (*entity.Resource, error) {
	r, err := QueryNamedOne[entity.Resource](ctx, cs.DB(), `SELECT * FROM resources WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.NotFound
		}
		return nil, fmt.Errorf("can't get resource: %w", err)
	}
	return &r, nil
}

func (cs *contentStore) DeleteResource(ctx context.Context, id int) error {
	n, err := execNamedAffected(ctx, cs.DB(), `DELETE FROM resources WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete resource: %w", err)
	}
	if n == 0 {
		return gerr.NotFound
	}
	return nil
}

func (cs *contentStore) ListResources(ctx context.Context) ([]entity.Resource, error) {
	rs, err := QueryListNamed[entity.Resource](ctx, cs.DB(), `SELECT * FROM resources ORDER BY created_at DESC, id DESC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list resources: %w", err)
	}
	return rs, nil
}

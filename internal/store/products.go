package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing products interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

func productParams(prd *entity.ProductInsert) map[string]any {
	return map[string]any{
		"name":          prd.Name,
		"size":          prd.Size,
		"category":      prd.Category,
		"description":   prd.Description,
		"price":         prd.Price,
		"msrp":          prd.MSRP,
		"stockQuantity": prd.StockQuantity,
		"isActive":      prd.IsActive,
		"displayOrder":  prd.DisplayOrder,
	}
}

func (ps *productStore) AddProduct(ctx context.Context, prd *entity.ProductInsert) (int, error) {
	query := `
	INSERT INTO products
		(name, size, category, description, price, msrp, stock_quantity, is_active, display_order)
	VALUES
		(:name, :size, :category, :description, :price, :msrp, :stockQuantity, :isActive, :displayOrder)
	`
	id, err := ExecNamedLastId(ctx, ps.DB(), query, productParams(prd))
	if err != nil {
		return 0, fmt.Errorf("can't add product: %w", err)
	}
	return id, nil
}

func (ps *productStore) UpdateProduct(ctx context.Context, id int, prd *entity.ProductInsert) error {
	query := `
	UPDATE products SET
		name = :name,
		size = :size,
		category = :category,
		description = :description,
		price = :price,
		msrp = :msrp,
		stock_quantity = :stockQuantity,
		is_active = :isActive,
		display_order = :displayOrder
	WHERE id = :id
	`
	params := productParams(prd)
	params["id"] = id
	n, err := execNamedAffected(ctx, ps.DB(), query, params)
	if err != nil {
		return fmt.Errorf("can't update product: %w", err)
	}
	if n == 0 {
		if _, err := ps.GetProductById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (ps *productStore) GetProductById(ctx context.Context, id int) (*entity.Product, error) {
	prd, err := QueryNamedOne[entity.Product](ctx, ps.DB(), `SELECT * FROM products WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.ProductNotFound
		}
		return nil, fmt.Errorf("can't get product: %w", err)
	}
	return &prd, nil
}

func (ps *productStore) ListProducts(ctx context.Context, activeOnly bool) ([]entity.Product, error) {
	query := `SELECT * FROM products`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY display_order IS NULL, display_order, id`

	prds, err := QueryListNamed[entity.Product](ctx, ps.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}
	return prds, nil
}

func (ps *productStore) DeactivateProduct(ctx context.Context, id int) error {
	n, err := execNamedAffected(ctx, ps.DB(), `UPDATE products SET is_active = false WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't deactivate product: %w", err)
	}
	if n == 0 {
		if _, err := ps.GetProductById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (ps *productStore) UpdateStock(ctx context.Context, id int, quantity int) error {
	if quantity < 0 {
		return gerr.BadRequest
	}
	n, err := execNamedAffected(ctx, ps.DB(), `UPDATE products SET stock_quantity = :quantity WHERE id = :id`, map[string]any{
		"id":       id,
		"quantity": quantity,
	})
	if err != nil {
		return fmt.Errorf("can't update stock: %w", err)
	}
	if n == 0 {
		if _, err := ps.GetProductById(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (ps *productStore) SetProductImage(ctx context.Context, id int, img *entity.ProductImage) error {
	query := `
	UPDATE products SET
		image_url = :imageUrl,
		thumbnail_url = :thumbnailUrl,
		blurhash = :blurhash
	WHERE id = :id
	`
	err := ExecNamed(ctx, ps.DB(), query, map[string]any{
		"id":           id,
		"imageUrl":     img.FullSizeURL,
		"thumbnailUrl": img.ThumbnailURL,
		"blurhash":     img.Blurhash,
	})
	if err != nil {
		return fmt.Errorf("can't set product image: %w", err)
	}
	return nil
}

// ReduceStock decrements stock for every item. The guarded update makes the
// whole call fail with gerr.InsufficientStock as soon as one product cannot
// cover its quantity, so it must run inside a transaction.
func (ps *productStore) ReduceStock(ctx context.Context, items []entity.OrderItemNew) error {
	for _, it := range mergeItems(items) {
		n, err := execNamedAffected(ctx, ps.DB(), `
		UPDATE products
		SET stock_quantity = stock_quantity - :quantity
		WHERE id = :id AND stock_quantity >= :quantity`, map[string]any{
			"id":       it.ProductID,
			"quantity": it.Quantity,
		})
		if err != nil {
			return fmt.Errorf("can't reduce stock for product %d: %w", it.ProductID, err)
		}
		if n == 0 {
			return fmt.Errorf("product %d: %w", it.ProductID, gerr.InsufficientStock)
		}
	}
	return nil
}

func (ps *productStore) RestoreStock(ctx context.Context, items []entity.OrderItemNew) error {
	for _, it := range mergeItems(items) {
		err := ExecNamed(ctx, ps.DB(), `
		UPDATE products
		SET stock_quantity = stock_quantity + :quantity
		WHERE id = :id`, map[string]any{
			"id":       it.ProductID,
			"quantity": it.Quantity,
		})
		if err != nil {
			return fmt.Errorf("can't restore stock for product %d: %w", it.ProductID, err)
		}
	}
	return nil
}

// mergeItems sums quantities of repeated products, keeping first-seen order.
func mergeItems(items []entity.OrderItemNew) []entity.OrderItemNew {
	idx := make(map[int]int, len(items))
	merged := make([]entity.OrderItemNew, 0, len(items))
	for _, it := range items {
		if i, ok := idx[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		idx[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
)

type Cache struct {
	snapshot *ProductCache
	products dependency.Products
}

// New loads every product, active or not, so analytics can still price
// orders that reference retired products.
func New(ctx context.Context, products dependency.Products) (*Cache, error) {
	all, err := products.ListProducts(ctx, false)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant get all products",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't load catalog: %w", err)
	}
	return &Cache{
		snapshot: newProductCache(all),
		products: products,
	}, nil
}

func (c *Cache) Products() []entity.Product {
	return c.snapshot.GetAllProducts()
}

func (c *Cache) Product(id int) (entity.Product, bool) {
	return c.snapshot.GetProductByID(id)
}

// Refresh reloads the snapshot. On failure the previous snapshot stays.
func (c *Cache) Refresh(ctx context.Context) error {
	all, err := c.products.ListProducts(ctx, false)
	if err != nil {
		slog.Default().ErrorContext(ctx, "cant refresh products",
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("can't refresh catalog: %w", err)
	}
	c.snapshot.set(all)
	return nil
}

// ActiveProducts filters the snapshot to what retailers may order.
func ActiveProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/dependency/mocks"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func prd(id int, name, size string, active bool) entity.Product {
	return entity.Product{
		ID: id,
		ProductInsert: entity.ProductInsert{
			Name:     name,
			Size:     size,
			Category: entity.CategoryToppers,
			Price:    decimal.NewFromInt(5),
			IsActive: active,
		},
	}
}

var _ dependency.Catalog = (*Cache)(nil)

func TestCache(t *testing.T) {
	ctx := context.Background()
	ps := mocks.NewProducts(t)
	ps.On("ListProducts", mock.Anything, false).Return([]entity.Product{
		prd(3, "Salmon Topper", "6 oz", true),
		prd(1, "Chicken Topper", "6 oz", true),
		prd(2, "Beef Topper", "6 oz", false),
	}, nil).Once()

	c, err := New(ctx, ps)
	require.NoError(t, err)

	all := c.Products()
	require.Len(t, all, 3)
	p, ok := c.Product(2)
	require.True(t, ok)
	assert.Equal(t, "Beef Topper", p.Name)
	_, ok = c.Product(99)
	assert.False(t, ok)

	active := ActiveProducts(all)
	assert.Len(t, active, 2)

	// mutating the returned slice must not touch the snapshot
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", c.Products()[0].Name)

	ps.On("ListProducts", mock.Anything, false).Return([]entity.Product{
		prd(1, "Chicken Topper", "6 oz", true),
	}, nil).Once()
	require.NoError(t, c.Refresh(ctx))
	assert.Len(t, c.Products(), 1)

	ps.On("ListProducts", mock.Anything, false).Return(nil, fmt.Errorf("db gone")).Once()
	assert.Error(t, c.Refresh(ctx))
	assert.Len(t, c.Products(), 1)
}

func TestCacheLoadError(t *testing.T) {
	ps := mocks.NewProducts(t)
	ps.On("ListProducts", mock.Anything, false).Return(nil, fmt.Errorf("db gone")).Once()
	_, err := New(context.Background(), ps)
	assert.Error(t, err)
}

func TestCacheConcurrentRefresh(t *testing.T) {
	ctx := context.Background()
	ps := mocks.NewProducts(t)
	ps.On("ListProducts", mock.Anything, false).Return([]entity.Product{
		prd(1, "Chicken Topper", "6 oz", true),
		prd(2, "Salmon Topper", "6 oz", true),
	}, nil)

	c, err := New(ctx, ps)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Refresh(ctx)
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Product(1)
			_ = c.Products()
		}()
	}
	wg.Wait()
	assert.Len(t, c.Products(), 2)
}

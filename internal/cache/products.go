package cache

import (
	"sync"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/entity"
)

// ProductCache is a snapshot of the catalog. Reloads swap the whole
// snapshot.
type ProductCache struct {
	Cache   map[int]entity.Product
	ordered []entity.Product
	Mutex   sync.RWMutex
}

func newProductCache(products []entity.Product) *ProductCache {
	c := &ProductCache{}
	c.set(products)
	return c
}

func (c *ProductCache) set(products []entity.Product) {
	byID := make(map[int]entity.Product, len(products))
	ordered := make([]entity.Product, len(products))
	copy(ordered, products)
	analytics.CanonicalSortProducts(ordered)
	for _, p := range ordered {
		byID[p.ID] = p
	}

	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	c.Cache = byID
	c.ordered = ordered
}

func (c *ProductCache) GetProductByID(id int) (entity.Product, bool) {
	c.Mutex.RLock()
	defer c.Mutex.RUnlock()

	p, found := c.Cache[id]
	return p, found
}

// GetAllProducts returns a copy in canonical catalog order.
func (c *ProductCache) GetAllProducts() []entity.Product {
	c.Mutex.RLock()
	defer c.Mutex.RUnlock()

	out := make([]entity.Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

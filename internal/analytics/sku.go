package analytics

import (
	"sort"
	"strings"

	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	// TopProductsGlobal bounds the admin top products list.
	TopProductsGlobal = 5
	// TopProductsRetailer bounds a retailer's favourite products list.
	TopProductsRetailer = 6
)

// RankSKUs sums quantity and revenue per product over non-canceled orders and
// sorts by quantity, highest first. Products with equal quantity keep the
// order in which they were first seen.
func RankSKUs(orders []entity.OrderFull, limit int) []entity.SKURank {
	byID := make(map[int]int)
	ranks := make([]entity.SKURank, 0)

	for _, o := range ExcludeCanceled(orders) {
		for _, it := range o.Items {
			i, ok := byID[it.ProductID]
			if !ok {
				r := entity.SKURank{ProductID: it.ProductID, Revenue: decimal.Zero}
				if it.Product != nil {
					r.ProductName = it.Product.Name
					r.Size = it.Product.Size
				}
				i = len(ranks)
				byID[it.ProductID] = i
				ranks = append(ranks, r)
			}
			if ranks[i].ProductName == "" && it.Product != nil {
				ranks[i].ProductName = it.Product.Name
				ranks[i].Size = it.Product.Size
			}
			ranks[i].Quantity += it.Quantity
			ranks[i].Revenue = ranks[i].Revenue.Add(it.LineTotal())
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Quantity > ranks[j].Quantity
	})
	return truncate(ranks, limit)
}

// legacySKUOrder is the display sequence used before products carried an
// explicit display order. Matching is by substring on the lowercased name and
// size with spaces removed; an empty size matches any size.
var legacySKUOrder = []struct {
	flavor string
	size   string
}{
	{"chicken", "6oz"},
	{"chicken", "12oz"},
	{"salmon", "6oz"},
	{"salmon", "12oz"},
	{"beef", "6oz"},
	{"beef", "12oz"},
	{"lamb", ""},
	{"minnow", ""},
	{"bison", ""},
}

// LegacyRank returns the position of a product in the legacy display
// sequence, or len(legacySKUOrder) when it matches none of the entries.
func LegacyRank(name, size string) int {
	key := strings.ReplaceAll(strings.ToLower(name+" "+size), " ", "")
	for i, e := range legacySKUOrder {
		if !strings.Contains(key, e.flavor) {
			continue
		}
		if e.size == "" || strings.Contains(key, e.size) {
			return i
		}
	}
	return len(legacySKUOrder)
}

type skuKey struct {
	hasOrder bool
	order    int
	legacy   int
	name     string
	size     string
}

func sortKey(p *entity.Product) skuKey {
	if p == nil {
		return skuKey{legacy: len(legacySKUOrder)}
	}
	k := skuKey{
		legacy: LegacyRank(p.Name, p.Size),
		name:   strings.ToLower(p.Name),
		size:   strings.ToLower(p.Size),
	}
	if p.DisplayOrder != nil {
		k.hasOrder = true
		k.order = *p.DisplayOrder
	}
	return k
}

func (a skuKey) less(b skuKey) bool {
	if a.hasOrder != b.hasOrder {
		return a.hasOrder
	}
	if a.hasOrder && a.order != b.order {
		return a.order < b.order
	}
	if a.legacy != b.legacy {
		return a.legacy < b.legacy
	}
	if a.name != b.name {
		return a.name < b.name
	}
	return a.size < b.size
}

// CanonicalSortItems orders order lines for display. Products with a display
// order come first, by that order; the rest follow the legacy sequence, then
// name and size.
func CanonicalSortItems(items []entity.OrderItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(items[i].Product).less(sortKey(items[j].Product))
	})
}

// CanonicalSortProducts orders the catalog the same way as order lines.
func CanonicalSortProducts(products []entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return sortKey(&products[i]).less(sortKey(&products[j]))
	})
}

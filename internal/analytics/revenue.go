package analytics

import (
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Revenue sums wholesale totals and projected MSRP value over the
// non-canceled orders. Lines whose product is missing from the catalog or has
// no MSRP contribute nothing to the MSRP side.
func Revenue(orders []entity.OrderFull, catalog map[int]entity.Product) entity.RevenueSummary {
	rs := entity.RevenueSummary{
		TotalWholesale:  decimal.Zero,
		TotalMSRP:       decimal.Zero,
		PotentialProfit: decimal.Zero,
		ProfitMargin:    decimal.Zero,
		AvgOrderValue:   decimal.Zero,
	}

	for _, o := range ExcludeCanceled(orders) {
		rs.TotalOrders++
		rs.TotalWholesale = rs.TotalWholesale.Add(o.Total)
		for _, it := range o.Items {
			p, ok := catalog[it.ProductID]
			if !ok || !p.MSRP.Valid {
				continue
			}
			rs.TotalMSRP = rs.TotalMSRP.Add(p.MSRP.Decimal.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	rs.PotentialProfit = rs.TotalMSRP.Sub(rs.TotalWholesale)
	if rs.TotalMSRP.GreaterThan(decimal.Zero) {
		rs.ProfitMargin = rs.PotentialProfit.Div(rs.TotalMSRP).Mul(hundred)
	}
	if rs.TotalOrders > 0 {
		rs.AvgOrderValue = rs.TotalWholesale.Div(decimal.NewFromInt(int64(rs.TotalOrders)))
	}
	return rs
}

// CountByStatus counts every order, canceled included, per status.
func CountByStatus(orders []entity.OrderFull) map[entity.OrderStatus]int {
	counts := make(map[entity.OrderStatus]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

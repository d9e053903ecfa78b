package analytics

import (
	"time"

	"github.com/jekabolt/wholesale-portal/internal/entity"
)

// BuildInsights computes the admin analytics view from a full snapshot.
func BuildInsights(orders []entity.OrderFull, retailers []entity.Retailer, products []entity.Product, now time.Time) *entity.Insights {
	catalog := CatalogIndex(products)
	monthly := MonthlyRevenue(orders, now, TrailingMonths)

	return &entity.Insights{
		GeneratedAt:    now,
		Revenue:        Revenue(orders, catalog),
		MonthlyRevenue: monthly,
		MonthlyGrowth:  GrowthOf(monthly),
		Cohorts:        Cohorts(orders, retailers, now),
		TopProducts:    RankSKUs(orders, TopProductsGlobal),
		RevenueByState: RevenueByState(orders, retailers, TopStates),
		ActiveStates:   ActiveStates(orders, retailers),
		OrdersByStatus: CountByStatus(orders),
	}
}

// BuildRetailerDashboard computes one retailer's drill-down. orders may hold
// other retailers' orders; they are filtered out.
func BuildRetailerDashboard(retailer entity.Retailer, orders []entity.OrderFull, products []entity.Product, now time.Time) *entity.RetailerDashboard {
	own := ForRetailer(orders, retailer.ID)

	d := &entity.RetailerDashboard{
		RetailerID:       retailer.ID,
		Stats:            entity.RetailerStat{RetailerID: retailer.ID, CompanyName: retailer.CompanyName},
		Revenue:          Revenue(own, CatalogIndex(products)),
		QuarterlyAverage: QuarterlyAverage(own, now, TrailingQuarters),
		TopProducts:      RankSKUs(own, TopProductsRetailer),
	}
	d.Stats.TotalSpent = d.Revenue.TotalWholesale
	if stats := RetailerStats(own, []entity.Retailer{retailer}); len(stats) == 1 {
		d.Stats = stats[0]
	}
	if t, ok := TrendOf(d.QuarterlyAverage); ok {
		d.QuarterlyTrend = &t
	}
	if avg, ok := AvgDaysBetweenOrders(OrderTimes(own)); ok {
		d.AvgDaysBetweenOrders = &avg
	}
	return d
}

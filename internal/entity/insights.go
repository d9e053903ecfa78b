package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueSummary is the wholesale vs. MSRP projection over a set of orders.
type RevenueSummary struct {
	TotalOrders     int             `json:"total_orders"`
	TotalWholesale  decimal.Decimal `json:"total_wholesale"`
	TotalMSRP       decimal.Decimal `json:"total_msrp"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"` // percent of MSRP
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"`
}

// Bucket is one point of a time series chart.
type Bucket struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Start time.Time       `json:"start"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// Trend compares the last two buckets of a series.
type Trend struct {
	Previous  decimal.Decimal `json:"previous"`
	Current   decimal.Decimal `json:"current"`
	Change    decimal.Decimal `json:"change"`
	Direction TrendDirection  `json:"direction"`
}

// RetailerStat is the lifetime activity of one retailer over non-canceled orders.
type RetailerStat struct {
	RetailerID    int             `json:"retailer_id"`
	CompanyName   string          `json:"company_name"`
	TotalOrders   int             `json:"total_orders"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastOrderDate time.Time       `json:"last_order_date"`
}

type AtRiskRetailer struct {
	RetailerStat
	DaysSince int `json:"days_since"`
}

// CohortSummary classifies retailers by ordering behaviour.
type CohortSummary struct {
	ActiveRetailers       int              `json:"active_retailers"`
	NewRetailersThisMonth int              `json:"new_retailers_this_month"`
	RepeatRetailers       int              `json:"repeat_retailers"`
	ReorderRate           decimal.Decimal  `json:"reorder_rate"`
	AtRisk                []AtRiskRetailer `json:"at_risk"`
	TopBySpend            []RetailerStat   `json:"top_by_spend"`
	TopByOrders           []RetailerStat   `json:"top_by_orders"`
}

// SKURank is the aggregated sales of one product.
type SKURank struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type StateRevenue struct {
	State   string          `json:"state"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// Insights backs the admin analytics view.
type Insights struct {
	GeneratedAt    time.Time           `json:"generated_at"`
	Revenue        RevenueSummary      `json:"revenue"`
	MonthlyRevenue []Bucket            `json:"monthly_revenue"`
	MonthlyGrowth  decimal.Decimal     `json:"monthly_growth"`
	Cohorts        CohortSummary       `json:"cohorts"`
	TopProducts    []SKURank           `json:"top_products"`
	RevenueByState []StateRevenue      `json:"revenue_by_state"`
	ActiveStates   int                 `json:"active_states"`
	OrdersByStatus map[OrderStatus]int `json:"orders_by_status"`
}

// RetailerDashboard backs a single retailer's drill-down and self-service view.
type RetailerDashboard struct {
	RetailerID           int              `json:"retailer_id"`
	Stats                RetailerStat     `json:"stats"`
	Revenue              RevenueSummary   `json:"revenue"`
	QuarterlyAverage     []Bucket         `json:"quarterly_average"`
	QuarterlyTrend       *Trend           `json:"quarterly_trend,omitempty"`
	TopProducts          []SKURank        `json:"top_products"`
	AvgDaysBetweenOrders *decimal.Decimal `json:"avg_days_between_orders"`
}

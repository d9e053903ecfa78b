package analytics

import (
	"sort"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	// AtRiskAfter is how long a retailer may go without ordering before it is
	// flagged at risk.
	AtRiskAfter = 90 * 24 * time.Hour
	// LeaderboardSize bounds both retailer leaderboards.
	LeaderboardSize = 10

	day = 24 * time.Hour
)

// RetailerStats accumulates lifetime activity per retailer over non-canceled
// orders. The result is ordered by retailer id.
func RetailerStats(orders []entity.OrderFull, retailers []entity.Retailer) []entity.RetailerStat {
	names := make(map[int]string, len(retailers))
	for _, r := range retailers {
		names[r.ID] = r.CompanyName
	}

	byID := make(map[int]*entity.RetailerStat)
	for _, o := range ExcludeCanceled(orders) {
		st, ok := byID[o.RetailerID]
		if !ok {
			st = &entity.RetailerStat{
				RetailerID:  o.RetailerID,
				CompanyName: names[o.RetailerID],
				TotalSpent:  decimal.Zero,
			}
			byID[o.RetailerID] = st
		}
		st.TotalOrders++
		st.TotalSpent = st.TotalSpent.Add(o.Total)
		if o.CreatedAt.After(st.LastOrderDate) {
			st.LastOrderDate = o.CreatedAt
		}
	}

	stats := make([]entity.RetailerStat, 0, len(byID))
	for _, st := range byID {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].RetailerID < stats[j].RetailerID
	})
	return stats
}

// DaysSince is the number of whole days between t and now.
func DaysSince(t, now time.Time) int {
	return int(now.Sub(t) / day)
}

// IsAtRisk reports whether the last order is strictly older than AtRiskAfter.
func IsAtRisk(lastOrder, now time.Time) bool {
	return lastOrder.Before(now.Add(-AtRiskAfter))
}

// Cohorts classifies retailers by their ordering behaviour as of now.
func Cohorts(orders []entity.OrderFull, retailers []entity.Retailer, now time.Time) entity.CohortSummary {
	stats := RetailerStats(orders, retailers)

	cs := entity.CohortSummary{
		ActiveRetailers: len(stats),
		ReorderRate:     decimal.Zero,
		AtRisk:          []entity.AtRiskRetailer{},
	}

	ms := monthStart(now)
	for _, r := range retailers {
		created := r.CreatedAt.In(now.Location())
		if !created.Before(ms) && !created.After(now) {
			cs.NewRetailersThisMonth++
		}
	}

	for _, st := range stats {
		if st.TotalOrders >= 2 {
			cs.RepeatRetailers++
		}
		if IsAtRisk(st.LastOrderDate, now) {
			cs.AtRisk = append(cs.AtRisk, entity.AtRiskRetailer{
				RetailerStat: st,
				DaysSince:    DaysSince(st.LastOrderDate, now),
			})
		}
	}
	if cs.ActiveRetailers > 0 {
		cs.ReorderRate = decimal.NewFromInt(int64(cs.RepeatRetailers)).
			Div(decimal.NewFromInt(int64(cs.ActiveRetailers))).
			Mul(hundred)
	}

	sort.SliceStable(cs.AtRisk, func(i, j int) bool {
		return cs.AtRisk[i].DaysSince > cs.AtRisk[j].DaysSince
	})

	cs.TopBySpend = TopBySpend(stats, LeaderboardSize)
	cs.TopByOrders = TopByOrders(stats, LeaderboardSize)
	return cs
}

// TopBySpend ranks retailers by total spent, highest first.
func TopBySpend(stats []entity.RetailerStat, limit int) []entity.RetailerStat {
	ranked := append([]entity.RetailerStat(nil), stats...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent.GreaterThan(ranked[j].TotalSpent)
	})
	return truncate(ranked, limit)
}

// TopByOrders ranks retailers by order count; ties go to the retailer that
// ordered most recently.
func TopByOrders(stats []entity.RetailerStat, limit int) []entity.RetailerStat {
	ranked := append([]entity.RetailerStat(nil), stats...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalOrders != ranked[j].TotalOrders {
			return ranked[i].TotalOrders > ranked[j].TotalOrders
		}
		return ranked[i].LastOrderDate.After(ranked[j].LastOrderDate)
	})
	return truncate(ranked, limit)
}

// AvgDaysBetweenOrders averages the gaps between consecutive orders. ok is
// false with fewer than two orders.
func AvgDaysBetweenOrders(times []time.Time) (decimal.Decimal, bool) {
	if len(times) < 2 {
		return decimal.Zero, false
	}
	sorted := append([]time.Time(nil), times...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	total := decimal.Zero
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i-1].Sub(sorted[i])
		total = total.Add(decimal.NewFromFloat(gap.Hours() / 24))
	}
	return total.Div(decimal.NewFromInt(int64(len(sorted) - 1))), true
}

// OrderTimes collects the creation times of non-canceled orders.
func OrderTimes(orders []entity.OrderFull) []time.Time {
	times := make([]time.Time, 0, len(orders))
	for _, o := range ExcludeCanceled(orders) {
		times = append(times, o.CreatedAt)
	}
	return times
}

func truncate[T any](s []T, limit int) []T {
	if limit >= 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	// TrailingMonths is the size of the monthly revenue chart.
	TrailingMonths = 12
	// TrailingQuarters is the size of the per-retailer quarterly chart.
	TrailingQuarters = 6
)

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func quarterStart(t time.Time) time.Time {
	m := ((int(t.Month())-1)/3)*3 + 1
	return time.Date(t.Year(), time.Month(m), 1, 0, 0, 0, 0, t.Location())
}

func quarterLabel(qs time.Time) string {
	return fmt.Sprintf("Q%d %d", (int(qs.Month())-1)/3+1, qs.Year())
}

// MonthlyRevenue sums non-canceled order totals per calendar month for the n
// months ending with now's month. Months without orders are present with a
// zero value.
func MonthlyRevenue(orders []entity.OrderFull, now time.Time, n int) []entity.Bucket {
	if n <= 0 {
		return []entity.Bucket{}
	}
	loc := now.Location()
	first := monthStart(now).AddDate(0, -(n - 1), 0)

	buckets := make([]entity.Bucket, 0, n)
	idx := make(map[string]int, n)
	for cur := first; len(buckets) < n; cur = cur.AddDate(0, 1, 0) {
		key := cur.Format("2006-01")
		idx[key] = len(buckets)
		buckets = append(buckets, entity.Bucket{
			Key:   key,
			Label: cur.Format("Jan 2006"),
			Start: cur,
			Value: decimal.Zero,
		})
	}

	for _, o := range ExcludeCanceled(orders) {
		key := o.CreatedAt.In(loc).Format("2006-01")
		i, ok := idx[key]
		if !ok {
			continue
		}
		buckets[i].Value = buckets[i].Value.Add(o.Total)
		buckets[i].Count++
	}
	return buckets
}

// QuarterlyAverage averages non-canceled order totals per calendar quarter
// over the n quarters ending with now's quarter. Only quarters that have
// orders are returned, oldest first.
func QuarterlyAverage(orders []entity.OrderFull, now time.Time, n int) []entity.Bucket {
	if n <= 0 {
		return []entity.Bucket{}
	}
	loc := now.Location()
	first := quarterStart(now.In(loc)).AddDate(0, -3*(n-1), 0)
	end := quarterStart(now.In(loc)).AddDate(0, 3, 0)

	byKey := make(map[string]*entity.Bucket)
	for _, o := range ExcludeCanceled(orders) {
		created := o.CreatedAt.In(loc)
		if created.Before(first) || !created.Before(end) {
			continue
		}
		qs := quarterStart(created)
		key := qs.Format("2006-01-02")
		b, ok := byKey[key]
		if !ok {
			b = &entity.Bucket{Key: key, Label: quarterLabel(qs), Start: qs, Value: decimal.Zero}
			byKey[key] = b
		}
		b.Value = b.Value.Add(o.Total)
		b.Count++
	}

	buckets := make([]entity.Bucket, 0, len(byKey))
	for _, b := range byKey {
		b.Value = b.Value.Div(decimal.NewFromInt(int64(b.Count)))
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})
	return buckets
}

// Growth is the percentage change from prev to last. A zero base reports 100
// when last is positive and 0 otherwise, so the result is always finite.
func Growth(prev, last decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if last.GreaterThan(decimal.Zero) {
			return hundred
		}
		return decimal.Zero
	}
	return last.Sub(prev).Div(prev).Mul(hundred)
}

// GrowthOf applies Growth to the final two buckets of a chronological series.
func GrowthOf(buckets []entity.Bucket) decimal.Decimal {
	if len(buckets) < 2 {
		return decimal.Zero
	}
	return Growth(buckets[len(buckets)-2].Value, buckets[len(buckets)-1].Value)
}

// TrendOf classifies the change between the final two buckets. ok is false
// when there are fewer than two buckets.
func TrendOf(buckets []entity.Bucket) (entity.Trend, bool) {
	if len(buckets) < 2 {
		return entity.Trend{}, false
	}
	t := entity.Trend{
		Previous: buckets[len(buckets)-2].Value,
		Current:  buckets[len(buckets)-1].Value,
		Change:   GrowthOf(buckets),
	}
	switch t.Change.Sign() {
	case 1:
		t.Direction = entity.TrendUp
	case -1:
		t.Direction = entity.TrendDown
	default:
		t.Direction = entity.TrendFlat
	}
	return t, true
}

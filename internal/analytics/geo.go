package analytics

import (
	"sort"

	"github.com/jekabolt/wholesale-portal/internal/address"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
)

// TopStates bounds the revenue-by-state list.
const TopStates = 10

func retailerStates(retailers []entity.Retailer) map[int]string {
	states := make(map[int]string, len(retailers))
	for _, r := range retailers {
		if r.BusinessAddress == nil {
			continue
		}
		if st, ok := address.ExtractState(*r.BusinessAddress); ok {
			states[r.ID] = st
		}
	}
	return states
}

// RevenueByState sums non-canceled order totals per retailer state. Retailers
// whose address yields no state are left out.
func RevenueByState(orders []entity.OrderFull, retailers []entity.Retailer, limit int) []entity.StateRevenue {
	states := retailerStates(retailers)

	byState := make(map[string]*entity.StateRevenue)
	for _, o := range ExcludeCanceled(orders) {
		st, ok := states[o.RetailerID]
		if !ok {
			continue
		}
		sr, ok := byState[st]
		if !ok {
			sr = &entity.StateRevenue{State: st, Revenue: decimal.Zero}
			byState[st] = sr
		}
		sr.Revenue = sr.Revenue.Add(o.Total)
		sr.Orders++
	}

	out := make([]entity.StateRevenue, 0, len(byState))
	for _, sr := range byState {
		out = append(out, *sr)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].State < out[j].State
	})
	return truncate(out, limit)
}

// ActiveStates counts the distinct states of retailers with at least one
// non-canceled order.
func ActiveStates(orders []entity.OrderFull, retailers []entity.Retailer) int {
	states := retailerStates(retailers)
	seen := make(map[string]struct{})
	for _, o := range ExcludeCanceled(orders) {
		if st, ok := states[o.RetailerID]; ok {
			seen[st] = struct{}{}
		}
	}
	return len(seen)
}

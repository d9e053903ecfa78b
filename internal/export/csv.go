// Package export renders order data for spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/entity"
)

const dateLayout = "2006-01-02"

var header = []string{
	"order_uuid",
	"order_date",
	"account_number",
	"retailer",
	"status",
	"product",
	"size",
	"quantity",
	"unit_price",
	"line_total",
	"order_total",
}

// WriteOrdersCSV writes one row per order item. Items keep the canonical
// catalog order inside each order; orders keep the order they were given in.
// An order without items still gets one row so its total is not lost.
func WriteOrdersCSV(w io.Writer, orders []entity.OrderFull, retailers []entity.Retailer) error {
	byID := make(map[int]entity.Retailer, len(retailers))
	for _, r := range retailers {
		byID[r.ID] = r
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("can't write csv header: %w", err)
	}

	for _, o := range orders {
		rt, ok := byID[o.RetailerID]
		if !ok && o.Retailer != nil {
			rt = *o.Retailer
		}
		base := []string{
			o.UUID,
			o.CreatedAt.Format(dateLayout),
			rt.AccountNumber,
			rt.CompanyName,
			string(o.Status),
		}

		items := append([]entity.OrderItem(nil), o.Items...)
		analytics.CanonicalSortItems(items)
		if len(items) == 0 {
			row := append(append([]string{}, base...), "", "", "", "", "", o.Total.StringFixed(2))
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("can't write csv row: %w", err)
			}
			continue
		}
		for _, it := range items {
			name, size := "Unknown product", ""
			if it.Product != nil {
				name, size = it.Product.Name, it.Product.Size
			}
			row := append(append([]string{}, base...),
				name,
				size,
				strconv.Itoa(it.Quantity),
				it.UnitPrice.StringFixed(2),
				it.LineTotal().StringFixed(2),
				o.Total.StringFixed(2),
			)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("can't write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

package dto

import (
	"testing"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5.5", "$5.50"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"-42.125", "-$42.13"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(decimal.RequireFromString(tt.in)))
		})
	}
	assert.Equal(t, "USD", CurrencyCode())
	assert.Equal(t, "Fedex Ground", Title("fedex ground"))
}

func TestOrderFullToOrderPlaced(t *testing.T) {
	notes := "leave at back door"
	delivery := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	of := &entity.OrderFull{
		Order: entity.Order{
			UUID:           "abc",
			Subtotal:       decimal.RequireFromString("16.5"),
			Total:          decimal.RequireFromString("16.5"),
			CreatedAt:      time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC),
			DeliveryDate:   &delivery,
			Notes:          &notes,
			IncludeSamples: true,
		},
		Items: []entity.OrderItem{
			{ProductID: 9, Quantity: 1, UnitPrice: decimal.RequireFromString("5.5")},
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("5.5"), Product: &entity.Product{ProductInsert: entity.ProductInsert{Name: "Chicken Topper", Size: "6 oz"}}},
		},
	}
	r := &entity.Retailer{AccountNumber: "WS-1", RetailerInsert: entity.RetailerInsert{CompanyName: "Barking Lot"}}

	op := OrderFullToOrderPlaced(of, r)
	assert.Equal(t, "May 15, 2024", op.PlacedAt)
	assert.Equal(t, "Jun 1, 2024", op.DeliveryDate)
	assert.Equal(t, notes, op.Notes)
	assert.Equal(t, "$16.50", op.TotalPrice)
	assert.True(t, op.IncludeSamples)
	require.Len(t, op.OrderItems, 2)
	assert.Equal(t, "Chicken Topper", op.OrderItems[0].Name)
	assert.Equal(t, "$11.00", op.OrderItems[0].LineTotal)
	assert.Equal(t, "Unknown product", op.OrderItems[1].Name)

	// the source order keeps its item order
	assert.Equal(t, 9, of.Items[0].ProductID)
}

func TestAtRiskToDigest(t *testing.T) {
	d := AtRiskToDigest([]entity.AtRiskRetailer{{
		RetailerStat: entity.RetailerStat{
			CompanyName:   "Barking Lot",
			TotalOrders:   3,
			TotalSpent:    decimal.RequireFromString("300"),
			LastOrderDate: time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC),
		},
		DaysSince: 120,
	}})
	require.Len(t, d.Retailers, 1)
	assert.Equal(t, "Jan 16, 2024", d.Retailers[0].LastOrderDate)
	assert.Equal(t, "$300.00", d.Retailers[0].TotalSpent)
	assert.Equal(t, 120, d.Retailers[0].DaysSince)
}

package store

import (
	"context"
	"testing"

	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestProduct(t *testing.T, db *MYSQLStore, name, price string, stock int) int {
	t.Helper()
	id, err := db.Products().AddProduct(context.Background(), &entity.ProductInsert{
		Name:          name,
		Size:          "6 oz",
		Category:      entity.CategoryToppers,
		Price:         decimal.RequireFromString(price),
		MSRP:          decimal.NewNullDecimal(decimal.RequireFromString(price).Mul(decimal.NewFromInt(2))),
		StockQuantity: stock,
		IsActive:      true,
	})
	require.NoError(t, err)
	return id
}

func addTestRetailer(t *testing.T, db *MYSQLStore, email string) *entity.Retailer {
	t.Helper()
	addr := "123 Main St, Austin, TX 78701"
	r, err := db.Retailers().AddRetailer(context.Background(), &entity.RetailerInsert{
		CompanyName:     "Barking Lot",
		ContactName:     "Jane Doe",
		Email:           email,
		Phone:           "+15125550100",
		BusinessAddress: &addr,
	}, "hash")
	require.NoError(t, err)
	return r
}

func stockOf(t *testing.T, db *MYSQLStore, id int) int {
	t.Helper()
	p, err := db.Products().GetProductById(context.Background(), id)
	require.NoError(t, err)
	return p.StockQuantity
}

func TestOrdersStore_CreateOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	chicken := addTestProduct(t, db, "Chicken Topper", "5.50", 10)
	salmon := addTestProduct(t, db, "Salmon Topper", "6.00", 3)
	r := addTestRetailer(t, db, "buyer@example.com")

	of, err := db.Order().CreateOrder(ctx, &entity.OrderNew{
		RetailerID: r.ID,
		Items: []entity.OrderItemNew{
			{ProductID: chicken, Quantity: 2},
			{ProductID: salmon, Quantity: 1},
			{ProductID: chicken, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, of.Status)
	assert.True(t, of.Total.Equal(decimal.RequireFromString("22.50")), of.Total.String())
	require.Len(t, of.Items, 2)
	for _, it := range of.Items {
		require.NotNil(t, it.Product)
		assert.True(t, it.TotalPrice.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
	}

	assert.Equal(t, 7, stockOf(t, db, chicken))
	assert.Equal(t, 2, stockOf(t, db, salmon))

	// not enough stock rolls everything back
	_, err = db.Order().CreateOrder(ctx, &entity.OrderNew{
		RetailerID: r.ID,
		Items: []entity.OrderItemNew{
			{ProductID: chicken, Quantity: 1},
			{ProductID: salmon, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, gerr.InsufficientStock)
	assert.Equal(t, 7, stockOf(t, db, chicken))

	require.NoError(t, db.Products().DeactivateProduct(ctx, salmon))
	_, err = db.Order().CreateOrder(ctx, &entity.OrderNew{
		RetailerID: r.ID,
		Items:      []entity.OrderItemNew{{ProductID: salmon, Quantity: 1}},
	})
	assert.ErrorIs(t, err, gerr.ProductInactive)

	_, err = db.Order().CreateOrder(ctx, &entity.OrderNew{RetailerID: r.ID})
	assert.ErrorIs(t, err, gerr.EmptyOrder)

	byUUID, err := db.Order().GetOrderByUUID(ctx, of.UUID)
	require.NoError(t, err)
	assert.Equal(t, of.ID, byUUID.ID)
}

func TestOrdersStore_StatusLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	chicken := addTestProduct(t, db, "Chicken Topper", "5.00", 10)
	r := addTestRetailer(t, db, "lifecycle@example.com")

	of, err := db.Order().CreateOrder(ctx, &entity.OrderNew{
		RetailerID: r.ID,
		Items:      []entity.OrderItemNew{{ProductID: chicken, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, stockOf(t, db, chicken))

	_, err = db.Order().UpdateStatus(ctx, of.ID, entity.OrderDelivered)
	assert.ErrorIs(t, err, gerr.InvalidTransition)

	shipped, err := db.Order().SetTracking(ctx, of.ID, &entity.Shipment{TrackingNumber: "1Z999", TrackingCarrier: "UPS"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, shipped.Status)
	require.NotNil(t, shipped.TrackingNumber)
	assert.Equal(t, "1Z999", *shipped.TrackingNumber)

	canceled, err := db.Order().UpdateStatus(ctx, of.ID, entity.OrderCanceled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCanceled, canceled.Status)
	assert.Equal(t, 10, stockOf(t, db, chicken))

	_, err = db.Order().UpdateStatus(ctx, of.ID, entity.OrderPending)
	assert.ErrorIs(t, err, gerr.InvalidTransition)

	_, err = db.Order().UpdateStatus(ctx, 999999, entity.OrderCanceled)
	assert.ErrorIs(t, err, gerr.OrderNotFound)
}

func TestOrdersStore_InvoiceAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	chicken := addTestProduct(t, db, "Chicken Topper", "5.00", 100)
	r1 := addTestRetailer(t, db, "one@example.com")
	r2 := addTestRetailer(t, db, "two@example.com")

	for _, rid := range []int{r1.ID, r1.ID, r2.ID} {
		_, err := db.Order().CreateOrder(ctx, &entity.OrderNew{
			RetailerID: rid,
			Items:      []entity.OrderItemNew{{ProductID: chicken, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	orders, err := db.Order().ListOrdersFull(ctx, entity.OrderFilter{RetailerID: r1.ID})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Len(t, o.Items, 1)
	}

	limited, err := db.Order().ListOrders(ctx, entity.OrderFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	id := orders[0].ID
	require.NoError(t, db.Order().SetInvoiceURL(ctx, id, "https://files.example.com/invoice.pdf"))
	require.NoError(t, db.Order().MarkInvoiceSent(ctx, id))
	require.NoError(t, db.Order().MarkInvoiceSent(ctx, id))

	of, err := db.Order().GetOrderById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, of.InvoiceSentCount)
	assert.NotNil(t, of.InvoiceSentAt)
	require.NotNil(t, of.InvoiceURL)
	assert.Equal(t, "https://files.example.com/invoice.pdf", *of.InvoiceURL)
}

func TestLocations_SetDefault(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	r := addTestRetailer(t, db, "locations@example.com")

	loc := func(name string) *entity.RetailerLocationInsert {
		return &entity.RetailerLocationInsert{Name: name, Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"}
	}
	first, err := db.Locations().AddLocation(ctx, r.ID, loc("Store"))
	require.NoError(t, err)
	second, err := db.Locations().AddLocation(ctx, r.ID, loc("Warehouse"))
	require.NoError(t, err)

	defaults := func() []int {
		locs, err := db.Locations().ListLocations(ctx, r.ID)
		require.NoError(t, err)
		ids := []int{}
		for _, l := range locs {
			if l.IsDefault {
				ids = append(ids, l.ID)
			}
		}
		return ids
	}
	assert.Equal(t, []int{first}, defaults())

	require.NoError(t, db.Locations().SetDefault(ctx, r.ID, second))
	assert.Equal(t, []int{second}, defaults())

	other := addTestRetailer(t, db, "other@example.com")
	assert.ErrorIs(t, db.Locations().SetDefault(ctx, other.ID, first), gerr.LocationNotFound)
	assert.Equal(t, []int{second}, defaults())

	require.NoError(t, db.Locations().DeleteLocation(ctx, r.ID, second))
	assert.Equal(t, []int{first}, defaults())
}

func TestRetailers_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	r := addTestRetailer(t, db, "Dup@Example.com")
	assert.NotEmpty(t, r.AccountNumber)
	assert.Equal(t, "dup@example.com", r.Email)

	_, err := db.Retailers().AddRetailer(ctx, &entity.RetailerInsert{
		CompanyName: "Copy",
		ContactName: "Copy",
		Email:       "dup@example.com",
	}, "hash")
	assert.ErrorIs(t, err, gerr.AlreadyExists)

	got, err := db.Retailers().GetRetailerByEmail(ctx, "DUP@example.com")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestAdminCRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Admin().AddAdmin(ctx, "admin", "hash"))
	assert.ErrorIs(t, db.Admin().AddAdmin(ctx, "admin", "hash"), gerr.AlreadyExists)

	require.NoError(t, db.Admin().ChangePassword(ctx, "admin", "hash2"))
	pw, err := db.Admin().PasswordHashByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash2", pw)

	require.NoError(t, db.Admin().DeleteAdmin(ctx, "admin"))
	_, err = db.Admin().GetAdminByUsername(ctx, "admin")
	assert.ErrorIs(t, err, gerr.NotFound)
}

package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/auth/jwt"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/dependency/mocks"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	h         http.Handler
	repo      *mocks.Repository
	products  *mocks.Products
	orders    *mocks.Order
	retailers *mocks.Retailers
	locations *mocks.Locations
	content   *mocks.Content
	samples   *mocks.Samples
	messages  *mocks.Messages
	bucket    *mocks.FileStore
	mailer    *mocks.Mailer
	invoicer  *mocks.Invoicer
	catalog   *mocks.Catalog
}

func newFixture(t *testing.T, withInvoicer bool) *fixture {
	t.Helper()
	f := &fixture{
		repo:      mocks.NewRepository(t),
		products:  mocks.NewProducts(t),
		orders:    mocks.NewOrder(t),
		retailers: mocks.NewRetailers(t),
		locations: mocks.NewLocations(t),
		content:   mocks.NewContent(t),
		samples:   mocks.NewSamples(t),
		messages:  mocks.NewMessages(t),
		bucket:    mocks.NewFileStore(t),
		mailer:    mocks.NewMailer(t),
		invoicer:  mocks.NewInvoicer(t),
		catalog:   mocks.NewCatalog(t),
	}
	f.repo.On("Products").Return(f.products).Maybe()
	f.repo.On("Order").Return(f.orders).Maybe()
	f.repo.On("Retailers").Return(f.retailers).Maybe()
	f.repo.On("Locations").Return(f.locations).Maybe()
	f.repo.On("Content").Return(f.content).Maybe()
	f.repo.On("Samples").Return(f.samples).Maybe()
	f.repo.On("Messages").Return(f.messages).Maybe()
	f.repo.On("Now").Return(now).Maybe()

	var inv dependency.Invoicer
	if withInvoicer {
		inv = f.invoicer
	}
	routes := New(f.repo, f.bucket, f.mailer, inv, f.catalog).Routes()
	f.h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := jwt.WithClaims(r.Context(), &jwt.Claims{Subject: "ops", Role: jwt.RoleAdmin})
		routes.ServeHTTP(w, r.WithContext(ctx))
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func testRetailer(id int) *entity.Retailer {
	addr := "12 Main St, Austin, TX 78701"
	return &entity.Retailer{
		ID:            id,
		AccountNumber: "WS-00AA11BB",
		RetailerInsert: entity.RetailerInsert{
			CompanyName:     "Barking Lot",
			ContactName:     "Dana Reyes",
			Email:           "buyer@example.com",
			BusinessAddress: &addr,
		},
	}
}

func testProduct(id int) entity.Product {
	return entity.Product{
		ID: id,
		ProductInsert: entity.ProductInsert{
			Name:     "Chicken Topper",
			Size:     "6 oz",
			Category: entity.CategoryToppers,
			Price:    decimal.RequireFromString("5.50"),
			MSRP:     decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
			IsActive: true,
		},
	}
}

func testOrder(id, retailerID int, status entity.OrderStatus, created time.Time) entity.OrderFull {
	p := testProduct(1)
	return entity.OrderFull{
		Order: entity.Order{
			ID:         id,
			UUID:       "uuid-" + string(rune('a'+id)),
			RetailerID: retailerID,
			Subtotal:   decimal.RequireFromString("11.00"),
			Total:      decimal.RequireFromString("11.00"),
			Status:     status,
			CreatedAt:  created,
		},
		Items: []entity.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: p.Price, TotalPrice: decimal.RequireFromString("11.00"), Product: &p},
		},
	}
}

func TestListOrdersFilter(t *testing.T) {
	f := newFixture(t, false)

	f.orders.On("ListOrders", mock.Anything, mock.MatchedBy(func(of entity.OrderFilter) bool {
		return of.Status == entity.OrderShipped &&
			of.RetailerID == 4 &&
			of.Limit == 20 &&
			of.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			of.To.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]entity.Order{{ID: 1}}, nil).Once()

	rec := f.do(t, http.MethodGet, "/orders?status=shipped&retailer_id=4&limit=20&from=2024-01-01&to=2024-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got []entity.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestListOrdersBadFilter(t *testing.T) {
	f := newFixture(t, false)

	for _, q := range []string{"status=lost", "from=01-01-2024", "retailer_id=x"} {
		rec := f.do(t, http.MethodGet, "/orders?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestCancelOrder(t *testing.T) {
	f := newFixture(t, false)

	of := testOrder(10, 4, entity.OrderCanceled, now)
	of.Retailer = testRetailer(4)
	f.orders.On("UpdateStatus", mock.Anything, 10, entity.OrderCanceled).Return(&of, nil).Once()
	f.catalog.On("Refresh", mock.Anything).Return(nil).Once()
	f.mailer.On("SendOrderCanceled", mock.Anything, f.repo, "buyer@example.com",
		mock.MatchedBy(func(d *dto.OrderCanceled) bool { return d != nil })).Return(nil).Once()

	rec := f.do(t, http.MethodPut, "/orders/10/status", map[string]string{"status": " Canceled "})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateOrderStatusRejected(t *testing.T) {
	f := newFixture(t, false)

	f.orders.On("UpdateStatus", mock.Anything, 10, entity.OrderPending).Return(nil, gerr.InvalidTransition).Once()

	rec := f.do(t, http.MethodPut, "/orders/10/status", map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPut, "/orders/10/status", map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetTracking(t *testing.T) {
	f := newFixture(t, false)

	of := testOrder(10, 4, entity.OrderShipped, now)
	f.orders.On("SetTracking", mock.Anything, 10, &entity.Shipment{TrackingNumber: "1Z999", TrackingCarrier: "UPS"}).
		Return(&of, nil).Once()
	f.retailers.On("GetRetailerById", mock.Anything, 4).Return(testRetailer(4), nil).Once()
	f.mailer.On("SendOrderShipped", mock.Anything, f.repo, "buyer@example.com", mock.Anything).Return(nil).Once()

	rec := f.do(t, http.MethodPut, "/orders/10/tracking", map[string]string{
		"tracking_number":  " 1Z999 ",
		"tracking_carrier": "UPS",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCreateInvoiceNotConfigured(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(t, http.MethodPost, "/orders/10/invoice/stripe", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateInvoice(t *testing.T) {
	f := newFixture(t, true)

	of := testOrder(10, 4, entity.OrderProcessing, now)
	rt := testRetailer(4)
	f.orders.On("GetOrderById", mock.Anything, 10).Return(&of, nil).Once()
	f.retailers.On("GetRetailerById", mock.Anything, 4).Return(rt, nil).Once()
	f.invoicer.On("CreateInvoice", mock.Anything, rt, &of).Return(&entity.InvoiceResult{
		InvoiceID:  "in_1",
		CustomerID: "cus_1",
		URL:        "https://invoice.stripe.com/i/1",
	}, nil).Once()
	f.retailers.On("SetStripeCustomerId", mock.Anything, 4, "cus_1").Return(nil).Once()
	f.orders.On("SetInvoiceURL", mock.Anything, 10, "https://invoice.stripe.com/i/1").Return(nil).Once()

	rec := f.do(t, http.MethodPost, "/orders/10/invoice/stripe", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "in_1")
	assert.NotContains(t, rec.Body.String(), "cus_1")
}

func TestCreateInvoiceCanceledOrder(t *testing.T) {
	f := newFixture(t, true)

	of := testOrder(10, 4, entity.OrderCanceled, now)
	f.orders.On("GetOrderById", mock.Anything, 10).Return(&of, nil).Once()

	rec := f.do(t, http.MethodPost, "/orders/10/invoice/stripe", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUploadInvoice(t *testing.T) {
	f := newFixture(t, false)

	of := testOrder(10, 4, entity.OrderProcessing, now)
	f.orders.On("GetOrderById", mock.Anything, 10).Return(&of, nil).Once()
	f.bucket.On("UploadInvoice", mock.Anything, []byte("%PDF-1.4 test"), of.UUID).
		Return("https://files.example.com/portal/invoices/x.pdf", nil).Once()
	f.orders.On("SetInvoiceURL", mock.Anything, 10, "https://files.example.com/portal/invoices/x.pdf").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/orders/10/invoice/upload", strings.NewReader("%PDF-1.4 test"))
	req.Header.Set("Content-Type", "application/pdf")
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "invoices/x.pdf")
}

func TestSendInvoice(t *testing.T) {
	f := newFixture(t, false)

	url := "https://files.example.com/portal/invoices/x.pdf"
	of := testOrder(10, 4, entity.OrderShipped, now)
	of.InvoiceURL = &url
	sent := of
	sent.InvoiceSentCount = 1

	f.orders.On("GetOrderById", mock.Anything, 10).Return(&of, nil).Once()
	f.retailers.On("GetRetailerById", mock.Anything, 4).Return(testRetailer(4), nil).Once()
	f.mailer.On("SendInvoice", mock.Anything, f.repo, "buyer@example.com",
		mock.MatchedBy(func(d *dto.InvoiceMail) bool { return d != nil })).Return(nil).Once()
	f.repo.On("Tx", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(context.Context, dependency.Repository) error) error {
			return fn(ctx, f.repo)
		}).Once()
	f.orders.On("MarkInvoiceSent", mock.Anything, 10).Return(nil).Once()
	f.retailers.On("SetRetailerInvoiceSent", mock.Anything, 4, url).Return(nil).Once()
	f.orders.On("GetOrderById", mock.Anything, 10).Return(&sent, nil).Once()

	rec := f.do(t, http.MethodPost, "/orders/10/invoice/send", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got entity.OrderFull
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.InvoiceSentCount)
}

func TestSendInvoiceWithoutInvoice(t *testing.T) {
	f := newFixture(t, false)

	of := testOrder(10, 4, entity.OrderShipped, now)
	f.orders.On("GetOrderById", mock.Anything, 10).Return(&of, nil).Once()

	rec := f.do(t, http.MethodPost, "/orders/10/invoice/send", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportOrders(t *testing.T) {
	f := newFixture(t, false)

	f.orders.On("ListOrdersFull", mock.Anything, entity.OrderFilter{Status: entity.OrderDelivered}).
		Return([]entity.OrderFull{testOrder(1, 4, entity.OrderDelivered, now)}, nil).Once()
	f.retailers.On("ListRetailers", mock.Anything).Return([]entity.Retailer{*testRetailer(4)}, nil).Once()

	rec := f.do(t, http.MethodGet, "/orders/export?status=delivered", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders-2024-06-15.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "order_uuid,"))
	assert.Contains(t, lines[1], "Barking Lot")
	assert.Contains(t, lines[1], "11.00")
}

func TestListRetailersWithStats(t *testing.T) {
	f := newFixture(t, false)

	f.retailers.On("ListRetailers", mock.Anything).
		Return([]entity.Retailer{*testRetailer(4), *testRetailer(5)}, nil).Once()
	f.orders.On("ListOrdersFull", mock.Anything, entity.OrderFilter{}).Return([]entity.OrderFull{
		testOrder(1, 4, entity.OrderDelivered, now.AddDate(0, -1, 0)),
		testOrder(2, 4, entity.OrderCanceled, now),
	}, nil).Once()

	rec := f.do(t, http.MethodGet, "/retailers", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []RetailerRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Stats.TotalOrders)
	assert.True(t, rows[0].Stats.TotalSpent.Equal(decimal.RequireFromString("11")))
	assert.Equal(t, 0, rows[1].Stats.TotalOrders)
	assert.Equal(t, 5, rows[1].Stats.RetailerID)
}

func TestGetRetailer(t *testing.T) {
	f := newFixture(t, false)

	f.retailers.On("GetRetailerById", mock.Anything, 4).Return(testRetailer(4), nil).Once()
	f.orders.On("ListOrdersFull", mock.Anything, entity.OrderFilter{RetailerID: 4}).Return([]entity.OrderFull{
		testOrder(1, 4, entity.OrderDelivered, now.AddDate(0, -2, 0)),
		testOrder(2, 4, entity.OrderShipped, now.AddDate(0, 0, -10)),
	}, nil).Once()
	f.locations.On("ListLocations", mock.Anything, 4).Return([]entity.RetailerLocation{{ID: 1, RetailerID: 4}}, nil).Once()
	f.catalog.On("Products").Return([]entity.Product{testProduct(1)}).Once()

	rec := f.do(t, http.MethodGet, "/retailers/4", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var d RetailerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	require.NotNil(t, d.Dashboard)
	assert.Equal(t, 2, d.Dashboard.Stats.TotalOrders)
	assert.Len(t, d.Locations, 1)
	assert.Len(t, d.Orders, 2)
}

func TestGetRetailerNotFound(t *testing.T) {
	f := newFixture(t, false)

	f.retailers.On("GetRetailerById", mock.Anything, 9).Return(nil, gerr.RetailerNotFound).Once()
	f.orders.On("ListOrdersFull", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.locations.On("ListLocations", mock.Anything, 9).Return(nil, nil).Maybe()

	rec := f.do(t, http.MethodGet, "/retailers/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRetailer(t *testing.T) {
	f := newFixture(t, false)

	f.retailers.On("UpdateRetailer", mock.Anything, 4, mock.MatchedBy(func(ri *entity.RetailerInsert) bool {
		return ri.Email == "new@example.com" && ri.CompanyName == "Barking Lot" &&
			ri.BusinessAddress != nil && *ri.BusinessAddress == "12 Main St, Austin, TX 78701"
	})).Return(nil).Once()
	f.retailers.On("GetRetailerById", mock.Anything, 4).Return(testRetailer(4), nil).Once()

	rec := f.do(t, http.MethodPut, "/retailers/4", map[string]string{
		"email":        "NEW@example.com",
		"company_name": "Barking Lot",
		"contact_name": "Dana Reyes",
		"street":       "12 Main St",
		"city":         "Austin",
		"state":        "tx",
		"zip":          "78701",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/retailers/4", map[string]string{
		"email":        "not-an-email",
		"company_name": "Barking Lot",
		"contact_name": "Dana Reyes",
		"street":       "12 Main St",
		"city":         "Austin",
		"state":        "tx",
		"zip":          "78701",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnnouncements(t *testing.T) {
	f := newFixture(t, false)

	f.content.On("AddAnnouncement", mock.Anything, &entity.AnnouncementInsert{
		Title: "Summer pricing", Body: "New prices from July.", IsActive: true,
	}).Return(3, nil).Once()
	rec := f.do(t, http.MethodPost, "/announcements", map[string]any{
		"title": " Summer pricing ", "body": "New prices from July.", "is_active": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var a entity.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, 3, a.ID)

	f.content.On("ListAnnouncements", mock.Anything, false).Return([]entity.Announcement{a}, nil).Once()
	rec = f.do(t, http.MethodGet, "/announcements", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.content.On("DeleteAnnouncement", mock.Anything, 3).Return(nil).Once()
	rec = f.do(t, http.MethodDelete, "/announcements/3", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodPost, "/announcements", map[string]any{"title": "no body"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddResource(t *testing.T) {
	f := newFixture(t, false)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Price List"))
	fw, err := mw.CreateFormFile("file", "price-list.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 price list"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	url := "https://files.example.com/portal/resources/price-list-1a2b3c4d.pdf"
	f.bucket.On("UploadResource", mock.Anything, []byte("%PDF-1.4 price list"), "price-list.pdf", "").
		Return(url, nil).Once()
	f.content.On("AddResource", mock.Anything, mock.MatchedBy(func(ri *entity.ResourceInsert) bool {
		return ri.Title == "Price List" && ri.FileURL == url && ri.ContentType == "application/pdf"
	})).Return(7, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/resources", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res entity.Resource
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 7, res.ID)
}

func TestDeleteResource(t *testing.T) {
	f := newFixture(t, false)

	res := &entity.Resource{ID: 7, ResourceInsert: entity.ResourceInsert{Title: "Price List", FileURL: "https://files.example.com/r.pdf"}}
	f.content.On("GetResourceById", mock.Anything, 7).Return(res, nil).Once()
	f.content.On("DeleteResource", mock.Anything, 7).Return(nil).Once()
	f.bucket.On("Delete", mock.Anything, "https://files.example.com/r.pdf").Return(errors.New("gone")).Once()

	rec := f.do(t, http.MethodDelete, "/resources/7", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSampleRequests(t *testing.T) {
	f := newFixture(t, false)

	f.samples.On("ListSampleRequests", mock.Anything, true).Return([]entity.SampleRequest{{ID: 1, Handled: true}}, nil).Once()
	rec := f.do(t, http.MethodGet, "/sample-requests?include_handled=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.samples.On("MarkHandled", mock.Anything, 2).Return(gerr.NotFound).Once()
	rec = f.do(t, http.MethodPost, "/sample-requests/2/handled", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestThreadAndReply(t *testing.T) {
	f := newFixture(t, false)

	rt := testRetailer(4)
	f.retailers.On("GetRetailerById", mock.Anything, 4).Return(rt, nil).Twice()
	f.messages.On("ListMessages", mock.Anything, 4).Return([]entity.Message{
		{ID: 1, RetailerID: 4, Sender: entity.SenderRetailer, Body: "Any restock date?"},
	}, nil).Once()
	f.messages.On("MarkRead", mock.Anything, 4, entity.SenderRetailer).Return(nil).Once()

	rec := f.do(t, http.MethodGet, "/messages/4", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	m := &entity.Message{ID: 2, RetailerID: 4, Sender: entity.SenderVendor, Body: "Next Tuesday."}
	f.messages.On("AddMessage", mock.Anything, 4, entity.SenderVendor, "Next Tuesday.").Return(m, nil).Once()
	f.mailer.On("SendMessageReply", mock.Anything, f.repo, "buyer@example.com", mock.Anything).
		Return(errors.New("sendgrid down")).Once()

	rec = f.do(t, http.MethodPost, "/messages/4", map[string]string{"body": " Next Tuesday. "})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestListLatestMessages(t *testing.T) {
	f := newFixture(t, false)

	f.messages.On("ListLatestMessages", mock.Anything, defaultMessageLim).Return([]entity.Message{}, nil).Once()
	rec := f.do(t, http.MethodGet, "/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.messages.On("ListLatestMessages", mock.Anything, 5).Return([]entity.Message{}, nil).Once()
	rec = f.do(t, http.MethodGet, "/messages?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestInsights(t *testing.T) {
	f := newFixture(t, false)

	f.orders.On("ListOrdersFull", mock.Anything, entity.OrderFilter{}).Return([]entity.OrderFull{
		testOrder(1, 4, entity.OrderDelivered, now.AddDate(0, -1, 0)),
		testOrder(2, 4, entity.OrderCanceled, now),
	}, nil).Once()
	f.retailers.On("ListRetailers", mock.Anything).Return([]entity.Retailer{*testRetailer(4)}, nil).Once()
	f.catalog.On("Products").Return([]entity.Product{testProduct(1)}).Once()

	rec := f.do(t, http.MethodGet, "/insights", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var in entity.Insights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &in))
	assert.Equal(t, 1, in.Revenue.TotalOrders)
	assert.True(t, in.Revenue.TotalWholesale.Equal(decimal.RequireFromString("11")))
}

func TestInsightsLoadError(t *testing.T) {
	f := newFixture(t, false)

	f.orders.On("ListOrdersFull", mock.Anything, entity.OrderFilter{}).Return(nil, errors.New("db down")).Once()
	f.retailers.On("ListRetailers", mock.Anything).Return(nil, nil).Maybe()

	rec := f.do(t, http.MethodGet, "/insights", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestProductLifecycle(t *testing.T) {
	f := newFixture(t, false)

	p := testProduct(1)
	f.products.On("AddProduct", mock.Anything, mock.MatchedBy(func(pi *entity.ProductInsert) bool {
		return pi.Name == "Chicken Topper"
	})).Return(1, nil).Once()
	f.products.On("GetProductById", mock.Anything, 1).Return(&p, nil).Once()
	f.catalog.On("Refresh", mock.Anything).Return(nil).Times(3)

	rec := f.do(t, http.MethodPost, "/products", map[string]any{
		"name": "Chicken Topper", "size": "6 oz", "category": entity.CategoryToppers,
		"price": "5.50", "stock_quantity": 10, "is_active": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	f.products.On("UpdateStock", mock.Anything, 1, 25).Return(nil).Once()
	rec = f.do(t, http.MethodPut, "/products/1/stock", map[string]int{"stock_quantity": 25})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	f.products.On("DeactivateProduct", mock.Anything, 1).Return(nil).Once()
	rec = f.do(t, http.MethodDelete, "/products/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

package mail

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/dependency/mocks"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		FromEmail:      "orders@wholesale.example.com",
		FromName:       "Wholesale",
		VendorEmail:    "team@wholesale.example.com",
		WorkerInterval: time.Minute,
	}
}

func recipient(msg *sgmail.SGMailV3) string {
	if len(msg.Personalizations) == 0 || len(msg.Personalizations[0].To) == 0 {
		return ""
	}
	return msg.Personalizations[0].To[0].Address
}

func testOrder() (*entity.OrderFull, *entity.Retailer) {
	of := &entity.OrderFull{
		Order: entity.Order{
			ID:        1,
			UUID:      "8c1f3a",
			Subtotal:  decimal.RequireFromString("1234.5"),
			Total:     decimal.RequireFromString("1234.5"),
			Status:    entity.OrderPending,
			CreatedAt: time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC),
		},
		Items: []entity.OrderItem{
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("1212.5"), Product: &entity.Product{ID: 2, ProductInsert: entity.ProductInsert{Name: "Salmon Topper", Size: "6 oz"}}},
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("11"), Product: &entity.Product{ID: 1, ProductInsert: entity.ProductInsert{Name: "Chicken Topper", Size: "6 oz"}}},
		},
	}
	r := &entity.Retailer{
		ID:            3,
		AccountNumber: "WS-1A2B3C4D",
		RetailerInsert: entity.RetailerInsert{
			CompanyName: "Barking Lot",
			Email:       "buyer@example.com",
		},
	}
	return of, r
}

func TestTemplatesParsed(t *testing.T) {
	m, err := newMailer(testConfig(), mocks.NewSender(t), mocks.NewMail(t))
	require.NoError(t, err)
	for tn := range templateSubjects {
		assert.Contains(t, m.templates, tn)
	}
}

func TestNewIncompleteConfig(t *testing.T) {
	_, err := newMailer(&Config{FromEmail: "a@b.c", FromName: "x"}, mocks.NewSender(t), mocks.NewMail(t))
	assert.Error(t, err)

	_, err = New(testConfig(), mocks.NewMail(t))
	assert.Error(t, err)
}

func TestSendOrderPlaced(t *testing.T) {
	ctx := context.Background()
	sender := mocks.NewSender(t)
	mailDB := mocks.NewMail(t)
	rep := mocks.NewRepository(t)

	m, err := newMailer(testConfig(), sender, mailDB)
	require.NoError(t, err)

	rep.On("Mail").Return(mailDB)
	mailDB.On("AddMail", ctx, mock.MatchedBy(func(ser *entity.SendEmailRequest) bool {
		chicken := strings.Index(ser.HTML, "Chicken Topper")
		salmon := strings.Index(ser.HTML, "Salmon Topper")
		return ser.To == "buyer@example.com" &&
			ser.Subject == templateSubjects[OrderPlaced] &&
			chicken >= 0 && salmon > chicken &&
			strings.Contains(ser.HTML, "$1,234.50") &&
			strings.Contains(ser.HTML, "$22.00")
	})).Return(7, nil)
	sender.On("SendWithContext", ctx, mock.MatchedBy(func(msg *sgmail.SGMailV3) bool {
		return recipient(msg) == "buyer@example.com" && msg.From.Address == "orders@wholesale.example.com"
	})).Return(&rest.Response{StatusCode: http.StatusAccepted}, nil)
	mailDB.On("MarkSent", ctx, 7).Return(nil)

	of, r := testOrder()
	err = m.SendOrderPlaced(ctx, rep, r.Email, dto.OrderFullToOrderPlaced(of, r))
	assert.NoError(t, err)
}

func TestSendOrderReceivedGoesToVendor(t *testing.T) {
	ctx := context.Background()
	sender := mocks.NewSender(t)
	mailDB := mocks.NewMail(t)
	rep := mocks.NewRepository(t)

	m, err := newMailer(testConfig(), sender, mailDB)
	require.NoError(t, err)

	rep.On("Mail").Return(mailDB)
	mailDB.On("AddMail", ctx, mock.MatchedBy(func(ser *entity.SendEmailRequest) bool {
		return ser.To == "team@wholesale.example.com" && strings.Contains(ser.HTML, "WS-1A2B3C4D")
	})).Return(8, nil)
	sender.On("SendWithContext", ctx, mock.Anything).Return(&rest.Response{StatusCode: http.StatusAccepted}, nil)
	mailDB.On("MarkSent", ctx, 8).Return(nil)

	of, r := testOrder()
	assert.NoError(t, m.SendOrderReceived(ctx, rep, dto.OrderFullToOrderPlaced(of, r)))
}

func TestSendFailureStaysQueued(t *testing.T) {
	ctx := context.Background()
	sender := mocks.NewSender(t)
	mailDB := mocks.NewMail(t)
	rep := mocks.NewRepository(t)

	m, err := newMailer(testConfig(), sender, mailDB)
	require.NoError(t, err)

	rep.On("Mail").Return(mailDB)
	mailDB.On("AddMail", ctx, mock.Anything).Return(9, nil)
	sender.On("SendWithContext", ctx, mock.Anything).Return(&rest.Response{StatusCode: http.StatusTooManyRequests}, nil)

	of, r := testOrder()
	tracking := "1Z999"
	carrier := "UPS"
	of.TrackingNumber = &tracking
	of.TrackingCarrier = &carrier
	assert.NoError(t, m.SendOrderShipped(ctx, rep, r.Email, dto.OrderFullToOrderShipped(of, r)))
	mailDB.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestSendFailureCountsAttempt(t *testing.T) {
	ctx := context.Background()
	sender := mocks.NewSender(t)
	mailDB := mocks.NewMail(t)
	rep := mocks.NewRepository(t)

	m, err := newMailer(testConfig(), sender, mailDB)
	require.NoError(t, err)

	rep.On("Mail").Return(mailDB)
	mailDB.On("AddMail", ctx, mock.Anything).Return(11, nil)
	sender.On("SendWithContext", ctx, mock.Anything).Return(&rest.Response{StatusCode: http.StatusBadRequest, Body: "bad"}, nil)
	mailDB.On("MarkFailed", ctx, 11, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "400")
	})).Return(nil).Once()

	_, r := testOrder()
	msg := &entity.Message{RetailerID: r.ID, Sender: entity.SenderRetailer, Body: "hello"}
	assert.NoError(t, m.SendMessageReceived(ctx, rep, dto.MessageToMail(msg, r)))
	mailDB.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestMessageBodyEscaped(t *testing.T) {
	ctx := context.Background()
	sender := mocks.NewSender(t)
	mailDB := mocks.NewMail(t)
	rep := mocks.NewRepository(t)

	m, err := newMailer(testConfig(), sender, mailDB)
	require.NoError(t, err)

	rep.On("Mail").Return(mailDB)
	mailDB.On("AddMail", ctx, mock.MatchedBy(func(ser *entity.SendEmailRequest) bool {
		return !strings.Contains(ser.HTML, "<script>") && strings.Contains(ser.HTML, "&lt;script&gt;")
	})).Return(1, nil)
	sender.On("SendWithContext", ctx, mock.Anything).Return(&rest.Response{StatusCode: http.StatusAccepted}, nil)
	mailDB.On("MarkSent", ctx, 1).Return(nil)

	_, r := testOrder()
	msg := &entity.Message{RetailerID: r.ID, Sender: entity.SenderRetailer, Body: "<script>alert(1)</script>"}
	assert.NoError(t, m.SendMessageReceived(ctx, rep, dto.MessageToMail(msg, r)))
}

func TestSendIncompleteDetails(t *testing.T) {
	ctx := context.Background()
	m, err := newMailer(testConfig(), mocks.NewSender(t), mocks.NewMail(t))
	require.NoError(t, err)
	rep := mocks.NewRepository(t)

	assert.Error(t, m.SendOrderPlaced(ctx, rep, "buyer@example.com", &dto.OrderPlaced{}))
	assert.Error(t, m.SendInvoice(ctx, rep, "buyer@example.com", &dto.InvoiceMail{OrderUUID: "x"}))
	assert.Error(t, m.SendWelcome(ctx, rep, "", &dto.Welcome{AccountNumber: "WS-1"}))
	assert.NoError(t, m.SendAtRiskDigest(ctx, rep, &dto.AtRiskDigest{}))
}

func TestHandleUnsent(t *testing.T) {
	ctx := context.Background()
	sender := mocks.NewSender(t)
	mailDB := mocks.NewMail(t)

	m, err := newMailer(testConfig(), sender, mailDB)
	require.NoError(t, err)

	queued := []entity.SendEmailRequest{
		{ID: 1, From: "orders@wholesale.example.com", To: "ok@example.com", Subject: "s", HTML: "<p>1</p>"},
		{ID: 2, From: "orders@wholesale.example.com", To: "bad@example.com", Subject: "s", HTML: "<p>2</p>"},
		{ID: 3, From: "orders@wholesale.example.com", To: "limit@example.com", Subject: "s", HTML: "<p>3</p>"},
		{ID: 4, From: "orders@wholesale.example.com", To: "later@example.com", Subject: "s", HTML: "<p>4</p>"},
	}
	to := func(addr string) any {
		return mock.MatchedBy(func(msg *sgmail.SGMailV3) bool { return recipient(msg) == addr })
	}

	mailDB.On("ListUnsent", ctx, 5, unsentBatch).Return(queued, nil)
	sender.On("SendWithContext", ctx, to("ok@example.com")).Return(&rest.Response{StatusCode: http.StatusAccepted}, nil)
	sender.On("SendWithContext", ctx, to("bad@example.com")).Return(&rest.Response{StatusCode: http.StatusBadRequest, Body: "bad"}, nil)
	sender.On("SendWithContext", ctx, to("limit@example.com")).Return(&rest.Response{StatusCode: http.StatusTooManyRequests}, nil)
	mailDB.On("MarkSent", ctx, 1).Return(nil)
	mailDB.On("MarkFailed", ctx, 2, mock.Anything).Return(nil)

	assert.NoError(t, m.handleUnsent(ctx))
	sender.AssertNotCalled(t, "SendWithContext", ctx, to("later@example.com"))
}

func TestStartStop(t *testing.T) {
	m, err := newMailer(testConfig(), mocks.NewSender(t), mocks.NewMail(t))
	require.NoError(t, err)

	assert.Error(t, m.Stop())
	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Start(context.Background()))
	assert.NoError(t, m.Stop())
}

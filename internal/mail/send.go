package mail

import (
	"context"
	"fmt"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/dto"
)

const (
	Welcome         = "welcome.gohtml"
	OrderPlaced     = "order_placed.gohtml"
	OrderReceived   = "order_received.gohtml"
	OrderShipped    = "order_shipped.gohtml"
	OrderCanceled   = "order_canceled.gohtml"
	Invoice         = "invoice.gohtml"
	MessageReceived = "message_received.gohtml"
	MessageReply    = "message_reply.gohtml"
	SampleRequest   = "sample_request.gohtml"
	AtRiskDigest    = "at_risk_digest.gohtml"
)

var templateSubjects = map[string]string{
	Welcome:         "Your wholesale account is ready",
	OrderPlaced:     "We received your wholesale order",
	OrderReceived:   "New wholesale order",
	OrderShipped:    "Your wholesale order has shipped",
	OrderCanceled:   "Your wholesale order has been canceled",
	Invoice:         "Your invoice is ready",
	MessageReceived: "New message from a retailer",
	MessageReply:    "New message from your wholesale team",
	SampleRequest:   "New sample request",
	AtRiskDigest:    "Retailers at risk",
}

func (m *Mailer) sendTemplate(ctx context.Context, rep dependency.Repository, to, tn string, data any) error {
	if to == "" {
		return fmt.Errorf("empty recipient for %s", tn)
	}
	ser, err := m.buildSendMailRequest(to, tn, data)
	if err != nil {
		return fmt.Errorf("can't build %s: %w", tn, err)
	}
	return m.sendWithInsert(ctx, rep, ser)
}

// SendWelcome greets a retailer after signup.
func (m *Mailer) SendWelcome(ctx context.Context, rep dependency.Repository, to string, d *dto.Welcome) error {
	if d.AccountNumber == "" {
		return fmt.Errorf("incomplete welcome details: %+v", d)
	}
	return m.sendTemplate(ctx, rep, to, Welcome, d)
}

// SendOrderPlaced sends the checkout confirmation to the retailer.
func (m *Mailer) SendOrderPlaced(ctx context.Context, rep dependency.Repository, to string, d *dto.OrderPlaced) error {
	if d.OrderUUID == "" || len(d.OrderItems) == 0 {
		return fmt.Errorf("incomplete order details: %+v", d)
	}
	return m.sendTemplate(ctx, rep, to, OrderPlaced, d)
}

// SendOrderReceived notifies the vendor team about a new order.
func (m *Mailer) SendOrderReceived(ctx context.Context, rep dependency.Repository, d *dto.OrderPlaced) error {
	if d.OrderUUID == "" {
		return fmt.Errorf("incomplete order details: %+v", d)
	}
	return m.sendTemplate(ctx, rep, m.c.VendorEmail, OrderReceived, d)
}

func (m *Mailer) SendOrderShipped(ctx context.Context, rep dependency.Repository, to string, d *dto.OrderShipped) error {
	if d.OrderUUID == "" || d.TrackingNumber == "" {
		return fmt.Errorf("incomplete shipment details: %+v", d)
	}
	return m.sendTemplate(ctx, rep, to, OrderShipped, d)
}

func (m *Mailer) SendOrderCanceled(ctx context.Context, rep dependency.Repository, to string, d *dto.OrderCanceled) error {
	if d.OrderUUID == "" {
		return fmt.Errorf("incomplete order details: %+v", d)
	}
	return m.sendTemplate(ctx, rep, to, OrderCanceled, d)
}

func (m *Mailer) SendInvoice(ctx context.Context, rep dependency.Repository, to string, d *dto.InvoiceMail) error {
	if d.InvoiceURL == "" {
		return fmt.Errorf("incomplete invoice details: %+v", d)
	}
	return m.sendTemplate(ctx, rep, to, Invoice, d)
}

// SendMessageReceived forwards a retailer message to the vendor team.
func (m *Mailer) SendMessageReceived(ctx context.Context, rep dependency.Repository, d *dto.MessageMail) error {
	return m.sendTemplate(ctx, rep, m.c.VendorEmail, MessageReceived, d)
}

func (m *Mailer) SendMessageReply(ctx context.Context, rep dependency.Repository, to string, d *dto.MessageMail) error {
	return m.sendTemplate(ctx, rep, to, MessageReply, d)
}

func (m *Mailer) SendSampleRequest(ctx context.Context, rep dependency.Repository, d *dto.SampleRequestMail) error {
	return m.sendTemplate(ctx, rep, m.c.VendorEmail, SampleRequest, d)
}

func (m *Mailer) SendAtRiskDigest(ctx context.Context, rep dependency.Repository, d *dto.AtRiskDigest) error {
	if len(d.Retailers) == 0 {
		return nil
	}
	return m.sendTemplate(ctx, rep, m.c.VendorEmail, AtRiskDigest, d)
}

package dto

import (
	"time"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/entity"
)

const mailDateLayout = "Jan 2, 2006"

type Welcome struct {
	Preheader     string
	CompanyName   string
	ContactName   string
	AccountNumber string
}

type OrderItem struct {
	Name      string
	Size      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// OrderPlaced feeds both the retailer confirmation and the vendor notification.
type OrderPlaced struct {
	Preheader      string
	CompanyName    string
	AccountNumber  string
	OrderUUID      string
	PlacedAt       string
	DeliveryDate   string
	OrderItems     []OrderItem
	SubtotalPrice  string
	TotalPrice     string
	PromotionCode  string
	IncludeSamples bool
	Notes          string
}

type OrderShipped struct {
	Preheader       string
	CompanyName     string
	OrderUUID       string
	TrackingNumber  string
	TrackingCarrier string
	OrderItems      []OrderItem
	TotalPrice      string
}

type OrderCanceled struct {
	Preheader   string
	CompanyName string
	OrderUUID   string
	TotalPrice  string
}

type InvoiceMail struct {
	Preheader   string
	CompanyName string
	OrderUUID   string
	InvoiceURL  string
	TotalPrice  string
}

type MessageMail struct {
	Preheader     string
	CompanyName   string
	AccountNumber string
	Body          string
}

type SampleRequestMail struct {
	Preheader     string
	CompanyName   string
	AccountNumber string
	Products      string
	Notes         string
}

type AtRiskLine struct {
	CompanyName   string
	DaysSince     int
	LastOrderDate string
	TotalSpent    string
	TotalOrders   int
}

type AtRiskDigest struct {
	Preheader string
	Retailers []AtRiskLine
}

func orderItems(items []entity.OrderItem) []OrderItem {
	sorted := append([]entity.OrderItem(nil), items...)
	analytics.CanonicalSortItems(sorted)

	out := make([]OrderItem, 0, len(sorted))
	for _, it := range sorted {
		oi := OrderItem{
			Name:      "Unknown product",
			Quantity:  it.Quantity,
			UnitPrice: FormatUSD(it.UnitPrice),
			LineTotal: FormatUSD(it.LineTotal()),
		}
		if it.Product != nil {
			oi.Name = it.Product.Name
			oi.Size = it.Product.Size
		}
		out = append(out, oi)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(mailDateLayout)
}

func RetailerToWelcome(r *entity.Retailer) *Welcome {
	return &Welcome{
		Preheader:     "YOUR WHOLESALE ACCOUNT IS READY",
		CompanyName:   r.CompanyName,
		ContactName:   r.ContactName,
		AccountNumber: r.AccountNumber,
	}
}

func OrderFullToOrderPlaced(of *entity.OrderFull, r *entity.Retailer) *OrderPlaced {
	return &OrderPlaced{
		Preheader:      "YOUR WHOLESALE ORDER HAS BEEN PLACED",
		CompanyName:    r.CompanyName,
		AccountNumber:  r.AccountNumber,
		OrderUUID:      of.UUID,
		PlacedAt:       of.CreatedAt.Format(mailDateLayout),
		DeliveryDate:   formatDate(of.DeliveryDate),
		OrderItems:     orderItems(of.Items),
		SubtotalPrice:  FormatUSD(of.Subtotal),
		TotalPrice:     FormatUSD(of.Total),
		PromotionCode:  deref(of.PromotionCode),
		IncludeSamples: of.IncludeSamples,
		Notes:          deref(of.Notes),
	}
}

func OrderFullToOrderShipped(of *entity.OrderFull, r *entity.Retailer) *OrderShipped {
	return &OrderShipped{
		Preheader:       "YOUR WHOLESALE ORDER HAS BEEN SHIPPED",
		CompanyName:     r.CompanyName,
		OrderUUID:       of.UUID,
		TrackingNumber:  deref(of.TrackingNumber),
		TrackingCarrier: deref(of.TrackingCarrier),
		OrderItems:      orderItems(of.Items),
		TotalPrice:      FormatUSD(of.Total),
	}
}

func OrderFullToOrderCanceled(of *entity.OrderFull, r *entity.Retailer) *OrderCanceled {
	return &OrderCanceled{
		Preheader:   "YOUR WHOLESALE ORDER HAS BEEN CANCELED",
		CompanyName: r.CompanyName,
		OrderUUID:   of.UUID,
		TotalPrice:  FormatUSD(of.Total),
	}
}

func OrderFullToInvoiceMail(of *entity.OrderFull, r *entity.Retailer) *InvoiceMail {
	return &InvoiceMail{
		Preheader:   "YOUR INVOICE IS READY",
		CompanyName: r.CompanyName,
		OrderUUID:   of.UUID,
		InvoiceURL:  deref(of.InvoiceURL),
		TotalPrice:  FormatUSD(of.Total),
	}
}

func MessageToMail(m *entity.Message, r *entity.Retailer) *MessageMail {
	return &MessageMail{
		Preheader:     "NEW MESSAGE",
		CompanyName:   r.CompanyName,
		AccountNumber: r.AccountNumber,
		Body:          m.Body,
	}
}

func SampleRequestToMail(s *entity.SampleRequestInsert, r *entity.Retailer) *SampleRequestMail {
	return &SampleRequestMail{
		Preheader:     "NEW SAMPLE REQUEST",
		CompanyName:   r.CompanyName,
		AccountNumber: r.AccountNumber,
		Products:      s.Products,
		Notes:         deref(s.Notes),
	}
}

func AtRiskToDigest(atRisk []entity.AtRiskRetailer) *AtRiskDigest {
	d := &AtRiskDigest{
		Preheader: "RETAILERS AT RISK",
		Retailers: make([]AtRiskLine, 0, len(atRisk)),
	}
	for _, r := range atRisk {
		d.Retailers = append(d.Retailers, AtRiskLine{
			CompanyName:   r.CompanyName,
			DaysSince:     r.DaysSince,
			LastOrderDate: r.LastOrderDate.Format(mailDateLayout),
			TotalSpent:    FormatUSD(r.TotalSpent),
			TotalOrders:   r.TotalOrders,
		})
	}
	return d
}

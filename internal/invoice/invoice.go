// Package invoice issues hosted Stripe invoices for wholesale orders.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type Config struct {
	SecretKey    string `mapstructure:"secret_key"`
	Currency     string `mapstructure:"currency"`
	DaysUntilDue int64  `mapstructure:"days_until_due"`
}

// api is the subset of the stripe client used to build an invoice.
type api interface {
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	NewInvoice(params *stripe.InvoiceParams) (*stripe.Invoice, error)
	NewInvoiceItem(params *stripe.InvoiceItemParams) (*stripe.InvoiceItem, error)
	FinalizeInvoice(id string, params *stripe.InvoiceFinalizeInvoiceParams) (*stripe.Invoice, error)
}

type stripeAPI struct {
	sc *client.API
}

func (s *stripeAPI) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return s.sc.Customers.New(params)
}

func (s *stripeAPI) NewInvoice(params *stripe.InvoiceParams) (*stripe.Invoice, error) {
	return s.sc.Invoices.New(params)
}

func (s *stripeAPI) NewInvoiceItem(params *stripe.InvoiceItemParams) (*stripe.InvoiceItem, error) {
	return s.sc.InvoiceItems.New(params)
}

func (s *stripeAPI) FinalizeInvoice(id string, params *stripe.InvoiceFinalizeInvoiceParams) (*stripe.Invoice, error) {
	return s.sc.Invoices.FinalizeInvoice(id, params)
}

type Invoicer struct {
	c   *Config
	api api
}

func New(c *Config) (dependency.Invoicer, error) {
	if c.SecretKey == "" {
		return nil, gerr.InvoiceNotConfigured
	}
	sc := &client.API{}
	sc.Init(c.SecretKey, nil)
	return newInvoicer(c, &stripeAPI{sc: sc}), nil
}

func newInvoicer(c *Config, a api) *Invoicer {
	if c.Currency == "" {
		c.Currency = string(stripe.CurrencyUSD)
	}
	if c.DaysUntilDue <= 0 {
		c.DaysUntilDue = 30
	}
	return &Invoicer{c: c, api: a}
}

func toCents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func lineDescription(it entity.OrderItem) string {
	name := fmt.Sprintf("Product #%d", it.ProductID)
	if it.Product != nil {
		name = strings.TrimSpace(it.Product.Name + " " + it.Product.Size)
	}
	return fmt.Sprintf("%s x %d @ %s", name, it.Quantity, it.UnitPrice.StringFixed(2))
}

func (iv *Invoicer) customer(ctx context.Context, r *entity.Retailer) (string, error) {
	if r.StripeCustomerID != nil && *r.StripeCustomerID != "" {
		return *r.StripeCustomerID, nil
	}
	params := &stripe.CustomerParams{
		Name:  stripe.String(r.CompanyName),
		Email: stripe.String(r.Email),
		Metadata: map[string]string{
			"account_number": r.AccountNumber,
			"retailer_id":    fmt.Sprint(r.ID),
		},
	}
	params.Context = ctx
	if r.Phone != "" {
		params.Phone = stripe.String(r.Phone)
	}
	c, err := iv.api.NewCustomer(params)
	if err != nil {
		return "", fmt.Errorf("can't create stripe customer: %w", err)
	}
	return c.ID, nil
}

// CreateInvoice creates a customer when the retailer has none, a draft
// invoice with one line per order item, and finalizes it.
func (iv *Invoicer) CreateInvoice(ctx context.Context, r *entity.Retailer, of *entity.OrderFull) (*entity.InvoiceResult, error) {
	if len(of.Items) == 0 {
		return nil, gerr.EmptyOrder
	}

	customerID, err := iv.customer(ctx, r)
	if err != nil {
		return nil, err
	}

	invParams := &stripe.InvoiceParams{
		Customer:                    stripe.String(customerID),
		Currency:                    stripe.String(iv.c.Currency),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:                stripe.Int64(iv.c.DaysUntilDue),
		AutoAdvance:                 stripe.Bool(false),
		PendingInvoiceItemsBehavior: stripe.String("exclude"),
		Description:                 stripe.String(fmt.Sprintf("Wholesale order %s", of.UUID)),
		Metadata: map[string]string{
			"order_uuid": of.UUID,
		},
	}
	invParams.Context = ctx
	inv, err := iv.api.NewInvoice(invParams)
	if err != nil {
		return nil, fmt.Errorf("can't create stripe invoice: %w", err)
	}

	items := append([]entity.OrderItem(nil), of.Items...)
	analytics.CanonicalSortItems(items)
	for _, it := range items {
		itemParams := &stripe.InvoiceItemParams{
			Customer:    stripe.String(customerID),
			Invoice:     stripe.String(inv.ID),
			Currency:    stripe.String(iv.c.Currency),
			Amount:      stripe.Int64(toCents(it.LineTotal())),
			Description: stripe.String(lineDescription(it)),
		}
		itemParams.Context = ctx
		if _, err := iv.api.NewInvoiceItem(itemParams); err != nil {
			return nil, fmt.Errorf("can't add invoice item: %w", err)
		}
	}

	finParams := &stripe.InvoiceFinalizeInvoiceParams{}
	finParams.Context = ctx
	final, err := iv.api.FinalizeInvoice(inv.ID, finParams)
	if err != nil {
		return nil, fmt.Errorf("can't finalize stripe invoice: %w", err)
	}

	if final.AmountDue != toCents(of.Total) {
		slog.Default().WarnContext(ctx, "stripe invoice amount differs from order total",
			slog.String("order_uuid", of.UUID),
			slog.Int64("amount_due", final.AmountDue),
			slog.String("total", of.Total.String()),
		)
	}

	return &entity.InvoiceResult{
		InvoiceID:  final.ID,
		CustomerID: customerID,
		URL:        final.HostedInvoiceURL,
	}, nil
}

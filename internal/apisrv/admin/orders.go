package admin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/jekabolt/wholesale-portal/internal/export"
	"github.com/jekabolt/wholesale-portal/internal/form"
	"golang.org/x/sync/errgroup"
)

const (
	maxInvoiceSize = 10 << 20
	filterDate     = "2006-01-02"
)

// orderFilter reads status, retailer_id, from, to, limit and offset.
func orderFilter(r *http.Request) (entity.OrderFilter, error) {
	q := r.URL.Query()
	f := entity.OrderFilter{}

	if st := q.Get("status"); st != "" {
		f.Status = entity.OrderStatus(st)
		if !f.Status.Valid() {
			return f, fmt.Errorf("%w: unknown status %q", gerr.BadRequest, st)
		}
	}
	var err error
	if f.RetailerID, err = apisrv.QueryInt(r, "retailer_id", 0); err != nil {
		return f, err
	}
	if f.Limit, err = apisrv.QueryInt(r, "limit", 0); err != nil {
		return f, err
	}
	if f.Offset, err = apisrv.QueryInt(r, "offset", 0); err != nil {
		return f, err
	}
	if v := q.Get("from"); v != "" {
		if f.From, err = time.Parse(filterDate, v); err != nil {
			return f, fmt.Errorf("%w: bad from date %q", gerr.BadRequest, v)
		}
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(filterDate, v)
		if err != nil {
			return f, fmt.Errorf("%w: bad to date %q", gerr.BadRequest, v)
		}
		// inclusive day
		f.To = to.AddDate(0, 0, 1)
	}
	return f, nil
}

func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	f, err := orderFilter(r)
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	orders, err := s.repo.Order().ListOrders(r.Context(), f)
	if err != nil {
		apisrv.Fail(w, r, "can't list orders", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, orders)
}

func (s *Server) orderByParam(w http.ResponseWriter, r *http.Request) *entity.OrderFull {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return nil
	}
	of, err := s.repo.Order().GetOrderById(r.Context(), id)
	if err != nil {
		apisrv.Fail(w, r, "can't get order", err)
		return nil
	}
	return of
}

// orderRetailer returns the joined retailer or loads it.
func (s *Server) orderRetailer(ctx context.Context, of *entity.OrderFull) (*entity.Retailer, error) {
	if of.Retailer != nil {
		return of.Retailer, nil
	}
	return s.repo.Retailers().GetRetailerById(ctx, of.RetailerID)
}

func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	of := s.orderByParam(w, r)
	if of == nil {
		return
	}
	analytics.CanonicalSortItems(of.Items)
	apisrv.JSON(w, r, http.StatusOK, of)
}

// CreateOrder places an order on behalf of a retailer, e.g. one taken by phone.
func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := &form.AdminOrderRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	rt, err := s.repo.Retailers().GetRetailerById(ctx, req.RetailerID)
	if err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}

	of, err := s.repo.Order().CreateOrder(ctx, req.ToOrderNew(rt.ID))
	if err != nil {
		apisrv.Fail(w, r, "can't create order", err)
		return
	}
	s.refreshCatalog(r)
	slog.Default().InfoContext(ctx, "order placed by admin",
		slog.String("admin", apisrv.Subject(r)),
		slog.Int("retailer_id", rt.ID),
		slog.String("order_uuid", of.UUID),
	)

	logMailErr(r, "can't send order placed email",
		s.mailer.SendOrderPlaced(ctx, s.repo, rt.Email, dto.OrderFullToOrderPlaced(of, rt)))
	apisrv.JSON(w, r, http.StatusCreated, of)
}

// UpdateOrderStatus moves an order along the status table. Canceling
// restores stock and notifies the retailer.
func (s *Server) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.UpdateStatusRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	of, err := s.repo.Order().UpdateStatus(ctx, id, req.Status)
	if err != nil {
		apisrv.Fail(w, r, "can't update order status", err)
		return
	}

	if req.Status == entity.OrderCanceled {
		s.refreshCatalog(r)
		if rt, err := s.orderRetailer(ctx, of); err != nil {
			logMailErr(r, "can't get retailer for canceled order", err)
		} else {
			logMailErr(r, "can't send order canceled email",
				s.mailer.SendOrderCanceled(ctx, s.repo, rt.Email, dto.OrderFullToOrderCanceled(of, rt)))
		}
	}
	apisrv.JSON(w, r, http.StatusOK, of)
}

// SetTracking records the shipment, marks the order shipped and emails the
// retailer.
func (s *Server) SetTracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.ShipmentRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	of, err := s.repo.Order().SetTracking(ctx, id, &req.Shipment)
	if err != nil {
		apisrv.Fail(w, r, "can't set tracking", err)
		return
	}
	rt, err := s.orderRetailer(ctx, of)
	if err != nil {
		logMailErr(r, "can't get retailer for shipped order", err)
	} else {
		logMailErr(r, "can't send order shipped email",
			s.mailer.SendOrderShipped(ctx, s.repo, rt.Email, dto.OrderFullToOrderShipped(of, rt)))
	}
	apisrv.JSON(w, r, http.StatusOK, of)
}

type invoiceURLResponse struct {
	URL string `json:"url"`
}

// UploadInvoice takes a raw PDF body and attaches it to the order.
func (s *Server) UploadInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	of := s.orderByParam(w, r)
	if of == nil {
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInvoiceSize))
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(fmt.Errorf("%w: %s", gerr.BadRequest, err.Error())))
		return
	}
	url, err := s.bucket.UploadInvoice(ctx, raw, of.UUID)
	if err != nil {
		apisrv.Fail(w, r, "can't upload invoice", fmt.Errorf("%w: %s", gerr.BadRequest, err.Error()))
		return
	}
	if err := s.repo.Order().SetInvoiceURL(ctx, of.ID, url); err != nil {
		apisrv.Fail(w, r, "can't set invoice url", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, invoiceURLResponse{URL: url})
}

// CreateInvoice issues a hosted Stripe invoice and attaches its URL.
func (s *Server) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.invoicer == nil {
		apisrv.Fail(w, r, "create invoice", gerr.InvoiceNotConfigured)
		return
	}
	of := s.orderByParam(w, r)
	if of == nil {
		return
	}
	if of.Status == entity.OrderCanceled {
		apisrv.Fail(w, r, "create invoice", fmt.Errorf("order %s is canceled: %w", of.UUID, gerr.InvalidTransition))
		return
	}
	rt, err := s.orderRetailer(ctx, of)
	if err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}

	res, err := s.invoicer.CreateInvoice(ctx, rt, of)
	if err != nil {
		apisrv.Fail(w, r, "can't create stripe invoice", err)
		return
	}
	if rt.StripeCustomerID == nil || *rt.StripeCustomerID != res.CustomerID {
		if err := s.repo.Retailers().SetStripeCustomerId(ctx, rt.ID, res.CustomerID); err != nil {
			slog.Default().ErrorContext(ctx, "can't store stripe customer id",
				slog.Int("retailer_id", rt.ID),
				slog.String("err", err.Error()),
			)
		}
	}
	if err := s.repo.Order().SetInvoiceURL(ctx, of.ID, res.URL); err != nil {
		apisrv.Fail(w, r, "can't set invoice url", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, res)
}

// SendInvoice emails the attached invoice and records the send.
func (s *Server) SendInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	of := s.orderByParam(w, r)
	if of == nil {
		return
	}
	if of.InvoiceURL == nil || *of.InvoiceURL == "" {
		apisrv.Fail(w, r, "send invoice", fmt.Errorf("%w: order %s has no invoice", gerr.BadRequest, of.UUID))
		return
	}
	rt, err := s.orderRetailer(ctx, of)
	if err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}

	if err := s.mailer.SendInvoice(ctx, s.repo, rt.Email, dto.OrderFullToInvoiceMail(of, rt)); err != nil {
		apisrv.Fail(w, r, "can't send invoice email", err)
		return
	}
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := rep.Order().MarkInvoiceSent(ctx, of.ID); err != nil {
			return err
		}
		return rep.Retailers().SetRetailerInvoiceSent(ctx, rt.ID, *of.InvoiceURL)
	})
	if err != nil {
		apisrv.Fail(w, r, "can't mark invoice sent", err)
		return
	}

	of, err = s.repo.Order().GetOrderById(ctx, of.ID)
	if err != nil {
		apisrv.Fail(w, r, "can't get order", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, of)
}

// ExportOrders streams the filtered orders as CSV, one row per item.
func (s *Server) ExportOrders(w http.ResponseWriter, r *http.Request) {
	f, err := orderFilter(r)
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	var (
		orders    []entity.OrderFull
		retailers []entity.Retailer
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		orders, err = s.repo.Order().ListOrdersFull(ctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		retailers, err = s.repo.Retailers().ListRetailers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		apisrv.Fail(w, r, "can't load orders for export", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="orders-%s.csv"`, s.repo.Now().Format(filterDate)))
	if err := export.WriteOrdersCSV(w, orders, retailers); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't write orders csv",
			slog.String("err", err.Error()),
		)
	}
}

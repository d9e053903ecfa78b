package retailer

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/cache"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/jekabolt/wholesale-portal/internal/form"
	"golang.org/x/sync/errgroup"
)

func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	apisrv.JSON(w, r, http.StatusOK, cache.ActiveProducts(s.catalog.Products()))
}

func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	p, ok := s.catalog.Product(id)
	if !ok || !p.IsActive {
		apisrv.Fail(w, r, "get product", gerr.ProductNotFound)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, p)
}

// precheck rejects items the snapshot already knows cannot be ordered. The
// store re-checks everything under lock.
func (s *Server) precheck(items []entity.OrderItemNew) error {
	for _, it := range items {
		p, ok := s.catalog.Product(it.ProductID)
		if !ok {
			return fmt.Errorf("product %d: %w", it.ProductID, gerr.ProductNotFound)
		}
		if !p.IsActive {
			return fmt.Errorf("product %d: %w", it.ProductID, gerr.ProductInactive)
		}
	}
	return nil
}

// CreateOrder is the checkout. Prices come from the catalog inside the store
// transaction, never from the request.
// headerOrdersRemaining carries the checkout budget left in the current hour.
const headerOrdersRemaining = "X-RateLimit-Remaining"

func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rt := s.retailer(w, r)
	if rt == nil {
		return
	}

	req := &form.CheckoutRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.limiter.CheckOrderCreation(limiterKey(rt.ID)); err != nil {
		apisrv.Fail(w, r, "order rate limited", err)
		return
	}
	w.Header().Set(headerOrdersRemaining, strconv.Itoa(s.limiter.RemainingOrders(limiterKey(rt.ID))))
	if err := s.precheck(req.Items); err != nil {
		apisrv.Fail(w, r, "checkout rejected", err)
		return
	}

	of, err := s.repo.Order().CreateOrder(ctx, req.ToOrderNew(rt.ID))
	if err != nil {
		apisrv.Fail(w, r, "can't create order", err)
		return
	}
	slog.Default().InfoContext(ctx, "order placed",
		slog.Int("retailer_id", rt.ID),
		slog.String("order_uuid", of.UUID),
		slog.String("total", of.Total.String()),
	)

	if err := s.catalog.Refresh(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't refresh catalog after order",
			slog.String("err", err.Error()),
		)
	}

	placed := dto.OrderFullToOrderPlaced(of, rt)
	logMailErr(r, "can't send order placed email", rt.ID, s.mailer.SendOrderPlaced(ctx, s.repo, rt.Email, placed))
	logMailErr(r, "can't send order received email", rt.ID, s.mailer.SendOrderReceived(ctx, s.repo, placed))

	apisrv.JSON(w, r, http.StatusCreated, of)
}

// ListOrders returns the retailer's order history, canceled orders included.
func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	orders, err := s.repo.Order().ListOrdersFull(r.Context(), entity.OrderFilter{RetailerID: id})
	if err != nil {
		apisrv.Fail(w, r, "can't list orders", err)
		return
	}
	for i := range orders {
		analytics.CanonicalSortItems(orders[i].Items)
	}
	apisrv.JSON(w, r, http.StatusOK, orders)
}

func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	of, err := s.repo.Order().GetOrderByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		apisrv.Fail(w, r, "can't get order", err)
		return
	}
	if of.RetailerID != id {
		apisrv.Fail(w, r, "order of another retailer", gerr.OrderNotFound)
		return
	}
	analytics.CanonicalSortItems(of.Items)
	apisrv.JSON(w, r, http.StatusOK, of)
}

// Dashboard is the retailer's own analytics view.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}

	var (
		rt     *entity.Retailer
		orders []entity.OrderFull
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		rt, err = s.repo.Retailers().GetRetailerById(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.repo.Order().ListOrdersFull(ctx, entity.OrderFilter{RetailerID: id})
		return err
	})
	if err := g.Wait(); err != nil {
		apisrv.Fail(w, r, "can't load dashboard", err)
		return
	}

	d := analytics.BuildRetailerDashboard(*rt, orders, s.catalog.Products(), s.repo.Now())
	apisrv.JSON(w, r, http.StatusOK, d)
}

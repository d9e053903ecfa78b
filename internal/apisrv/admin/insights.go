package admin

import (
	"net/http"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"golang.org/x/sync/errgroup"
)

// Insights computes the admin analytics view over every order and retailer.
func (s *Server) Insights(w http.ResponseWriter, r *http.Request) {
	var (
		orders    []entity.OrderFull
		retailers []entity.Retailer
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		orders, err = s.repo.Order().ListOrdersFull(ctx, entity.OrderFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		retailers, err = s.repo.Retailers().ListRetailers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		apisrv.Fail(w, r, "can't load insights data", err)
		return
	}

	apisrv.JSON(w, r, http.StatusOK, analytics.BuildInsights(orders, retailers, s.catalog.Products(), s.repo.Now()))
}

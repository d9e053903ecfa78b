package admin

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/jekabolt/wholesale-portal/internal/form"
	"golang.org/x/sync/errgroup"
)

// RetailerRow is one line of the retailer list.
type RetailerRow struct {
	entity.Retailer
	Stats entity.RetailerStat `json:"stats"`
}

// RetailerDetail is the drill-down of a single retailer.
type RetailerDetail struct {
	Retailer  *entity.Retailer          `json:"retailer"`
	Dashboard *entity.RetailerDashboard `json:"dashboard"`
	Locations []entity.RetailerLocation `json:"locations"`
	Orders    []entity.OrderFull        `json:"orders"`
}

func (s *Server) ListRetailers(w http.ResponseWriter, r *http.Request) {
	var (
		retailers []entity.Retailer
		orders    []entity.OrderFull
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		retailers, err = s.repo.Retailers().ListRetailers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.repo.Order().ListOrdersFull(ctx, entity.OrderFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		apisrv.Fail(w, r, "can't load retailers", err)
		return
	}

	stats := make(map[int]entity.RetailerStat, len(retailers))
	for _, st := range analytics.RetailerStats(orders, retailers) {
		stats[st.RetailerID] = st
	}
	rows := make([]RetailerRow, 0, len(retailers))
	for _, rt := range retailers {
		st, ok := stats[rt.ID]
		if !ok {
			st = entity.RetailerStat{RetailerID: rt.ID, CompanyName: rt.CompanyName}
		}
		rows = append(rows, RetailerRow{Retailer: rt, Stats: st})
	}
	apisrv.JSON(w, r, http.StatusOK, rows)
}

func (s *Server) GetRetailer(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	d := RetailerDetail{}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		d.Retailer, err = s.repo.Retailers().GetRetailerById(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		d.Orders, err = s.repo.Order().ListOrdersFull(ctx, entity.OrderFilter{RetailerID: id})
		return err
	})
	g.Go(func() error {
		var err error
		d.Locations, err = s.repo.Locations().ListLocations(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		apisrv.Fail(w, r, "can't load retailer", err)
		return
	}

	for i := range d.Orders {
		analytics.CanonicalSortItems(d.Orders[i].Items)
	}
	d.Dashboard = analytics.BuildRetailerDashboard(*d.Retailer, d.Orders, s.catalog.Products(), s.repo.Now())
	apisrv.JSON(w, r, http.StatusOK, d)
}

func (s *Server) UpdateRetailer(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.AdminRetailerRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Retailers().UpdateRetailer(r.Context(), id, req.ToInsert()); err != nil {
		apisrv.Fail(w, r, "can't update retailer", err)
		return
	}
	rt, err := s.repo.Retailers().GetRetailerById(r.Context(), id)
	if err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, rt)
}

// Package retailer serves the self-service API a signed in retailer uses to
// browse the catalog, place orders and talk to the vendor team.
package retailer

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/jekabolt/wholesale-portal/internal/ratelimit"
)

// Server implements handlers for retailers.
type Server struct {
	repo    dependency.Repository
	mailer  dependency.Mailer
	catalog dependency.Catalog
	limiter *ratelimit.MultiKeyLimiter
}

// New creates a new server with retailer handlers.
func New(
	r dependency.Repository,
	m dependency.Mailer,
	c dependency.Catalog,
	l *ratelimit.MultiKeyLimiter,
) *Server {
	return &Server{
		repo:    r,
		mailer:  m,
		catalog: c,
		limiter: l,
	}
}

// Routes is mounted under /api/retailer behind the retailer role check.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/products", s.ListProducts)
	r.Get("/products/{id}", s.GetProduct)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.ListOrders)
		r.Post("/", s.CreateOrder)
		r.Get("/{uuid}", s.GetOrder)
	})
	r.Get("/dashboard", s.Dashboard)

	r.Get("/account", s.GetAccount)
	r.Put("/account", s.UpdateAccount)

	r.Route("/locations", func(r chi.Router) {
		r.Get("/", s.ListLocations)
		r.Post("/", s.AddLocation)
		r.Put("/{id}", s.UpdateLocation)
		r.Delete("/{id}", s.DeleteLocation)
		r.Post("/{id}/default", s.SetDefaultLocation)
	})

	r.Get("/messages", s.ListMessages)
	r.Post("/messages", s.SendMessage)

	r.Get("/announcements", s.ListAnnouncements)
	r.Get("/resources", s.ListResources)
	r.Post("/sample-requests", s.RequestSamples)
	return r
}

// retailer loads the retailer behind the request token. It writes the error
// response itself and returns nil on failure.
func (s *Server) retailer(w http.ResponseWriter, r *http.Request) *entity.Retailer {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return nil
	}
	rt, err := s.repo.Retailers().GetRetailerById(r.Context(), id)
	if err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return nil
	}
	return rt
}

func limiterKey(retailerID int) string {
	return strconv.Itoa(retailerID)
}

func logMailErr(r *http.Request, msg string, retailerID int, err error) {
	if err == nil {
		return
	}
	slog.Default().ErrorContext(r.Context(), msg,
		slog.Int("retailer_id", retailerID),
		slog.String("err", err.Error()),
	)
}

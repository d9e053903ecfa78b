package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
)

// Server implements handlers for admin.
type Server struct {
	repo     dependency.Repository
	bucket   dependency.FileStore
	mailer   dependency.Mailer
	invoicer dependency.Invoicer
	catalog  dependency.Catalog
}

// New creates a new server with admin handlers. inv may be nil when Stripe
// is not configured.
func New(
	r dependency.Repository,
	b dependency.FileStore,
	m dependency.Mailer,
	inv dependency.Invoicer,
	c dependency.Catalog,
) *Server {
	return &Server{
		repo:     r,
		bucket:   b,
		mailer:   m,
		invoicer: inv,
		catalog:  c,
	}
}

// Routes is mounted under /api/admin behind the admin role check.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.ListProducts)
		r.Post("/", s.AddProduct)
		r.Get("/{id}", s.GetProduct)
		r.Put("/{id}", s.UpdateProduct)
		r.Delete("/{id}", s.DeleteProduct)
		r.Put("/{id}/stock", s.UpdateStock)
		r.Post("/{id}/image", s.UploadProductImage)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.ListOrders)
		r.Post("/", s.CreateOrder)
		r.Get("/export", s.ExportOrders)
		r.Get("/{id}", s.GetOrder)
		r.Put("/{id}/status", s.UpdateOrderStatus)
		r.Put("/{id}/tracking", s.SetTracking)
		r.Post("/{id}/invoice/upload", s.UploadInvoice)
		r.Post("/{id}/invoice/stripe", s.CreateInvoice)
		r.Post("/{id}/invoice/send", s.SendInvoice)
	})

	r.Route("/retailers", func(r chi.Router) {
		r.Get("/", s.ListRetailers)
		r.Get("/{id}", s.GetRetailer)
		r.Put("/{id}", s.UpdateRetailer)
	})

	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", s.ListAnnouncements)
		r.Post("/", s.AddAnnouncement)
		r.Put("/{id}", s.UpdateAnnouncement)
		r.Delete("/{id}", s.DeleteAnnouncement)
	})

	r.Route("/resources", func(r chi.Router) {
		r.Get("/", s.ListResources)
		r.Post("/", s.AddResource)
		r.Put("/{id}", s.UpdateResource)
		r.Delete("/{id}", s.DeleteResource)
	})

	r.Get("/sample-requests", s.ListSampleRequests)
	r.Post("/sample-requests/{id}/handled", s.MarkSampleRequestHandled)

	r.Get("/messages", s.ListLatestMessages)
	r.Get("/messages/{retailerId}", s.GetThread)
	r.Post("/messages/{retailerId}", s.Reply)

	r.Get("/insights", s.Insights)
	return r
}

func (s *Server) refreshCatalog(r *http.Request) {
	if err := s.catalog.Refresh(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't refresh catalog",
			slog.String("err", err.Error()),
		)
	}
}

func logMailErr(r *http.Request, msg string, err error) {
	if err == nil {
		return
	}
	slog.Default().ErrorContext(r.Context(), msg,
		slog.String("path", r.URL.Path),
		slog.String("err", err.Error()),
	)
}

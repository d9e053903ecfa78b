package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jekabolt/wholesale-portal/config"
	httpapi "github.com/jekabolt/wholesale-portal/internal/api/http"
	"github.com/jekabolt/wholesale-portal/internal/apisrv/admin"
	"github.com/jekabolt/wholesale-portal/internal/apisrv/auth"
	"github.com/jekabolt/wholesale-portal/internal/apisrv/retailer"
	"github.com/jekabolt/wholesale-portal/internal/cache"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/digest"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/jekabolt/wholesale-portal/internal/invoice"
	"github.com/jekabolt/wholesale-portal/internal/mail"
	"github.com/jekabolt/wholesale-portal/internal/ratelimit"
	"github.com/jekabolt/wholesale-portal/internal/store"
)

// App is the main application
type App struct {
	hs      *httpapi.Server
	db      dependency.Repository
	mailer  dependency.Mailer
	digest  *digest.Worker
	limiter *ratelimit.MultiKeyLimiter
	c       *config.Config
	done    chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting wholesale portal")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	catalog, err := cache.New(ctx, a.db.Products())
	if err != nil {
		return err
	}

	a.mailer, err = mail.New(&a.c.Mailer, a.db.Mail())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create mailer", slog.String("err", err.Error()))
		return err
	}
	if err = a.mailer.Start(ctx); err != nil {
		return err
	}

	b, err := a.c.Bucket.New()
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create bucket", slog.String("err", err.Error()))
		return err
	}

	inv, err := invoice.New(&a.c.Invoice)
	switch {
	case errors.Is(err, gerr.InvoiceNotConfigured):
		slog.Default().WarnContext(ctx, "stripe is not configured, invoice creation disabled")
		inv = nil
	case err != nil:
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db, a.mailer)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	a.limiter = ratelimit.NewMultiKeyLimiter(&a.c.RateLimit)

	adminS := admin.New(a.db, b, a.mailer, inv, catalog)
	retailerS := retailer.New(a.db, a.mailer, catalog, a.limiter)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	h := a.hs.Handler(authS, adminS, retailerS, a.limiter.LoginsPerMinute())
	if err = a.hs.Start(ctx, h); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	if !a.c.Digest.Disabled {
		a.digest = digest.New(&a.c.Digest, a.db, a.mailer)
		if err = a.digest.Start(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http shutdown", slog.String("err", err.Error()))
		}
	}
	if a.digest != nil {
		_ = a.digest.Stop()
	}
	if a.mailer != nil {
		_ = a.mailer.Stop()
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

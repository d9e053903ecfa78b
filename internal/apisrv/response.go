// Package apisrv holds what the auth, admin and retailer handlers share:
// error responses, request binding and path parameters.
package apisrv

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/auth/jwt"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	AppCode    int64  `json:"code,omitempty"`  // application-specific error code
	ErrorText  string `json:"error,omitempty"` // application-level error message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
	}
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, StatusText: "Resource not found."}

// ErrFrom maps err to a response using the status of the first gerr.Error in
// its chain. Unknown errors become a 500 without details.
func ErrFrom(err error) render.Renderer {
	status := gerr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return ErrInternalServerError(err)
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorText:      err.Error(),
	}
}

// Fail logs err and writes its response.
func Fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := gerr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), msg,
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	} else {
		slog.Default().DebugContext(r.Context(), msg,
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	render.Render(w, r, ErrFrom(err))
}

// Bind decodes the JSON body into v and runs its Bind method. Any failure is
// reported as a bad request.
func Bind(r *http.Request, v render.Binder) error {
	if err := render.Bind(r, v); err != nil {
		if errors.Is(err, gerr.BadRequest) {
			return err
		}
		return fmt.Errorf("%w: %s", gerr.BadRequest, err.Error())
	}
	return nil
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// URLParamInt reads a positive integer path parameter.
func URLParamInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad %s %q", gerr.BadRequest, name, raw)
	}
	return id, nil
}

// QueryInt reads an optional integer query parameter, def when absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad %s %q", gerr.BadRequest, name, raw)
	}
	return n, nil
}

// RetailerID returns the id of the retailer that signed the request.
func RetailerID(r *http.Request) (int, error) {
	c, ok := jwt.ClaimsFrom(r.Context())
	if !ok {
		return 0, gerr.Unauthorized
	}
	id, err := c.RetailerID()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", gerr.Forbidden, err.Error())
	}
	return id, nil
}

// Subject returns the subject of the verified token, empty when absent.
func Subject(r *http.Request) string {
	if c, ok := jwt.ClaimsFrom(r.Context()); ok {
		return c.Subject
	}
	return ""
}

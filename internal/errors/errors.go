package gerr

import (
	"errors"
	"net/http"
)

// Error is a sentinel error that knows which HTTP status it maps to.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func newErr(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

var (
	NotFound          = newErr(http.StatusNotFound, "not found")
	OrderNotFound     = newErr(http.StatusNotFound, "order not found")
	ProductNotFound   = newErr(http.StatusNotFound, "product not found")
	RetailerNotFound  = newErr(http.StatusNotFound, "retailer not found")
	LocationNotFound  = newErr(http.StatusNotFound, "location not found")
	AlreadyExists     = newErr(http.StatusConflict, "already exists")
	InvalidTransition = newErr(http.StatusConflict, "invalid order status transition")
	InsufficientStock = newErr(http.StatusConflict, "insufficient stock")
	ProductInactive   = newErr(http.StatusUnprocessableEntity, "product is not available")
	EmptyOrder        = newErr(http.StatusBadRequest, "order has no items")
	BadRequest        = newErr(http.StatusBadRequest, "bad request")
	Unauthorized      = newErr(http.StatusUnauthorized, "unauthorized")
	Forbidden         = newErr(http.StatusForbidden, "forbidden")
	TooManyRequests   = newErr(http.StatusTooManyRequests, "too many requests")

	BadMailRequest       = newErr(http.StatusBadRequest, "bad mail request")
	MailApiLimitReached  = newErr(http.StatusTooManyRequests, "mail api limit reached")
	InvoiceNotConfigured = newErr(http.StatusServiceUnavailable, "invoicing is not configured")
)

// HTTPStatus returns the status of the first *Error in err's chain, or 500.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Package errhttp maps domain errors to HTTP problems.
// Add a case to Describe for each new domain error.
package errhttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ghuser/itemsdemo/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemsdemo/pkg/validator"
	itemdomain "github.com/ghuser/itemsdemo/services/item/domain"
)

// Internal is the problem reported for unexpected failures and recovered panics.
// It never carries details of the underlying error.
var Internal = httpx.Problem{
	Status:  http.StatusInternalServerError,
	Title:   "Internal server error",
	Message: "Something went wrong on the server",
}

// Describe maps err to a Problem using errors.Is/As, so wrapped errors are
// matched correctly. Unrecognized errors become Internal.
func Describe(err error) httpx.Problem {
	var (
		validationErr *itemdomain.ValidationError
		notFoundErr   *itemdomain.NotFoundError
		maxBytesErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr):
		return httpx.Problem{
			Status:  http.StatusBadRequest,
			Title:   "Validation failed",
			Message: "Invalid item data provided",
			Details: validationErr.Details,
		}
	case errors.As(err, &notFoundErr):
		return httpx.Problem{
			Status:  http.StatusNotFound,
			Title:   "Item not found",
			Message: notFoundErr.Error(),
		}
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return httpx.Problem{
			Status:  http.StatusNotFound,
			Title:   "Item not found",
			Message: "The requested item does not exist",
		}
	case errors.Is(err, pkgvalidator.ErrInvalidJSON):
		return httpx.Problem{
			Status:  http.StatusBadRequest,
			Title:   "Invalid JSON",
			Message: "Request body contains invalid JSON",
		}
	case errors.As(err, &maxBytesErr):
		return httpx.Problem{
			Status:  http.StatusRequestEntityTooLarge,
			Title:   "Payload too large",
			Message: fmt.Sprintf("Request body must not exceed %d bytes", maxBytesErr.Limit),
		}
	case errors.Is(err, itemdomain.ErrInternal):
		return Internal
	default:
		return Internal
	}
}

// WriteError maps err to a Problem, writes it in the responder's style and
// returns it so callers can log by status.
func WriteError(w http.ResponseWriter, rs httpx.Responder, err error) httpx.Problem {
	p := Describe(err)
	rs.Fail(w, p)
	return p
}

// InternalHandler answers every request with the Internal problem. It is the
// fallback for the panic recovery middleware.
func InternalHandler(rs httpx.Responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		rs.Fail(w, Internal)
	})
}

// RouteNotFound answers unmatched routes with 404 and the list of routes the
// server does serve.
func RouteNotFound(rs httpx.Responder, availableRoutes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rs.Fail(w, httpx.Problem{
			Status:          http.StatusNotFound,
			Title:           "Route not found",
			Message:         fmt.Sprintf("The requested route %s %s does not exist", r.Method, r.URL.RequestURI()),
			AvailableRoutes: availableRoutes,
		})
	}
}

package handlers

import (
	"net/http"

	"github.com/ghuser/itemsdemo/pkg/errhttp"
	"github.com/ghuser/itemsdemo/pkg/httpx"
	"github.com/ghuser/itemsdemo/pkg/logger"
	"github.com/ghuser/itemsdemo/pkg/telemetry"
	appsvcs "github.com/ghuser/itemsdemo/services/item/application/services"
)

// Deps are the dependencies shared by every item handler.
type Deps struct {
	Services  *appsvcs.Services
	Responder httpx.Responder
	Logger    logger.Logger
}

// fail writes err as a problem response. Server-side failures are logged and
// reported to Sentry; the client only sees the generic 500 body.
func (d Deps) fail(w http.ResponseWriter, r *http.Request, err error) {
	p := errhttp.WriteError(w, d.Responder, err)
	if p.Status < http.StatusInternalServerError {
		return
	}
	d.Logger.ErrorContext(r.Context(), "item request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	telemetry.CaptureError(r.Context(), err)
}

// ItemRequest is the request body for POST /items and PUT /items/{id}.
// Fields are decoded loosely so that a non-string value fails validation
// like a missing one instead of failing JSON decoding.
type ItemRequest struct {
	Name        any `json:"name"        swaggertype:"string" example:"Laptop"`
	Description any `json:"description" swaggertype:"string" example:"A fast laptop"`
} // @name ItemRequest

// Strings returns the name and description, with non-string values as "".
func (req *ItemRequest) Strings() (name, description string) {
	return stringField(req.Name), stringField(req.Description)
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

// ErrorResponse documents the enveloped failure body.
type ErrorResponse struct {
	Success         bool     `json:"success"                   example:"false"`
	Error           string   `json:"error"                     example:"Item not found"`
	Message         string   `json:"message"                   example:"Item with ID 7 does not exist"`
	Details         []string `json:"details,omitempty"`
	AvailableRoutes []string `json:"availableRoutes,omitempty"`
} // @name ErrorResponse

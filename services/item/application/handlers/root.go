package handlers

import (
	"net/http"

	"github.com/ghuser/itemsdemo/pkg/httpx"
)

// Endpoint describes one public route for the welcome page and 404 bodies.
type Endpoint struct {
	Method  string
	Path    string
	Summary string
}

// String returns "METHOD /path".
func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// WelcomeResponse is the enveloped-style body of GET /.
type WelcomeResponse struct {
	Message     string            `json:"message"     example:"Hello, World!"`
	Description string            `json:"description" example:"Welcome to the Simple REST API"`
	Endpoints   map[string]string `json:"endpoints"`
} // @name WelcomeResponse

// RootHandler handles GET / requests.
type RootHandler struct {
	Deps
	endpoints []Endpoint
}

// NewRootHandler returns a RootHandler that lists endpoints.
func NewRootHandler(d Deps, endpoints []Endpoint) *RootHandler {
	return &RootHandler{Deps: d, endpoints: endpoints}
}

// Execute greets the caller. The enveloped style also lists the endpoints;
// the plain style answers with text only.
//
//	@Summary	Welcome
//	@Tags		meta
//	@Produce	json,plain
//	@Success	200	{object}	WelcomeResponse
//	@Router		/ [get]
func (h *RootHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	if !h.Responder.Enveloped {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello, World!"))
		return
	}

	endpoints := make(map[string]string, len(h.endpoints))
	for _, e := range h.endpoints {
		endpoints[e.String()] = e.Summary
	}
	httpx.JSON(w, http.StatusOK, WelcomeResponse{
		Message:     "Hello, World!",
		Description: "Welcome to the Simple REST API",
		Endpoints:   endpoints,
	})
}

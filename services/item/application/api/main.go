package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsdemo/pkg/app"
	"github.com/ghuser/itemsdemo/pkg/errhttp"
	"github.com/ghuser/itemsdemo/pkg/httpx"
	"github.com/ghuser/itemsdemo/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemsdemo/services/item/application/services"
)

// Endpoints lists the public item routes, in the order they are advertised.
var Endpoints = []handlers.Endpoint{
	{Method: http.MethodGet, Path: "/", Summary: "This endpoint"},
	{Method: http.MethodGet, Path: "/items", Summary: "Get all items"},
	{Method: http.MethodGet, Path: "/items/{id}", Summary: "Get item by ID"},
	{Method: http.MethodPost, Path: "/items", Summary: "Create new item"},
	{Method: http.MethodPut, Path: "/items/{id}", Summary: "Update item by ID"},
	{Method: http.MethodDelete, Path: "/items/{id}", Summary: "Delete item by ID"},
}

// AvailableRoutes returns Endpoints as "METHOD /path" strings.
func AvailableRoutes() []string {
	out := make([]string, 0, len(Endpoints))
	for _, e := range Endpoints {
		out = append(out, e.String())
	}
	return out
}

// Responder returns the response writer selected by RESPONSE_ENVELOPE.
func Responder(a *app.Application) httpx.Responder {
	return httpx.Responder{Enveloped: a.Config != nil && a.Config.ResponseEnvelope}
}

// ItemRoutes registers item endpoints on the provided chi router, and answers
// unknown routes and methods with 404 plus the list of available routes.
// It returns the service container so the caller can health-check the store.
func ItemRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	d := handlers.Deps{Services: svcs, Responder: Responder(a), Logger: a.Logger}

	r.Group(func(r chi.Router) {
		r.Get("/", handlers.NewRootHandler(d, Endpoints).Execute)
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(d).Execute)
			r.Post("/", handlers.NewPostItemHandler(d).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(d).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(d).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(d).Execute)
		})
	})

	notFound := errhttp.RouteNotFound(d.Responder, AvailableRoutes())
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return svcs
}

package handlers

import (
	"net/http"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	Deps
}

// NewListItemsHandler returns a ListItemsHandler backed by the given dependencies.
func NewListItemsHandler(d Deps) *ListItemsHandler {
	return &ListItemsHandler{Deps: d}
}

// Execute lists every item in insertion order.
//
//	@Summary		List items
//	@Description	Returns every item in insertion order
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	ItemListEnvelope
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.Services.Item.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Responder.List(w, items, len(items))
}

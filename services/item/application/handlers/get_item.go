package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	Deps
}

// NewGetItemHandler returns a GetItemHandler backed by the given dependencies.
func NewGetItemHandler(d Deps) *GetItemHandler {
	return &GetItemHandler{Deps: d}
}

// Execute returns one item.
//
//	@Summary		Get item
//	@Description	Returns the item with the given id. Ids that are not integers are reported as not found.
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemEnvelope
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.Services.Item.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Responder.OK(w, http.StatusOK, "", item)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	Deps
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given dependencies.
func NewDeleteItemHandler(d Deps) *DeleteItemHandler {
	return &DeleteItemHandler{Deps: d}
}

// Execute removes an item and returns it.
//
//	@Summary		Delete item
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemEnvelope
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.Services.Item.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Responder.OK(w, http.StatusOK, "Item deleted successfully", item)
}

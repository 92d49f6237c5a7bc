package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	pkgvalidator "github.com/ghuser/itemsdemo/pkg/validator"
)

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	Deps
}

// NewPutItemHandler returns a PutItemHandler backed by the given dependencies.
func NewPutItemHandler(d Deps) *PutItemHandler {
	return &PutItemHandler{Deps: d}
}

// Execute replaces the name and description of an item.
//
//	@Summary		Update item
//	@Description	Replaces name and description. Unknown ids are reported before validation errors.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Item ID"
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		200		{object}	ItemEnvelope
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, err := pkgvalidator.DecodeJSON[ItemRequest](r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	name, description := req.Strings()
	item, err := h.Services.Item.Update(r.Context(), chi.URLParam(r, "id"), name, description)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.Responder.OK(w, http.StatusOK, "Item updated successfully", item)
}

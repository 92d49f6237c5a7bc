package handlers

import (
	"net/http"

	pkgvalidator "github.com/ghuser/itemsdemo/pkg/validator"
)

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	Deps
}

// NewPostItemHandler returns a PostItemHandler backed by the given dependencies.
func NewPostItemHandler(d Deps) *PostItemHandler {
	return &PostItemHandler{Deps: d}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates an item. Name and description are trimmed and must not be blank.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemEnvelope
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, err := pkgvalidator.DecodeJSON[ItemRequest](r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	name, description := req.Strings()
	item, err := h.Services.Item.Create(r.Context(), name, description)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.Responder.OK(w, http.StatusCreated, "Item created successfully", item)
}

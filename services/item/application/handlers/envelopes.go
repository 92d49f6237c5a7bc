package handlers

import "github.com/ghuser/itemsdemo/services/item/domain/models"

// ItemEnvelope documents the enveloped single-item body. With
// RESPONSE_ENVELOPE=false the bare Item is returned instead.
type ItemEnvelope struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Item created successfully"`
	Data    models.Item `json:"data"`
} // @name ItemEnvelope

// ItemListEnvelope documents the enveloped list body. With
// RESPONSE_ENVELOPE=false the bare array is returned instead.
type ItemListEnvelope struct {
	Success bool          `json:"success" example:"true"`
	Count   int           `json:"count"   example:"2"`
	Data    []models.Item `json:"data"`
} // @name ItemListEnvelope

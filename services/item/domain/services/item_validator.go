// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types;
// rule evaluation is delegated to the shared pkg/validator instance.
package services

import (
	pkgvalidator "github.com/ghuser/itemsdemo/pkg/validator"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// Field rule messages, reported in this order.
const (
	MsgNameRequired        = "Name is required and must be a non-empty string"
	MsgDescriptionRequired = "Description is required and must be a non-empty string"
)

type itemRules struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
}

var ruleMessages = map[string]string{
	"name":        MsgNameRequired,
	"description": MsgDescriptionRequired,
}

// ValidateItemFields checks both required-field rules independently and
// returns every violation. An empty result means the fields are valid.
//
// Business rules:
//   - name must be non-empty after trimming
//   - description must be non-empty after trimming
func ValidateItemFields(fields models.ItemFields) []string {
	err := pkgvalidator.Validate(&itemRules{
		Name:        fields.Name,
		Description: fields.Description,
	})
	if err == nil {
		return nil
	}
	return pkgvalidator.Messages(err, ruleMessages)
}

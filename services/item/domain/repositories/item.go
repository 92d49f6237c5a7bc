package repositories

import (
	"context"

	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations return domain.ErrItemNotFound for unknown ids and hand out
// copies, never references to stored state. Fields passed to Insert and Update
// have already been trimmed and validated.
type ItemRepository interface {
	// List returns every item in insertion order.
	List(ctx context.Context) ([]models.Item, error)

	GetByID(ctx context.Context, id models.ItemID) (models.Item, error)

	// Insert assigns the next id and appends the item.
	Insert(ctx context.Context, fields models.ItemFields) (models.Item, error)

	// Update replaces name and description in place; the id never changes.
	Update(ctx context.Context, id models.ItemID, fields models.ItemFields) (models.Item, error)

	// Delete removes the item and returns it. Remaining items keep their order.
	Delete(ctx context.Context, id models.ItemID) (models.Item, error)

	// Exists reports whether an item with the given id is stored.
	Exists(ctx context.Context, id models.ItemID) (bool, error)
}

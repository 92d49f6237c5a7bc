package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	itemdomain "github.com/ghuser/itemsdemo/services/item/domain"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository over an in-process slice.
//
// It exclusively owns the collection and the id counter. Every operation runs
// to completion under mu, so concurrent HTTP requests observe the same
// one-at-a-time semantics as a single-threaded server. Items are copied in and
// out; callers never share memory with the stored slice.
type ItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID models.ItemID
	closed bool
}

// NewItemRepository returns a repository holding a copy of initial, in order.
// The id counter starts after the largest initial id (or at 1 when empty).
func NewItemRepository(initial ...models.Item) *ItemRepository {
	r := &ItemRepository{
		items:  slices.Clone(initial),
		nextID: 1,
	}
	if r.items == nil {
		r.items = []models.Item{}
	}
	for _, it := range r.items {
		if it.ID >= r.nextID {
			r.nextID = it.ID + 1
		}
	}
	return r
}

// List returns all items in insertion order.
func (r *ItemRepository) List(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

// GetByID returns the item with the given id or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id models.ItemID) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Item{}, itemdomain.ErrItemNotFound
	}
	return r.items[i], nil
}

// Insert assigns id = counter, increments the counter and appends the item.
func (r *ItemRepository) Insert(_ context.Context, fields models.ItemFields) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := models.Item{
		ID:          r.nextID,
		Name:        fields.Name,
		Description: fields.Description,
	}
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// Update replaces name and description of the matching item in place.
func (r *ItemRepository) Update(_ context.Context, id models.ItemID, fields models.ItemFields) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Item{}, itemdomain.ErrItemNotFound
	}
	r.items[i].Name = fields.Name
	r.items[i].Description = fields.Description
	return r.items[i], nil
}

// Delete removes exactly one item and returns it. The order of the remaining
// items is preserved.
func (r *ItemRepository) Delete(_ context.Context, id models.ItemID) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Item{}, itemdomain.ErrItemNotFound
	}
	removed := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	return removed, nil
}

// Exists reports whether an item with the given id is stored.
func (r *ItemRepository) Exists(_ context.Context, id models.ItemID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0, nil
}

// Len returns the number of stored items.
func (r *ItemRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Ping reports whether the repository still accepts requests. It satisfies
// httpx.HealthChecker.
func (r *ItemRepository) Ping(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return fmt.Errorf("memory: item repository closed")
	}
	return nil
}

// Close marks the repository as shut down for health reporting. Stored items
// remain readable until the process exits.
func (r *ItemRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// indexOf is a linear scan; callers must hold mu.
func (r *ItemRepository) indexOf(id models.ItemID) int {
	return slices.IndexFunc(r.items, func(it models.Item) bool { return it.ID == id })
}

package services

import (
	"github.com/ghuser/itemsdemo/pkg/app"
	"github.com/ghuser/itemsdemo/pkg/cache"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
	"github.com/ghuser/itemsdemo/services/item/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
	// Store is exposed for health checks and shutdown.
	Store *memory.ItemRepository
}

// New wires all item application services with infrastructure from the Application container.
// The store starts empty unless SEED_ITEMS is set; the cache is used only when Redis is configured.
func New(a *app.Application) *Services {
	var initial []models.Item
	if a.Config != nil && a.Config.SeedItems {
		initial = models.SeedItems()
	}
	store := memory.NewItemRepository(initial...)

	var itemCache *cache.ItemCache
	if a.Redis != nil {
		ttl := cache.DefaultItemCacheTTL
		if a.Config != nil {
			ttl = a.Config.ItemCacheTTL
		}
		itemCache = cache.NewItemCache(a.Redis, ttl)
	}

	return &Services{
		Item:  NewItemService(store, itemCache, a.EventBus, a.Logger),
		Store: store,
	}
}

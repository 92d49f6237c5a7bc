package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// Watermill topics published after each successful item mutation.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// Topics lists every item topic, for subscribers that want all of them.
var Topics = []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}

// CurrentVersion is the schema version stamped on new events.
const CurrentVersion = 1

// ItemEvent is published after an Item is created, updated or deleted.
// The payload is the item as it was stored (created/updated) or removed (deleted).
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated, ...).
type ItemEvent struct {
	EventID     uuid.UUID     `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int           `json:"version"`  // Schema version; increment on breaking changes
	Topic       string        `json:"topic"`
	ItemID      models.ItemID `json:"item_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// NewItemEvent stamps a fresh event for item on topic.
func NewItemEvent(topic string, item models.Item) ItemEvent {
	return ItemEvent{
		EventID:     uuid.New(),
		Version:     CurrentVersion,
		Topic:       topic,
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		OccurredAt:  time.Now().UTC(),
	}
}

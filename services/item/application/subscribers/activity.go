// Package subscribers holds in-process consumers of item events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemsdemo/pkg/app"
	"github.com/ghuser/itemsdemo/pkg/events"
	itemevents "github.com/ghuser/itemsdemo/services/item/domain/events"
)

// RegisterActivityLog subscribes to every item topic and writes one
// structured "item activity" log line per event, giving an audit trail of
// mutations that carries the originating request's trace.
//
// Subscriptions end when ctx is cancelled or the bus is closed.
func RegisterActivityLog(ctx context.Context, a *app.Application) error {
	for _, topic := range itemevents.Topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleActivity(a))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", itemevents.Topics)
	return nil
}

// handleActivity returns a handler for item events.
// Handlers must be idempotent: EventBus retries up to 3× on failure.
func handleActivity(a *app.Application) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemevents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode item event %s: %w", msg.UUID, err)
		}
		if evt.Version > itemevents.CurrentVersion {
			a.Logger.WarnContext(ctx, "item event from a newer schema",
				"event_id", evt.EventID, "version", evt.Version)
		}

		a.Logger.InfoContext(ctx, "item activity",
			"topic", evt.Topic,
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"name", evt.Name,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}

package events_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/itemsdemo/services/item/domain/events"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

func TestNewItemEvent(t *testing.T) {
	item := models.Item{ID: 7, Name: "Pen", Description: "Blue ink"}
	evt := events.NewItemEvent(events.TopicItemUpdated, item)

	if evt.EventID == uuid.Nil {
		t.Error("expected non-nil EventID")
	}
	if evt.Version != events.CurrentVersion {
		t.Errorf("Version: got %d, want %d", evt.Version, events.CurrentVersion)
	}
	if evt.Topic != events.TopicItemUpdated {
		t.Errorf("Topic: got %q", evt.Topic)
	}
	if evt.ItemID != 7 || evt.Name != "Pen" || evt.Description != "Blue ink" {
		t.Errorf("unexpected payload: %+v", evt)
	}
	if evt.OccurredAt.IsZero() || evt.OccurredAt.Location().String() != "UTC" {
		t.Errorf("OccurredAt must be set in UTC, got %v", evt.OccurredAt)
	}

	other := events.NewItemEvent(events.TopicItemUpdated, item)
	if other.EventID == evt.EventID {
		t.Error("expected unique EventIDs per event")
	}
}

func TestItemEvent_JSONFieldNames(t *testing.T) {
	evt := events.NewItemEvent(events.TopicItemCreated, models.Item{ID: 1, Name: "Widget", Description: "d"})

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "topic", "item_id", "name", "description", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if raw["item_id"] != float64(1) {
		t.Errorf("item_id must encode as a number, got %v", raw["item_id"])
	}
}

func TestTopics_Values(t *testing.T) {
	want := map[string]bool{"item.created": true, "item.updated": true, "item.deleted": true}
	if len(events.Topics) != len(want) {
		t.Fatalf("expected %d topics, got %v", len(want), events.Topics)
	}
	for _, topic := range events.Topics {
		if !want[topic] {
			t.Errorf("unexpected topic %q", topic)
		}
	}
}

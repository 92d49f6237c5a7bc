package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	itemdomain "github.com/ghuser/itemsdemo/services/item/domain"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

func fields(name, description string) models.ItemFields {
	return models.ItemFields{Name: name, Description: description}
}

func ids(items []models.Item) []models.ItemID {
	out := make([]models.ItemID, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func equalIDs(a, b []models.ItemID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewItemRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty starts at id 1", func(t *testing.T) {
		r := NewItemRepository()
		item, err := r.Insert(ctx, fields("a", "b"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 1 {
			t.Fatalf("expected id 1, got %d", item.ID)
		}
	})

	t.Run("seeded continues after largest id", func(t *testing.T) {
		r := NewItemRepository(models.SeedItems()...)
		if r.Len() != 3 {
			t.Fatalf("expected 3 items, got %d", r.Len())
		}
		item, _ := r.Insert(ctx, fields("a", "b"))
		if item.ID != 4 {
			t.Fatalf("expected id 4, got %d", item.ID)
		}
	})

	t.Run("initial slice is copied", func(t *testing.T) {
		seed := models.SeedItems()
		r := NewItemRepository(seed...)
		seed[0].Name = "mutated"
		got, _ := r.GetByID(ctx, 1)
		if got.Name != "Laptop" {
			t.Fatalf("store aliased caller slice: %q", got.Name)
		}
	})

	t.Run("list of empty store is non-nil", func(t *testing.T) {
		items, err := NewItemRepository().List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})
}

func TestItemRepository_Scenario(t *testing.T) {
	ctx := context.Background()
	r := NewItemRepository()

	laptop, _ := r.Insert(ctx, fields("Laptop", "A fast laptop"))
	mug, _ := r.Insert(ctx, fields("Mug", "Ceramic"))
	if laptop.ID != 1 || mug.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", laptop.ID, mug.ID)
	}

	deleted, err := r.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != laptop {
		t.Fatalf("delete returned %+v, want %+v", deleted, laptop)
	}

	items, _ := r.List(ctx)
	if !equalIDs(ids(items), []models.ItemID{2}) {
		t.Fatalf("expected [2], got %v", ids(items))
	}

	pen, _ := r.Insert(ctx, fields("Pen", "Blue ink"))
	if pen.ID != 3 {
		t.Fatalf("expected id 3 (ids are never reused), got %d", pen.ID)
	}
}

func TestItemRepository_DeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	r := NewItemRepository()
	for _, n := range []string{"a", "b", "c", "d"} {
		_, _ = r.Insert(ctx, fields(n, n))
	}

	if _, err := r.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, _ := r.List(ctx)
	if !equalIDs(ids(items), []models.ItemID{1, 3, 4}) {
		t.Fatalf("expected [1 3 4], got %v", ids(items))
	}

	_, err := r.Delete(ctx, 2)
	if !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("second delete: expected ErrItemNotFound, got %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("failed delete must not change the collection, len=%d", r.Len())
	}
}

func TestItemRepository_Update(t *testing.T) {
	ctx := context.Background()
	r := NewItemRepository()
	_, _ = r.Insert(ctx, fields("a", "a"))
	_, _ = r.Insert(ctx, fields("b", "b"))

	t.Run("replaces fields in place", func(t *testing.T) {
		updated, err := r.Update(ctx, 1, fields("A", "AA"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != 1 || updated.Name != "A" || updated.Description != "AA" {
			t.Fatalf("unexpected item: %+v", updated)
		}
		items, _ := r.List(ctx)
		if !equalIDs(ids(items), []models.ItemID{1, 2}) {
			t.Fatalf("update must not reorder, got %v", ids(items))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		before, _ := r.List(ctx)
		_, err := r.Update(ctx, 99, fields("X", "Y"))
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
		after, _ := r.List(ctx)
		if len(before) != len(after) || before[0] != after[0] || before[1] != after[1] {
			t.Fatalf("failed update mutated the collection: %v -> %v", before, after)
		}
	})
}

func TestItemRepository_CopyOut(t *testing.T) {
	ctx := context.Background()
	r := NewItemRepository()
	_, _ = r.Insert(ctx, fields("a", "a"))

	items, _ := r.List(ctx)
	items[0].Name = "mutated"

	got, _ := r.GetByID(ctx, 1)
	if got.Name != "a" {
		t.Fatalf("List leaked a reference to stored state: %q", got.Name)
	}
}

func TestItemRepository_GetAndExists(t *testing.T) {
	ctx := context.Background()
	r := NewItemRepository(models.SeedItems()...)

	got, err := r.GetByID(ctx, 2)
	if err != nil || got.Name != "Coffee Mug" {
		t.Fatalf("GetByID(2) = %+v, %v", got, err)
	}
	if _, err := r.GetByID(ctx, 42); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	if ok, _ := r.Exists(ctx, 3); !ok {
		t.Fatal("expected item 3 to exist")
	}
	if ok, _ := r.Exists(ctx, 0); ok {
		t.Fatal("expected item 0 to be absent")
	}
}

func TestItemRepository_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	r := NewItemRepository()

	const n = 50
	var wg sync.WaitGroup
	got := make(chan models.ItemID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, _ := r.Insert(ctx, fields("x", "y"))
			got <- item.ID
		}()
	}
	wg.Wait()
	close(got)

	seen := make(map[models.ItemID]bool, n)
	for id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n || r.Len() != n {
		t.Fatalf("expected %d unique ids, got %d (len %d)", n, len(seen), r.Len())
	}
}

func TestItemRepository_PingAfterClose(t *testing.T) {
	r := NewItemRepository()
	if err := r.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
	_ = r.Close()
	if err := r.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error after Close")
	}
}

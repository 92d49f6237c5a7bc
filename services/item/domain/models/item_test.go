package models

import "testing"

func TestParseItemID(t *testing.T) {
	tests := []struct {
		input  string
		want   ItemID
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"-3", -3, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{" 7", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseItemID(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ParseItemID(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestItemID_String(t *testing.T) {
	if ItemID(17).String() != "17" {
		t.Fatalf("expected %q, got %q", "17", ItemID(17).String())
	}
}

func TestItemFields_Trimmed(t *testing.T) {
	f := ItemFields{Name: "  Laptop\t", Description: "\n A fast laptop "}.Trimmed()
	if f.Name != "Laptop" {
		t.Fatalf("expected %q, got %q", "Laptop", f.Name)
	}
	if f.Description != "A fast laptop" {
		t.Fatalf("expected %q, got %q", "A fast laptop", f.Description)
	}
}

func TestItem_Fields(t *testing.T) {
	item := Item{ID: 3, Name: "Pen", Description: "Blue ink"}
	if got := item.Fields(); got != (ItemFields{Name: "Pen", Description: "Blue ink"}) {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestSeedItems(t *testing.T) {
	seed := SeedItems()
	if len(seed) != 3 {
		t.Fatalf("expected 3 seed items, got %d", len(seed))
	}
	for i, item := range seed {
		if item.ID != ItemID(i+1) {
			t.Errorf("seed %d: expected id %d, got %d", i, i+1, item.ID)
		}
		if item.Fields() != item.Fields().Trimmed() {
			t.Errorf("seed %d: values must be stored trimmed", i)
		}
	}

	seed[0].Name = "mutated"
	if SeedItems()[0].Name != "Laptop" {
		t.Fatal("SeedItems must return a fresh slice on every call")
	}
}

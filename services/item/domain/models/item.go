package models

import (
	"strconv"
	"strings"
)

// ItemID is the store-assigned identifier of an Item. Ids start at 1, only
// grow, and are never reused.
type ItemID int64

// ParseItemID parses s as a base-10 integer id. ok is false for any text that
// is not exactly an integer ("", "1.5", "12abc", " 3"), which callers treat
// the same as an unknown id.
func ParseItemID(s string) (id ItemID, ok bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return ItemID(n), true
}

// String returns the decimal form of the id.
func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Item is the core aggregate for this bounded context.
// Values are copied in and out of the store; holding an Item never aliases stored state.
type Item struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemFields are the client-editable fields of an Item.
type ItemFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Trimmed returns a copy with leading and trailing whitespace removed.
// Stored items always hold trimmed values.
func (f ItemFields) Trimmed() ItemFields {
	return ItemFields{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
	}
}

// Fields returns the editable fields of the item.
func (i Item) Fields() ItemFields {
	return ItemFields{Name: i.Name, Description: i.Description}
}

// SeedItems returns the demo catalogue loaded when SEED_ITEMS is enabled.
func SeedItems() []Item {
	return []Item{
		{ID: 1, Name: "Laptop", Description: "High-performance laptop for work and gaming"},
		{ID: 2, Name: "Coffee Mug", Description: "Ceramic coffee mug with funny quotes"},
		{ID: 3, Name: "Notebook", Description: "Spiral-bound notebook for taking notes"},
	}
}

// Package catalog holds the static restaurant menu. The menu ships with the
// binary (embedded JSON) and is validated once at startup; it is read-only
// thereafter.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
)

//go:embed menu.json
var menuJSON []byte

type Catalog struct {
	items []domain.MenuItem
	byID  map[string]domain.MenuItem
}

// Load decodes and validates the embedded menu.
func Load() (*Catalog, error) {
	var items []domain.MenuItem
	if err := json.Unmarshal(menuJSON, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu data: %w", err)
	}

	return New(items)
}

// New builds a catalog from already-decoded items, rejecting duplicate ids,
// unknown categories and negative prices.
func New(items []domain.MenuItem) (*Catalog, error) {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("menu item %q has no id", item.Name)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		if !domain.ValidCategory(item.Category) {
			return nil, fmt.Errorf("menu item %q has unknown category %q", item.ID, item.Category)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("menu item %q has negative price", item.ID)
		}
		byID[item.ID] = item
	}

	return &Catalog{items: items, byID: byID}, nil
}

// Items returns the full menu in definition order.
func (c *Catalog) Items() []domain.MenuItem {
	return c.items
}

// ItemsByCategory filters the menu to one category, preserving order.
func (c *Catalog) ItemsByCategory(category domain.Category) []domain.MenuItem {
	var items []domain.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// Lookup finds a menu item by id.
func (c *Catalog) Lookup(id string) (domain.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}

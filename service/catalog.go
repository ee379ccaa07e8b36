package service

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"coinbot/models"
)

// Catalog is the fixed list of purchasable items. It is built once at
// startup and never changes at runtime.
type Catalog struct {
	items []models.Item
	byID  map[int]models.Item
}

// NewCatalog builds a catalog from a list of items, validating that ids are
// unique positive integers and prices are positive.
func NewCatalog(items []models.Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one item")
	}

	byID := make(map[int]models.Item, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("item %q has non-positive id %d", item.Name, item.ID)
		}
		if item.Price <= 0 {
			return nil, fmt.Errorf("item %q has non-positive price %d", item.Name, item.Price)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate item id %d", item.ID)
		}
		byID[item.ID] = item
	}

	return &Catalog{items: items, byID: byID}, nil
}

// DefaultCatalog returns the built-in item set used when no catalog file is
// configured.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]models.Item{
		{ID: 1, Name: "Fishing Rod", Price: 50, Description: "Catch coins instead of fish."},
		{ID: 2, Name: "Lucky Charm", Price: 150, Description: "It hasn't worked yet, but it might."},
		{ID: 3, Name: "Golden Trophy", Price: 500, Description: "For flexing on the leaderboard."},
		{ID: 4, Name: "Crown", Price: 2500, Description: "Rule the server in style."},
	})
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return catalog
}

// catalogFile is the on-disk TOML layout for a catalog override.
type catalogFile struct {
	Items []models.Item `toml:"items"`
}

// LoadCatalogFile reads a catalog from a TOML file of [[items]] entries.
func LoadCatalogFile(path string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	catalog, err := NewCatalog(file.Items)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return catalog, nil
}

// Items returns all catalog entries in definition order.
func (c *Catalog) Items() []models.Item {
	return c.items
}

// ItemByID looks up an item by id.
func (c *Catalog) ItemByID(id int) (models.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

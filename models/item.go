package models

// Item is a purchasable catalog entry. Items are immutable: the catalog is
// fixed at startup and never changes at runtime.
type Item struct {
	ID          int    `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Price       int64  `json:"price" toml:"price"`
	Description string `json:"description" toml:"description"`
}

// Package repository provides the persistence backends for account state.
//
// Three backends exist: an in-memory map (the default; nothing survives a
// restart), a single-file JSON snapshot rewritten on every mutation, and an
// embedded bolt database for callers that want per-record writes instead of
// whole-file rewrites.
package repository

import (
	"context"
	"errors"

	"coinbot/models"
)

// ErrNotFound is returned when a requested account does not exist.
var ErrNotFound = errors.New("account not found")

// AccountStore is the persistence interface the ledger writes through.
// Implementations own durability only; all invariant enforcement lives in
// the ledger service, which serializes calls into the store.
type AccountStore interface {
	// Get returns the account for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (*models.Account, error)

	// Put inserts or replaces an account and persists it.
	Put(ctx context.Context, account *models.Account) error

	// List returns all accounts in unspecified order.
	List(ctx context.Context) ([]*models.Account, error)

	// Close releases any underlying resources.
	Close() error
}

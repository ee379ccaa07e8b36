package service

import (
	"context"
	"time"

	"coinbot/models"
)

// LedgerService owns all account state and balance-mutating operations.
// Every mutation appends a transaction record and is serialized behind a
// single lock, so composite operations (transfer, purchase, claim) are
// atomic with respect to each other.
type LedgerService interface {
	// GetOrCreateAccount returns the account for userID, lazily creating it
	// with the configured starting balance on first reference.
	GetOrCreateAccount(ctx context.Context, userID, username string) (*models.Account, error)

	// Credit adds amount to the account and returns the new balance.
	// Returns ErrInvalidAmount when amount <= 0.
	Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error)

	// Debit removes amount from the account and returns the new balance.
	// Returns ErrInvalidAmount when amount <= 0 and ErrInsufficientBalance
	// (without mutating) when the balance is too low.
	Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error)

	// Transfer moves amount between two accounts. The recipient is never
	// credited unless the sender's debit succeeded.
	Transfer(ctx context.Context, fromID, toID string, amount int64) (*models.TransferResult, error)

	// Purchase debits the item's price and appends it to the inventory.
	// Returns ErrItemNotFound for unknown item ids and
	// ErrInsufficientBalance when the buyer cannot afford it.
	Purchase(ctx context.Context, userID string, itemID int) (*PurchaseResult, error)

	// Claim grants a timed reward (daily/work) if its cooldown has elapsed.
	// Returns a *CooldownError (wrapping ErrCooldownActive) when the claim
	// is not yet eligible.
	Claim(ctx context.Context, userID, username string, kind models.RewardKind) (*ClaimResult, error)

	// Leaderboard returns up to limit accounts ordered by balance
	// descending, ties broken by ascending user id.
	Leaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// PurchaseResult holds the outcome of a successful purchase
type PurchaseResult struct {
	Item           models.Item
	NewBalance     int64
	InventoryCount int
}

// ClaimResult holds the outcome of a successful reward claim
type ClaimResult struct {
	Kind       models.RewardKind
	Amount     int64
	NewBalance int64
}

// RewardConfig defines one timed reward: how often it can be claimed and
// the inclusive range the payout is rolled from.
type RewardConfig struct {
	Cooldown time.Duration
	Min      int64
	Max      int64
}

// Authorizer decides whether a user may run privileged commands.
type Authorizer interface {
	IsAdmin(userID string) bool
}

// singleAdminAuthorizer authorizes exactly one configured user id.
type singleAdminAuthorizer struct {
	adminID string
}

// NewSingleAdminAuthorizer creates an Authorizer backed by a single admin
// user id. An empty id authorizes nobody.
func NewSingleAdminAuthorizer(adminID string) Authorizer {
	return &singleAdminAuthorizer{adminID: adminID}
}

func (a *singleAdminAuthorizer) IsAdmin(userID string) bool {
	return a.adminID != "" && userID == a.adminID
}

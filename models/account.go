package models

import (
	"time"
)

// RewardKind identifies a timed reward with its own cooldown.
type RewardKind string

const (
	RewardDaily RewardKind = "daily"
	RewardWork  RewardKind = "work"
)

// TransactionKind represents the direction of a balance change
type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// Transaction represents a single balance change on an account
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Kind      TransactionKind `json:"kind"`
	Amount    int64           `json:"amount"`
	Reason    string          `json:"reason"`
	Timestamp time.Time       `json:"timestamp"`
}

// OwnedItem is an inventory entry. Duplicates are allowed; each purchase
// appends a new entry.
type OwnedItem struct {
	ItemID     int       `json:"item_id"`
	Name       string    `json:"name"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Account represents a single user's ledger record. The UserID is the
// Discord user ID, externally supplied and never generated internally.
type Account struct {
	UserID       string                    `json:"user_id"`
	Username     string                    `json:"username"`
	Balance      int64                     `json:"balance"`
	Inventory    []OwnedItem               `json:"inventory"`
	Cooldowns    map[RewardKind]time.Time  `json:"cooldowns"`
	Transactions []Transaction             `json:"transactions"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// LastClaim returns the last claim time for a reward kind and whether one
// has been recorded.
func (a *Account) LastClaim(kind RewardKind) (time.Time, bool) {
	if a.Cooldowns == nil {
		return time.Time{}, false
	}
	t, ok := a.Cooldowns[kind]
	return t, ok
}

// LeaderboardEntry is one row of the balance leaderboard
type LeaderboardEntry struct {
	Rank     int
	UserID   string
	Username string
	Balance  int64
}

// TransferResult holds the outcome of a successful transfer
type TransferResult struct {
	Amount            int64
	RecipientID       string
	RecipientUsername string
	NewBalance        int64
}

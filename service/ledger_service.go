package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"coinbot/events"
	"coinbot/models"
	"coinbot/repository"
)

// LedgerConfig holds the economy parameters the ledger is constructed with.
type LedgerConfig struct {
	StartingBalance int64
	Rewards         map[models.RewardKind]RewardConfig
}

// ledgerService implements the LedgerService interface. A single mutex
// serializes all operations: discordgo dispatches handlers on separate
// goroutines, so the mutual exclusion the event-loop model gave the original
// design has to be re-established explicitly here.
type ledgerService struct {
	mu       sync.Mutex
	store    repository.AccountStore
	catalog  *Catalog
	eventBus *events.Bus
	config   LedgerConfig

	rng *rand.Rand
	now func() time.Time

	// Global append-only audit log of every credit and debit. Never read by
	// any command.
	// TODO: cap this (and per-account histories) with a ring buffer; both
	// grow without bound on a long-lived process.
	auditLog []models.Transaction
}

// NewLedgerService creates a new ledger service backed by the given store.
func NewLedgerService(store repository.AccountStore, catalog *Catalog, eventBus *events.Bus, config LedgerConfig) LedgerService {
	return &ledgerService{
		store:    store,
		catalog:  catalog,
		eventBus: eventBus,
		config:   config,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// GetOrCreateAccount retrieves an existing account or creates a new one with
// the starting balance
func (s *ledgerService) GetOrCreateAccount(ctx context.Context, userID, username string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(ctx, userID, username)
}

func (s *ledgerService) getOrCreateLocked(ctx context.Context, userID, username string) (*models.Account, error) {
	account, err := s.store.Get(ctx, userID)
	if err == nil {
		// Keep the display name current across renames.
		if username != "" && account.Username != username {
			account.Username = username
			if err := s.store.Put(ctx, account); err != nil {
				return nil, fmt.Errorf("failed to update username for %s: %w", userID, err)
			}
		}
		return account, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account %s: %w", userID, err)
	}

	now := s.now()
	account = &models.Account{
		UserID:    userID,
		Username:  username,
		Balance:   s.config.StartingBalance,
		Cooldowns: make(map[models.RewardKind]time.Time),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account %s: %w", userID, err)
	}

	log.WithFields(log.Fields{
		"userID":   userID,
		"username": username,
		"balance":  account.Balance,
	}).Info("Created new account")

	s.eventBus.Emit(ctx, events.AccountCreatedEvent{
		UserID:          userID,
		Username:        username,
		StartingBalance: account.Balance,
	})

	return account, nil
}

// appendTransaction records a balance change on the account and the global
// audit log. Callers must hold the lock.
func (s *ledgerService) appendTransaction(account *models.Account, kind models.TransactionKind, amount int64, reason string) {
	tx := models.Transaction{
		ID:        uuid.NewString(),
		UserID:    account.UserID,
		Kind:      kind,
		Amount:    amount,
		Reason:    reason,
		Timestamp: s.now(),
	}
	account.Transactions = append(account.Transactions, tx)
	s.auditLog = append(s.auditLog, tx)
}

// creditLocked applies a validated credit. Callers must hold the lock and
// must have validated amount > 0.
func (s *ledgerService) creditLocked(ctx context.Context, account *models.Account, amount int64, reason string) error {
	oldBalance := account.Balance
	account.Balance += amount
	account.UpdatedAt = s.now()
	s.appendTransaction(account, models.TransactionCredit, amount, reason)

	if err := s.store.Put(ctx, account); err != nil {
		return fmt.Errorf("failed to persist credit for %s: %w", account.UserID, err)
	}

	s.eventBus.Emit(ctx, events.BalanceChangeEvent{
		UserID:          account.UserID,
		OldBalance:      oldBalance,
		NewBalance:      account.Balance,
		TransactionKind: models.TransactionCredit,
		Reason:          reason,
		ChangeAmount:    amount,
	})
	return nil
}

// debitLocked applies a debit, enforcing the non-negative balance invariant.
// Callers must hold the lock and must have validated amount > 0.
func (s *ledgerService) debitLocked(ctx context.Context, account *models.Account, amount int64, reason string) error {
	if account.Balance < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, account.Balance, amount)
	}

	oldBalance := account.Balance
	account.Balance -= amount
	account.UpdatedAt = s.now()
	s.appendTransaction(account, models.TransactionDebit, amount, reason)

	if err := s.store.Put(ctx, account); err != nil {
		return fmt.Errorf("failed to persist debit for %s: %w", account.UserID, err)
	}

	s.eventBus.Emit(ctx, events.BalanceChangeEvent{
		UserID:          account.UserID,
		OldBalance:      oldBalance,
		NewBalance:      account.Balance,
		TransactionKind: models.TransactionDebit,
		Reason:          reason,
		ChangeAmount:    -amount,
	})
	return nil
}

// Credit adds amount to the user's balance
func (s *ledgerService) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getOrCreateLocked(ctx, userID, "")
	if err != nil {
		return 0, err
	}
	if err := s.creditLocked(ctx, account, amount, reason); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Debit removes amount from the user's balance
func (s *ledgerService) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getOrCreateLocked(ctx, userID, "")
	if err != nil {
		return 0, err
	}
	if err := s.debitLocked(ctx, account, amount, reason); err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Transfer moves amount from one account to another under a single lock
// acquisition, so the pair of mutations is atomic with respect to every
// other ledger operation.
func (s *ledgerService) Transfer(ctx context.Context, fromID, toID string, amount int64) (*models.TransferResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if fromID == toID {
		return nil, ErrSelfTransfer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fromAccount, err := s.getOrCreateLocked(ctx, fromID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get sender account: %w", err)
	}
	toAccount, err := s.getOrCreateLocked(ctx, toID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient account: %w", err)
	}

	// Debit first; the recipient is never credited unless it succeeded.
	if err := s.debitLocked(ctx, fromAccount, amount, fmt.Sprintf("transfer to %s", toID)); err != nil {
		return nil, err
	}
	if err := s.creditLocked(ctx, toAccount, amount, fmt.Sprintf("transfer from %s", fromID)); err != nil {
		return nil, fmt.Errorf("failed to credit recipient: %w", err)
	}

	return &models.TransferResult{
		Amount:            amount,
		RecipientID:       toID,
		RecipientUsername: toAccount.Username,
		NewBalance:        fromAccount.Balance,
	}, nil
}

// Purchase debits the item's price and appends it to the buyer's inventory
func (s *ledgerService) Purchase(ctx context.Context, userID string, itemID int) (*PurchaseResult, error) {
	item, ok := s.catalog.ItemByID(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getOrCreateLocked(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	if err := s.debitLocked(ctx, account, item.Price, fmt.Sprintf("purchase: %s", item.Name)); err != nil {
		return nil, err
	}

	account.Inventory = append(account.Inventory, models.OwnedItem{
		ItemID:     item.ID,
		Name:       item.Name,
		AcquiredAt: s.now(),
	})
	if err := s.store.Put(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to persist purchase for %s: %w", userID, err)
	}

	s.eventBus.Emit(ctx, events.PurchaseEvent{
		UserID: userID,
		ItemID: item.ID,
		Price:  item.Price,
	})

	return &PurchaseResult{
		Item:           item,
		NewBalance:     account.Balance,
		InventoryCount: len(account.Inventory),
	}, nil
}

// Claim grants a timed reward if its cooldown has elapsed
func (s *ledgerService) Claim(ctx context.Context, userID, username string, kind models.RewardKind) (*ClaimResult, error) {
	rewardCfg, ok := s.config.Rewards[kind]
	if !ok {
		return nil, fmt.Errorf("unknown reward kind %q", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getOrCreateLocked(ctx, userID, username)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !CanClaim(account, kind, rewardCfg.Cooldown, now) {
		last, _ := account.LastClaim(kind)
		return nil, &CooldownError{
			Kind:      kind,
			Remaining: rewardCfg.Cooldown - now.Sub(last),
		}
	}

	if account.Cooldowns == nil {
		account.Cooldowns = make(map[models.RewardKind]time.Time)
	}
	account.Cooldowns[kind] = now

	amount := RollReward(s.rng, rewardCfg)
	if err := s.creditLocked(ctx, account, amount, fmt.Sprintf("%s reward", kind)); err != nil {
		return nil, err
	}

	s.eventBus.Emit(ctx, events.RewardClaimedEvent{
		UserID: userID,
		Kind:   kind,
		Amount: amount,
	})

	return &ClaimResult{
		Kind:       kind,
		Amount:     amount,
		NewBalance: account.Balance,
	}, nil
}

// Leaderboard returns the top accounts by balance
func (s *ledgerService) Leaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(accounts))
	for _, account := range accounts {
		entries = append(entries, &models.LeaderboardEntry{
			UserID:   account.UserID,
			Username: account.Username,
			Balance:  account.Balance,
		})
	}

	// Balance descending, ties broken by ascending user id so the ordering
	// is deterministic.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

package repository

import (
	"context"
	"sync"

	"coinbot/models"
)

// memoryStore keeps all accounts in a process-wide map. This is the default
// backend: balances reset on restart.
type memoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewMemoryStore creates an empty in-memory account store.
func NewMemoryStore() AccountStore {
	return &memoryStore{
		accounts: make(map[string]*models.Account),
	}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *memoryStore) Put(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.UserID] = account
	return nil
}

func (s *memoryStore) List(ctx context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (s *memoryStore) Close() error {
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"coinbot/models"
)

// fileStore persists the full account map as a single JSON document. The
// whole file is rewritten on every mutation, via a temp file and rename so a
// crash mid-write never leaves a corrupt snapshot behind.
type fileStore struct {
	mu       sync.RWMutex
	path     string
	accounts map[string]*models.Account
}

// NewFileStore opens (or creates) a JSON snapshot store at the given path
// and loads any existing accounts into memory.
func NewFileStore(path string) (AccountStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &fileStore{
		path:     path,
		accounts: make(map[string]*models.Account),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.accounts); err != nil {
		return fmt.Errorf("failed to parse snapshot %s: %w", s.path, err)
	}
	return nil
}

// flush writes the snapshot to a sibling temp file and renames it into
// place. Callers must hold the write lock.
func (s *fileStore) flush() error {
	data, err := json.MarshalIndent(s.accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

func (s *fileStore) Get(ctx context.Context, userID string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *fileStore) Put(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.UserID] = account
	return s.flush()
}

func (s *fileStore) List(ctx context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (s *fileStore) Close() error {
	return nil
}

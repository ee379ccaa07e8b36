package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"coinbot/models"
)

const accountsBucket = "accounts"

// boltStore persists accounts in an embedded bolt database, one JSON-encoded
// record per user. Unlike the snapshot store it only rewrites the mutated
// account, not the whole data set.
type boltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) a bolt database at the given path and
// ensures the accounts bucket exists.
func NewBoltStore(path string) (AccountStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(accountsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create accounts bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Get(ctx context.Context, userID string) (*models.Account, error) {
	var account *models.Account

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(accountsBucket)).Get([]byte(userID))
		if data == nil {
			return ErrNotFound
		}
		account = &models.Account{}
		return json.Unmarshal(data, account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *boltStore) Put(ctx context.Context, account *models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode account %s: %w", account.UserID, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(accountsBucket)).Put([]byte(account.UserID), data)
	})
}

func (s *boltStore) List(ctx context.Context) ([]*models.Account, error) {
	var accounts []*models.Account

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(accountsBucket)).ForEach(func(k, v []byte) error {
			account := &models.Account{}
			if err := json.Unmarshal(v, account); err != nil {
				return err
			}
			accounts = append(accounts, account)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

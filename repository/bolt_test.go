package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStore_PutGetList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accounts.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, testAccount("1", 100)))
	require.NoError(t, store.Put(ctx, testAccount("2", 250)))

	account, err := store.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(250), account.Balance)

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestBoltStore_UpdateReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accounts.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(ctx, testAccount("1", 100)))

	updated := testAccount("1", 75)
	require.NoError(t, store.Put(ctx, updated))

	account, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(75), account.Balance)

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accounts.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, testAccount("1", 425)))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	account, err := reopened.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(425), account.Balance)
	require.Len(t, account.Inventory, 1)
}

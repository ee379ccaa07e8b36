package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, testAccount("1", 100)))

	account, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

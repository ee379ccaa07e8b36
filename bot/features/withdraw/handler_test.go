package withdraw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinbot/events"
	"coinbot/repository"
	"coinbot/service"
)

func newTestFeature(t *testing.T) *Feature {
	t.Helper()

	ledger := service.NewLedgerService(repository.NewMemoryStore(), service.DefaultCatalog(),
		events.NewBus(), service.LedgerConfig{StartingBalance: 100})
	return New(ledger)
}

func TestWithdrawMessage_Success(t *testing.T) {
	ctx := context.Background()
	f := newTestFeature(t)

	message, err := f.withdrawMessage(ctx, "100", "alice", 40)
	require.NoError(t, err)
	assert.Contains(t, message, "40")
	assert.Contains(t, message, "60")

	account, err := f.ledger.GetOrCreateAccount(ctx, "100", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(60), account.Balance)
}

func TestWithdrawMessage_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	f := newTestFeature(t)

	_, err := f.withdrawMessage(ctx, "100", "alice", 500)
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	// The failed withdrawal must not have touched the balance
	account, err := f.ledger.GetOrCreateAccount(ctx, "100", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)
}

func TestWithdrawMessage_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	f := newTestFeature(t)

	_, err := f.withdrawMessage(ctx, "100", "alice", 0)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)

	_, err = f.withdrawMessage(ctx, "100", "alice", -5)
	assert.ErrorIs(t, err, service.ErrInvalidAmount)
}

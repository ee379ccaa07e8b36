package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinbot/models"
)

func TestBus_EmitReachesSubscriber(t *testing.T) {
	bus := NewBus()

	received := make(chan Event, 1)
	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Emit(context.Background(), BalanceChangeEvent{
		UserID:          "user-1",
		OldBalance:      100,
		NewBalance:      150,
		TransactionKind: models.TransactionCredit,
		Reason:          "daily reward",
		ChangeAmount:    50,
	})

	select {
	case event := <-received:
		change, ok := event.(BalanceChangeEvent)
		require.True(t, ok)
		assert.Equal(t, "user-1", change.UserID)
		assert.Equal(t, int64(150), change.NewBalance)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var calls []EventType
	record := func(ctx context.Context, event Event) {
		mu.Lock()
		calls = append(calls, event.Type())
		mu.Unlock()
	}
	done := make(chan struct{}, 1)
	bus.Subscribe(EventTypePurchase, func(ctx context.Context, event Event) {
		record(ctx, event)
		done <- struct{}{}
	})
	bus.Subscribe(EventTypeRewardClaimed, record)

	bus.Emit(context.Background(), PurchaseEvent{UserID: "user-1", ItemID: 1, Price: 50})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purchase handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{EventTypePurchase}, calls)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		bus.Subscribe(EventTypeAccountCreated, func(ctx context.Context, event Event) {
			wg.Done()
		})
	}

	bus.Emit(context.Background(), AccountCreatedEvent{UserID: "user-1", Username: "alice", StartingBalance: 100})

	waited := make(chan struct{})
	go func() {
		wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("not all handlers were invoked")
	}
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(EventTypeRewardClaimed, func(ctx context.Context, event Event) {
		panic("boom")
	})
	done := make(chan struct{})
	bus.Subscribe(EventTypeRewardClaimed, func(ctx context.Context, event Event) {
		close(done)
	})

	bus.Emit(context.Background(), RewardClaimedEvent{UserID: "user-1", Kind: models.RewardDaily, Amount: 75})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler was not invoked")
	}
}

func TestBus_EmitWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), PurchaseEvent{UserID: "user-1", ItemID: 2, Price: 150})
	})
}

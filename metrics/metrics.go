// Package metrics exposes Prometheus collectors for the bot's activity.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"coinbot/events"
)

var (
	// CommandsTotal counts dispatched commands by name and transport
	// ("text" or "slash").
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coinbot_commands_total",
		Help: "Number of chat commands dispatched, by command and transport.",
	}, []string{"command", "transport"})

	// HandlerPanics counts panics recovered at the command router boundary.
	HandlerPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coinbot_handler_panics_total",
		Help: "Number of command handler panics recovered.",
	})

	// BalanceChangesTotal counts ledger mutations by transaction kind.
	BalanceChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coinbot_balance_changes_total",
		Help: "Number of balance mutations applied, by kind.",
	}, []string{"kind"})

	// AccountsCreated counts lazily created accounts.
	AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coinbot_accounts_created_total",
		Help: "Number of accounts created.",
	})

	// PurchasesTotal counts completed shop purchases.
	PurchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coinbot_purchases_total",
		Help: "Number of completed shop purchases.",
	})

	// RewardsClaimed counts successful reward claims by kind.
	RewardsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coinbot_rewards_claimed_total",
		Help: "Number of successful reward claims, by reward kind.",
	}, []string{"kind"})
)

// Observe subscribes the collectors to ledger events on the bus.
func Observe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BalanceChangeEvent); ok {
			BalanceChangesTotal.WithLabelValues(string(e.TransactionKind)).Inc()
		}
	})
	bus.Subscribe(events.EventTypeAccountCreated, func(ctx context.Context, event events.Event) {
		AccountsCreated.Inc()
	})
	bus.Subscribe(events.EventTypePurchase, func(ctx context.Context, event events.Event) {
		PurchasesTotal.Inc()
	})
	bus.Subscribe(events.EventTypeRewardClaimed, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.RewardClaimedEvent); ok {
			RewardsClaimed.WithLabelValues(string(e.Kind)).Inc()
		}
	})
}

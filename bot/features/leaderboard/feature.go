package leaderboard

import (
	"coinbot/service"
)

// Default number of entries shown.
const defaultLimit = 10

// Feature handles the leaderboard command
type Feature struct {
	ledger service.LedgerService
}

// New creates the leaderboard feature
func New(ledger service.LedgerService) *Feature {
	return &Feature{
		ledger: ledger,
	}
}

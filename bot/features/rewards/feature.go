package rewards

import (
	"coinbot/service"
)

// Feature handles the daily and work reward commands
type Feature struct {
	ledger service.LedgerService
}

// New creates the rewards feature
func New(ledger service.LedgerService) *Feature {
	return &Feature{
		ledger: ledger,
	}
}

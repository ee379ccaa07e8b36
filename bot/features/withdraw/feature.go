package withdraw

import (
	"coinbot/service"
)

// Feature handles the withdraw command
type Feature struct {
	ledger service.LedgerService
}

// New creates the withdraw feature
func New(ledger service.LedgerService) *Feature {
	return &Feature{
		ledger: ledger,
	}
}

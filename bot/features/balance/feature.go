package balance

import (
	"coinbot/service"
)

// Feature handles the balance command
type Feature struct {
	ledger service.LedgerService
}

// New creates the balance feature
func New(ledger service.LedgerService) *Feature {
	return &Feature{
		ledger: ledger,
	}
}

package transfer

import (
	"coinbot/service"
)

// Feature handles the pay command
type Feature struct {
	ledger service.LedgerService
}

// New creates the transfer feature
func New(ledger service.LedgerService) *Feature {
	return &Feature{
		ledger: ledger,
	}
}

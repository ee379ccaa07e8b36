package admin

import (
	"coinbot/service"
)

// Feature handles the privileged give command
type Feature struct {
	ledger service.LedgerService
	auth   service.Authorizer
}

// New creates the admin feature
func New(ledger service.LedgerService, auth service.Authorizer) *Feature {
	return &Feature{
		ledger: ledger,
		auth:   auth,
	}
}

package shop

import (
	"coinbot/service"
)

// Feature handles the shop, buy and inventory commands
type Feature struct {
	ledger  service.LedgerService
	catalog *service.Catalog
}

// New creates the shop feature
func New(ledger service.LedgerService, catalog *service.Catalog) *Feature {
	return &Feature{
		ledger:  ledger,
		catalog: catalog,
	}
}

package service

import "errors"

// Domain errors. Handlers map these to user-facing replies; anything else is
// treated as a system error and surfaced as a generic failure message.
var (
	// ErrInvalidAmount is returned for credits, debits and transfers with a
	// non-positive amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientBalance is returned when a debit or purchase would take
	// a balance below zero. The account is left unchanged.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrItemNotFound is returned for purchases of an item id that is not in
	// the catalog. Distinct from ErrInsufficientBalance so callers can tell
	// "no such item" from "can't afford it".
	ErrItemNotFound = errors.New("item not found")

	// ErrCooldownActive is returned when a reward is claimed before its
	// cooldown has elapsed.
	ErrCooldownActive = errors.New("cooldown still active")

	// ErrSelfTransfer is returned for transfers where sender and recipient
	// are the same account.
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrPermissionDenied is returned when a privileged operation is invoked
	// by a non-authorized user.
	ErrPermissionDenied = errors.New("permission denied")
)

package common

import (
	"errors"
	"fmt"

	"coinbot/service"
)

// UserMessage maps a domain error to the plain-language reply shown to the
// invoker. The second return is false for unexpected errors, which get a
// generic failure reply instead.
func UserMessage(err error) (string, bool) {
	var cooldownErr *service.CooldownError
	switch {
	case errors.As(err, &cooldownErr):
		return fmt.Sprintf("Your %s reward isn't ready yet. Try again in %s.",
			cooldownErr.Kind, FormatDuration(cooldownErr.Remaining)), true
	case errors.Is(err, service.ErrInvalidAmount):
		return "Amount must be a positive number.", true
	case errors.Is(err, service.ErrInsufficientBalance):
		return "You don't have enough coins for that.", true
	case errors.Is(err, service.ErrItemNotFound):
		return "That item isn't in the shop. Use the shop command to see what's available.", true
	case errors.Is(err, service.ErrSelfTransfer):
		return "You can't pay yourself.", true
	case errors.Is(err, service.ErrPermissionDenied):
		return "You aren't allowed to use that command.", true
	}
	return "Something went wrong. Please try again later.", false
}

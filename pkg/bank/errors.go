package bank

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrBalanceTooHigh    = errors.New("balance would exceed the maximum balance")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrScopeInactive     = errors.New("scope is not active under the current bank mode")
	ErrGuildRequired     = errors.New("a guild is required while the bank is per-guild")
	ErrAccountNotFound   = errors.New("account not found")
)

func invalidAmount(amount int64) error {
	return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
}

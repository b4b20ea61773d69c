package order

import (
	"errors"
	"fmt"

	"marketplace/internal/lifecycle"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrStaleState    = errors.New("order status changed concurrently")
	ErrInFlight      = errors.New("another transition of the order is in progress")
	ErrConflict      = errors.New("order already exists")

	ErrInvalidOrderID  = fmt.Errorf("%w: invalid order id", lifecycle.ErrInvalidInput)
	ErrInvalidStatus   = fmt.Errorf("%w: unknown order status", lifecycle.ErrInvalidInput)
	ErrInvalidSeller   = fmt.Errorf("%w: seller must be set and differ from buyer", lifecycle.ErrInvalidInput)
	ErrInvalidProduct  = fmt.Errorf("%w: product id is required", lifecycle.ErrInvalidInput)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", lifecycle.ErrInvalidInput)
	ErrInvalidPrice    = fmt.Errorf("%w: price must be a non-negative amount with at most 2 decimal places below 10^12", lifecycle.ErrInvalidInput)
	ErrInvalidCurrency = fmt.Errorf("%w: currency must be an ISO 4217 code", lifecycle.ErrInvalidInput)
	ErrInvalidAddress  = fmt.Errorf("%w: delivery address is required", lifecycle.ErrInvalidInput)
)

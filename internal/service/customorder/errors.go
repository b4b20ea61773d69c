package customorder

import (
	"errors"
	"fmt"

	"marketplace/internal/lifecycle"
)

var (
	ErrCustomOrderNotFound = errors.New("custom order not found")
	ErrStaleState          = errors.New("custom order status changed concurrently")
	ErrInFlight            = errors.New("another transition of the custom order is in progress")
	ErrConflict            = errors.New("custom order already exists")

	ErrInvalidCustomOrderID = fmt.Errorf("%w: invalid custom order id", lifecycle.ErrInvalidInput)
	ErrInvalidStatus        = fmt.Errorf("%w: unknown custom order status", lifecycle.ErrInvalidInput)
	ErrInvalidSeller        = fmt.Errorf("%w: seller must differ from buyer", lifecycle.ErrInvalidInput)
	ErrInvalidTitle         = fmt.Errorf("%w: title is required and must be at most %d characters", lifecycle.ErrInvalidInput, maxTitleLength)
	ErrInvalidDescription   = fmt.Errorf("%w: description must be at most %d characters", lifecycle.ErrInvalidInput, maxDescriptionLength)
	ErrInvalidPhotos        = fmt.Errorf("%w: at most %d non-empty photo urls are allowed", lifecycle.ErrInvalidInput, maxPhotos)
	ErrInvalidMaxPrice      = fmt.Errorf("%w: max price must be a non-negative amount with at most 2 decimal places below 10^12", lifecycle.ErrInvalidInput)
	ErrInvalidCurrency      = fmt.Errorf("%w: currency must be an ISO 4217 code", lifecycle.ErrInvalidInput)
	ErrInvalidDeadline      = fmt.Errorf("%w: either a future delivery deadline or asap must be set", lifecycle.ErrInvalidInput)
)

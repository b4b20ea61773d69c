package notification

import (
	"fmt"

	"marketplace/internal/lifecycle"
)

var (
	ErrInvalidNotificationID = fmt.Errorf("%w: invalid notification id", lifecycle.ErrInvalidInput)
	ErrInvalidRecipient      = fmt.Errorf("%w: invalid recipient", lifecycle.ErrInvalidInput)
	ErrInvalidEntity         = fmt.Errorf("%w: invalid entity reference", lifecycle.ErrInvalidInput)
	ErrInvalidMessageKey     = fmt.Errorf("%w: invalid message key", lifecycle.ErrInvalidInput)
	ErrInvalidLimit          = fmt.Errorf("%w: invalid limit", lifecycle.ErrInvalidInput)
)

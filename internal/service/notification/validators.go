package notification

import (
	"strings"

	"marketplace/internal/entities"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

func validateNotification(n entities.Notification) error {
	if strings.TrimSpace(n.ID) == "" {
		return ErrInvalidNotificationID
	}
	if strings.TrimSpace(n.RecipientID) == "" {
		return ErrInvalidRecipient
	}
	if n.EntityKind != entities.KindOrder && n.EntityKind != entities.KindCustomOrder {
		return ErrInvalidEntity
	}
	if strings.TrimSpace(n.EntityID) == "" {
		return ErrInvalidEntity
	}
	if strings.TrimSpace(n.MessageKey) == "" {
		return ErrInvalidMessageKey
	}
	return nil
}

package dto

import (
	"time"

	"marketplace/internal/entities"
)

// NotificationEvent - сообщение топика уведомлений.
type NotificationEvent struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipient_id"`
	EntityKind  string            `json:"entity_kind"`
	EntityID    string            `json:"entity_id"`
	MessageKey  string            `json:"message_key"`
	Params      map[string]string `json:"params,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationEvent {
	return NotificationEvent{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		EntityKind:  n.EntityKind.String(),
		EntityID:    n.EntityID,
		MessageKey:  n.MessageKey,
		Params:      n.Params,
		CreatedAt:   n.CreatedAt,
	}
}

func (e NotificationEvent) ToNotification() entities.Notification {
	return entities.Notification{
		ID:          e.ID,
		RecipientID: e.RecipientID,
		EntityKind:  entities.EntityKind(e.EntityKind),
		EntityID:    e.EntityID,
		MessageKey:  e.MessageKey,
		Params:      e.Params,
		CreatedAt:   e.CreatedAt,
	}
}

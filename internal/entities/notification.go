package entities

import "time"

type Notification struct {
	ID          string
	RecipientID string
	EntityKind  EntityKind
	EntityID    string
	MessageKey  string
	Params      map[string]string
	CreatedAt   time.Time
}

type OutboxMessage struct {
	ID        int64
	Topic     string
	Key       string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

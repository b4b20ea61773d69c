package notification

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create сохраняет уведомление. Возвращает false, если уведомление с таким id уже есть.
func (r *Repository) Create(ctx context.Context, n entities.Notification) (bool, error) {
	params := n.Params
	if params == nil {
		params = map[string]string{}
	}

	query := `INSERT INTO notifications (id, recipient_id, entity_kind, entity_id, message_key, params, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.querier.Exec(
		ctx,
		query,
		n.ID,
		n.RecipientID,
		n.EntityKind.String(),
		n.EntityID,
		n.MessageKey,
		params,
		n.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]entities.Notification, error) {
	query := `SELECT id, recipient_id, entity_kind, entity_id, message_key, params, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0, limit)
	for rows.Next() {
		var (
			n    entities.Notification
			kind string
		)
		err := rows.Scan(&n.ID, &n.RecipientID, &kind, &n.EntityID, &n.MessageKey, &n.Params, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		n.EntityKind = entities.EntityKind(kind)
		n.CreatedAt = n.CreatedAt.UTC()
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return notifications, nil
}

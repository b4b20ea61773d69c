package outbox

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

// MaxAttempts - после стольких неудачных публикаций сообщение остается в таблице и больше не выбирается.
const MaxAttempts = 10

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, topic, key string, payload []byte) error {
	query := `INSERT INTO notification_outbox (topic, key, payload)
		VALUES ($1, $2, $3)`

	_, err := r.querier.Exec(ctx, query, topic, key, payload)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository insert error: %w", err)
	}
	return nil
}

// FetchBatch блокирует до limit сообщений до конца транзакции: сначала с меньшим числом попыток,
// затем по порядку вставки. Строки, заблокированные другой транзакцией, пропускаются.
func (r *Repository) FetchBatch(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query := `SELECT id, topic, key, payload, attempts, created_at
		FROM notification_outbox
		WHERE attempts < $2
		ORDER BY attempts, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit, MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var message entities.OutboxMessage
		err := rows.Scan(
			&message.ID,
			&message.Topic,
			&message.Key,
			&message.Payload,
			&message.Attempts,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}

	return messages, nil
}

func (r *Repository) Delete(ctx context.Context, ids []int64) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM notification_outbox WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository delete error: %w", err)
	}
	return nil
}

func (r *Repository) IncrementAttempts(ctx context.Context, ids []int64) error {
	_, err := r.querier.Exec(ctx, `UPDATE notification_outbox SET attempts = attempts + 1 WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository increment attempts error: %w", err)
	}
	return nil
}

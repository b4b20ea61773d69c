package customorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/customorder"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customOrderEntity entities.CustomOrder) error {
	model := FromDomain(&customOrderEntity)

	query, args, err := qb.
		Insert("custom_orders").
		Columns(
			"id", "buyer_id", "seller_id", "title", "description", "photos", "max_price", "currency",
			"delivery_deadline", "is_asap", "status", "expires_at", "last_message", "order_id",
			"created_at", "updated_at",
		).
		Values(
			model.ID, model.BuyerID, model.SellerID, model.Title, model.Description, model.Photos,
			model.MaxPrice, model.Currency, model.DeliveryDeadline, model.IsASAP, model.Status,
			model.ExpiresAt, model.LastMessage, model.OrderID, model.CreatedAt, model.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected custom order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return customorder.ErrConflict
		}
		return fmt.Errorf("unexpected custom order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.CustomOrder, error) {
	query := `SELECT ` + customOrderColumns + `
		FROM custom_orders
		WHERE id = $1`

	var model CustomOrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customorder.ErrCustomOrderNotFound
		}
		return nil, fmt.Errorf("unexpected custom order repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

// UpdateStatus сохраняет снимок после перехода, только если статус в базе все еще from.
// Продавец и ссылка на заказ только устанавливаются, но не сбрасываются.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	from entities.CustomOrderStatusType,
	customOrderEntity entities.CustomOrder,
) error {
	model := FromDomain(&customOrderEntity)

	builder := qb.
		Update("custom_orders").
		Set("status", model.Status).
		Set("expires_at", model.ExpiresAt).
		Set("last_message", model.LastMessage).
		Set("updated_at", model.UpdatedAt)

	if model.SellerID != nil {
		builder = builder.Set("seller_id", model.SellerID)
	}
	if model.OrderID != nil {
		builder = builder.Set("order_id", model.OrderID)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": model.ID, "status": from.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected custom order repository update status error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected custom order repository update status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: custom order %s is no longer %s", customorder.ErrStaleState, model.ID, from)
	}

	return nil
}

// ListExpiredUnnotified возвращает запросы без ответа продавца, чье окно ответа истекло до now.
func (r *Repository) ListExpiredUnnotified(ctx context.Context, now time.Time, limit int) ([]entities.CustomOrder, error) {
	query := `SELECT ` + customOrderColumns + `
		FROM custom_orders
		WHERE status = $1 AND expires_at < $2 AND expiry_notified_at IS NULL
		ORDER BY expires_at
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, entities.CustomOrderPendingSellerResponse.String(), now, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected custom order repository list expired error: %w", err)
	}
	defer rows.Close()

	models := make([]CustomOrderDB, 0, limit)
	for rows.Next() {
		var model CustomOrderDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected custom order repository list expired error: %w", err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected custom order repository list expired error: %w", err)
	}

	return ToDomainList(models), nil
}

// MarkExpiryNotified помечает запрос уведомленным. Если запрос успели ответить, продлить или уже пометить,
// возвращается ErrStaleState.
func (r *Repository) MarkExpiryNotified(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE custom_orders
		SET expiry_notified_at = $2
		WHERE id = $1 AND status = $3 AND expires_at < $2 AND expiry_notified_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, id, at, entities.CustomOrderPendingSellerResponse.String())
	if err != nil {
		return fmt.Errorf("unexpected custom order repository mark expiry notified error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: custom order %s", customorder.ErrStaleState, id)
	}

	return nil
}

package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
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

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderModel := FromDomain(&orderEntity)

	query, args, err := qb.
		Insert("orders").
		Columns(
			"id", "buyer_id", "seller_id", "product_id", "quantity", "price", "currency",
			"delivery_address", "tracking_number", "notes", "status", "custom_order_id",
			"created_at", "updated_at",
		).
		Values(
			orderModel.ID, orderModel.BuyerID, orderModel.SellerID, orderModel.ProductID, orderModel.Quantity,
			orderModel.Price, orderModel.Currency, orderModel.DeliveryAddress, orderModel.TrackingNumber,
			orderModel.Notes, orderModel.Status, orderModel.CustomOrderID, orderModel.CreatedAt, orderModel.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// UpdateStatus сохраняет снимок после перехода, только если статус в базе все еще from.
func (r *Repository) UpdateStatus(ctx context.Context, from entities.OrderStatusType, orderEntity entities.Order) error {
	orderModel := FromDomain(&orderEntity)

	builder := qb.
		Update("orders").
		Set("status", orderModel.Status).
		Set("updated_at", orderModel.UpdatedAt)

	// трек-номер никогда не затирается
	if orderModel.TrackingNumber != nil {
		builder = builder.Set("tracking_number", orderModel.TrackingNumber)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": orderModel.ID, "status": from.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %s is no longer %s", order.ErrStaleState, orderModel.ID, from)
	}

	return nil
}

func (r *Repository) ListDeliveredBefore(ctx context.Context, before time.Time, limit int) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND updated_at < $2
		ORDER BY updated_at
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, entities.OrderDelivered.String(), before, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list delivered error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(orderModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list delivered error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list delivered error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

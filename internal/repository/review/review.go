package review

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reviewEntity entities.Review) error {
	model := FromDomain(&reviewEntity)
	query := `INSERT INTO reviews (id, order_id, reviewer_id, reviewee_id, reviewer_role,
			overall_rating, communication_rating, timeliness_rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.querier.Exec(
		ctx,
		query,
		model.ID,
		model.OrderID,
		model.ReviewerID,
		model.RevieweeID,
		model.ReviewerRole,
		model.OverallRating,
		model.CommunicationRating,
		model.TimelinessRating,
		model.Comment,
		model.CreatedAt,
	)
	if err != nil {
		// уникальный индекс (order_id, reviewer_id) закрывает гонку двух одновременных отзывов
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("%w: order %s", lifecycle.ErrAlreadyReviewed, model.OrderID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return fmt.Errorf("%w: %s (%s)", order.ErrOrderNotFound, model.OrderID, repository.ConstraintName(err))
		}
		return fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]entities.Review, error) {
	query := `SELECT id, order_id, reviewer_id, reviewee_id, reviewer_role,
			overall_rating, communication_rating, timeliness_rating, comment, created_at
		FROM reviews
		WHERE order_id = $1
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository list error: %w", err)
	}
	defer rows.Close()

	// у заказа не больше двух отзывов
	reviews := make([]entities.Review, 0, 2)
	for rows.Next() {
		var model ReviewDB
		err := rows.Scan(
			&model.ID,
			&model.OrderID,
			&model.ReviewerID,
			&model.RevieweeID,
			&model.ReviewerRole,
			&model.OverallRating,
			&model.CommunicationRating,
			&model.TimelinessRating,
			&model.Comment,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository list error: %w", err)
		}
		reviews = append(reviews, *ToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected review repository list error: %w", err)
	}

	return reviews, nil
}

package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
)

const messageKeyReviewCreated = "review.created"

type Service struct {
	repository      Repository
	orderRepository OrderRepository
	dispatcher      Dispatcher
	txManager       TxManager
	now             func() time.Time
	newID           func() string
}

func New(repository Repository, orderRepository OrderRepository, dispatcher Dispatcher, txManager TxManager) *Service {
	return &Service{
		repository:      repository,
		orderRepository: orderRepository,
		dispatcher:      dispatcher,
		txManager:       txManager,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewString,
	}
}

// CreateReview сохраняет отзыв участника завершенного заказа о контрагенте.
// Повторный отзыв того же пользователя по заказу отклоняется, в том числе при гонке (уникальный индекс).
func (s *Service) CreateReview(ctx context.Context, reviewerID string, create entities.ReviewCreate) (*entities.Review, error) {
	if strings.TrimSpace(create.OrderID) == "" {
		return nil, ErrInvalidOrderID
	}

	var review entities.Review
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, create.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		existing, err := s.repository.ListByOrder(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}

		eligibility, err := lifecycle.CanReview(*order, reviewerID, existing)
		if err != nil {
			role, _ := lifecycle.RoleOf(*order, reviewerID)
			return lifecycle.WithRole(err, role)
		}

		if create.RevieweeID != "" && create.RevieweeID != eligibility.RevieweeID {
			return ErrWrongReviewee
		}

		review = entities.Review{
			ID:                  s.newID(),
			OrderID:             order.ID,
			ReviewerID:          reviewerID,
			RevieweeID:          eligibility.RevieweeID,
			ReviewerRole:        eligibility.Role,
			OverallRating:       create.OverallRating,
			CommunicationRating: create.CommunicationRating,
			TimelinessRating:    create.TimelinessRating,
			Comment:             trimComment(create.Comment),
			CreatedAt:           s.now(),
		}
		if err := lifecycle.ValidateReview(review); err != nil {
			return err
		}

		if err := s.repository.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		return s.dispatcher.Dispatch(ctx, []lifecycle.Effect{
			lifecycle.NotifyCounterpart{
				Kind:        entities.KindOrder,
				EntityID:    order.ID,
				RecipientID: review.RevieweeID,
				MessageKey:  messageKeyReviewCreated,
				Params:      map[string]string{"rating": fmt.Sprint(review.OverallRating)},
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func trimComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

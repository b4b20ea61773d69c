package lifecycle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"marketplace/internal/entities"
)

type Eligibility struct {
	RevieweeID string
	Role       entities.ActorRole
}

// CanReview проверяет, может ли пользователь оставить отзыв по заказу, и определяет, кому он адресован.
// existing - уже созданные отзывы по этому заказу.
func CanReview(order entities.Order, actorID string, existing []entities.Review) (Eligibility, error) {
	if order.Status != entities.OrderCompleted {
		return Eligibility{}, fmt.Errorf("%w: order %s is %s", ErrNotCompleted, order.ID, order.Status)
	}

	role, ok := RoleOf(order, actorID)
	if !ok {
		return Eligibility{}, fmt.Errorf("%w: %s", ErrNotAParty, order.ID)
	}

	for _, review := range existing {
		if review.OrderID == order.ID && review.ReviewerID == actorID {
			return Eligibility{}, fmt.Errorf("%w: order %s", ErrAlreadyReviewed, order.ID)
		}
	}

	revieweeID := order.SellerID
	if role == entities.RoleSeller {
		revieweeID = order.BuyerID
	}

	return Eligibility{RevieweeID: revieweeID, Role: role}, nil
}

// ValidateReview проверяет оценки и длину комментария.
func ValidateReview(review entities.Review) error {
	ratings := map[string]int{
		"overallRating":       review.OverallRating,
		"communicationRating": review.CommunicationRating,
		"timelinessRating":    review.TimelinessRating,
	}
	for name, rating := range ratings {
		if rating < entities.MinRating || rating > entities.MaxRating {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, name, entities.MinRating, entities.MaxRating)
		}
	}

	if review.Comment != nil {
		if utf8.RuneCountInString(strings.TrimSpace(*review.Comment)) > entities.MaxCommentLength {
			return fmt.Errorf("%w: comment longer than %d characters", ErrInvalidInput, entities.MaxCommentLength)
		}
	}
	return nil
}

package notification

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Store сохраняет уведомление во входящие получателя.
// Повторная доставка того же события не создает дубликат, в этом случае возвращается false.
func (s *Service) Store(ctx context.Context, notification entities.Notification) (bool, error) {
	if err := validateNotification(notification); err != nil {
		return false, err
	}

	created, err := s.repository.Create(ctx, notification)
	if err != nil {
		return false, fmt.Errorf("store notification: %w", err)
	}
	return created, nil
}

// List возвращает последние уведомления пользователя, новые первыми. limit = 0 означает значение по умолчанию.
func (s *Service) List(ctx context.Context, recipientID string, limit int) ([]entities.Notification, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, ErrInvalidRecipient
	}

	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit < 0 || limit > MaxListLimit:
		return nil, ErrInvalidLimit
	}

	notifications, err := s.repository.ListByRecipient(ctx, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

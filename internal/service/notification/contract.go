//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (bool, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]entities.Notification, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderflow_test
package orderflow

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
)

type Gateway interface {
	GetOrder(ctx context.Context, id string) (*entities.Order, error)
	TransitionOrder(ctx context.Context, id string, status entities.OrderStatusType, trackingNumber *string) (*entities.Order, error)
	CancelOrder(ctx context.Context, id string) (*entities.Order, error)
	GetCustomOrder(ctx context.Context, id string) (*entities.CustomOrder, entities.CustomOrderStatusType, error)
	TransitionCustomOrder(ctx context.Context, id string, status entities.CustomOrderStatusType, payload lifecycle.Payload) (*entities.CustomOrder, error)
}

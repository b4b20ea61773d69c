//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatcher_test
package dispatcher

import (
	"context"

	"marketplace/internal/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) error
	UpdateStatus(ctx context.Context, from entities.OrderStatusType, order entities.Order) error
}

type CustomOrderRepository interface {
	UpdateStatus(ctx context.Context, from entities.CustomOrderStatusType, customOrder entities.CustomOrder) error
}

type Outbox interface {
	Insert(ctx context.Context, topic, key string, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

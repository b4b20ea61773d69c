//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	ListDeliveredBefore(ctx context.Context, before time.Time, limit int) ([]entities.Order, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, effects []lifecycle.Effect) error
}

type Locker interface {
	Lock(ctx context.Context, key string) (func(context.Context) error, error)
}

type Metrics interface {
	ObserveTransition(entity, from, to, result string)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customorder_test
package customorder

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, customOrder entities.CustomOrder) error
	GetByID(ctx context.Context, id string) (*entities.CustomOrder, error)
	ListExpiredUnnotified(ctx context.Context, now time.Time, limit int) ([]entities.CustomOrder, error)
	MarkExpiryNotified(ctx context.Context, id string, at time.Time) error
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

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

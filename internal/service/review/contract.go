//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, review entities.Review) error
	ListByOrder(ctx context.Context, orderID string) ([]entities.Review, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, effects []lifecycle.Effect) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

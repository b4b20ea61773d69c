//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_autocomplete_test
package order_autocomplete

import (
	"context"
	"time"
)

type Service interface {
	CompleteDelivered(ctx context.Context, before time.Time) (int64, error)
}

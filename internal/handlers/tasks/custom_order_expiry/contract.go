//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=custom_order_expiry_test
package custom_order_expiry

import (
	"context"
)

type Service interface {
	NotifyExpired(ctx context.Context) (int64, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"
)

type Service interface {
	Relay(ctx context.Context) (int64, error)
}

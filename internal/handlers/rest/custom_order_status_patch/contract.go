//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=custom_order_status_patch_test
package custom_order_status_patch

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RequestTransition(ctx context.Context, actorID, id string, requested entities.CustomOrderStatusType, payload lifecycle.Payload) (*entities.CustomOrder, error)
}

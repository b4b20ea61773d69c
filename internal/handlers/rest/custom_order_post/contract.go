//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=custom_order_post_test
package custom_order_post

import (
	"context"

	"marketplace/internal/entities"
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
	CreateCustomOrder(ctx context.Context, buyerID string, create entities.CustomOrderCreate) (*entities.CustomOrder, error)
}

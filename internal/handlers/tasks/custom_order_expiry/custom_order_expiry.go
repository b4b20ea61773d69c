package custom_order_expiry

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

// CustomOrderExpiry один раз уведомляет стороны о запросах, на которые продавец не ответил вовремя.
// Статус запроса в базе не меняется.
type CustomOrderExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCustomOrderExpiry(log logger.Logger, service Service, interval time.Duration) *CustomOrderExpiry {
	return &CustomOrderExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CustomOrderExpiry) TTL() time.Duration {
	return c.interval
}

func (c *CustomOrderExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	notified, err := c.service.NotifyExpired(ctxWithTimeout)

	if notified > 0 {
		c.log.With(
			logger.NewField("expired_custom_orders", notified),
		).Info("custom order expiry")
	}

	return err
}

func (c *CustomOrderExpiry) Info() string {
	return "custom order expiry"
}

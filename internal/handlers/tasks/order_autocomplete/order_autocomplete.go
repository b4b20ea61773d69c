package order_autocomplete

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

// OrderAutocomplete завершает заказы, которые доставлены дольше заданного срока.
type OrderAutocomplete struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	after    time.Duration
	now      func() time.Time
}

func NewOrderAutocomplete(log logger.Logger, service Service, interval, after time.Duration) *OrderAutocomplete {
	return &OrderAutocomplete{
		log:      log,
		service:  service,
		interval: interval,
		after:    after,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (o *OrderAutocomplete) TTL() time.Duration {
	return o.interval
}

func (o *OrderAutocomplete) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	completed, err := o.service.CompleteDelivered(ctxWithTimeout, o.now().Add(-o.after))

	if completed > 0 {
		o.log.With(
			logger.NewField("completed_orders", completed),
		).Info("order autocomplete")
	}

	return err
}

func (o *OrderAutocomplete) Info() string {
	return "order autocomplete"
}

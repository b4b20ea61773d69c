package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	"marketplace/internal/repository"
)

var (
	// ErrConflict - транзакция не прошла из-за параллельного изменения тех же строк.
	ErrConflict          = errors.New("concurrent update conflict")
	ErrUnsupportedEffect = errors.New("unsupported effect")
)

// Dispatcher выполняет эффекты движка в одной транзакции: все или ничего.
type Dispatcher struct {
	orders       OrderRepository
	customOrders CustomOrderRepository
	outbox       Outbox
	txManager    TxManager
	topic        string
	now          func() time.Time
	newID        func() string
}

func New(
	orders OrderRepository,
	customOrders CustomOrderRepository,
	outbox Outbox,
	txManager TxManager,
	topic string,
) *Dispatcher {
	return &Dispatcher{
		orders:       orders,
		customOrders: customOrders,
		outbox:       outbox,
		txManager:    txManager,
		topic:        topic,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, effects []lifecycle.Effect) error {
	if len(effects) == 0 {
		return nil
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		for _, effect := range effects {
			if err := d.apply(ctx, effect); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return err
	}
	return nil
}

func (d *Dispatcher) apply(ctx context.Context, effect lifecycle.Effect) error {
	switch e := effect.(type) {
	case lifecycle.PersistOrderStatus:
		if err := d.orders.UpdateStatus(ctx, e.From, e.Order); err != nil {
			return fmt.Errorf("persist order status: %w", err)
		}

	case lifecycle.PersistCustomOrderStatus:
		if err := d.customOrders.UpdateStatus(ctx, e.From, e.CustomOrder); err != nil {
			return fmt.Errorf("persist custom order status: %w", err)
		}

	case lifecycle.CreateOrder:
		if err := d.orders.Create(ctx, e.Order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

	case lifecycle.NotifyCounterpart:
		if err := d.notify(ctx, e); err != nil {
			return fmt.Errorf("notify %s: %w", e.RecipientID, err)
		}

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedEffect, effect)
	}
	return nil
}

// notify кладет событие в outbox, ключ сообщения - получатель, чтобы его уведомления шли по порядку.
func (d *Dispatcher) notify(ctx context.Context, e lifecycle.NotifyCounterpart) error {
	event := dto.FromNotification(entities.Notification{
		ID:          d.newID(),
		RecipientID: e.RecipientID,
		EntityKind:  e.Kind,
		EntityID:    e.EntityID,
		MessageKey:  e.MessageKey,
		Params:      e.Params,
		CreatedAt:   d.now(),
	})

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	return d.outbox.Insert(ctx, d.topic, e.RecipientID, payload)
}

package lifecycle

import (
	"context"
	"strings"

	"marketplace/internal/entities"
)

type EffectType string

const (
	EffectPersistStatus     EffectType = "persist_status"
	EffectNotifyCounterpart EffectType = "notify_counterpart"
	EffectCreateOrder       EffectType = "create_order"
)

// Effect - внешне наблюдаемое действие, которое движок запрашивает, но не выполняет.
type Effect interface {
	Type() EffectType
}

// Dispatcher выполняет эффекты. Реализация определяется вызывающей стороной.
type Dispatcher interface {
	Dispatch(ctx context.Context, effects []Effect) error
}

// PersistOrderStatus сохраняет новый снимок заказа при условии, что текущий статус все еще From.
type PersistOrderStatus struct {
	From  entities.OrderStatusType
	Order entities.Order
}

func (PersistOrderStatus) Type() EffectType { return EffectPersistStatus }

type PersistCustomOrderStatus struct {
	From        entities.CustomOrderStatusType
	CustomOrder entities.CustomOrder
}

func (PersistCustomOrderStatus) Type() EffectType { return EffectPersistStatus }

type NotifyCounterpart struct {
	Kind        entities.EntityKind
	EntityID    string
	RecipientID string
	MessageKey  string
	Params      map[string]string
}

func (NotifyCounterpart) Type() EffectType { return EffectNotifyCounterpart }

// CreateOrder создает заказ в статусе PENDING, полученный конвертацией индивидуального заказа.
type CreateOrder struct {
	Order entities.Order
}

func (CreateOrder) Type() EffectType { return EffectCreateOrder }

func MessageKey(kind entities.EntityKind, status string) string {
	return kind.String() + ".status." + strings.ToLower(status)
}

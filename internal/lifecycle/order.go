package lifecycle

import (
	"fmt"

	"marketplace/internal/entities"
)

type OrderOutcome struct {
	Order   entities.Order
	Effects []Effect
}

// OrderEngine проверяет и выполняет переходы обычного заказа по таблице переходов.
// Движок не хранит состояния и не выполняет ввод-вывод.
type OrderEngine struct {
	opts options
}

func NewOrderEngine(opts ...Option) *OrderEngine {
	return &OrderEngine{opts: buildOptions(opts)}
}

func (e *OrderEngine) RequestTransition(
	order entities.Order,
	requested entities.OrderStatusType,
	role entities.ActorRole,
	payload Payload,
) (OrderOutcome, error) {
	edge, ok := Lookup(entities.KindOrder, order.Status.String(), requested.String())
	if !ok {
		return OrderOutcome{}, fmt.Errorf("%w: order %s -> %s", ErrIllegalTransition, order.Status, requested)
	}

	if !edge.Allows(role) {
		return OrderOutcome{}, fmt.Errorf("%w: %s cannot move order %s -> %s", ErrForbidden, role, order.Status, requested)
	}

	if missing := payload.missing(edge.Required); len(missing) > 0 {
		return OrderOutcome{}, fmt.Errorf("%w: %v", ErrMissingInput, missing)
	}

	next := order
	next.Status = requested
	next.UpdatedAt = e.opts.now()

	if requested == entities.OrderShipped && payload.Has(InputTrackingNumber) {
		tracking := *payload.TrackingNumber
		next.TrackingNumber = &tracking
	}

	effects := []Effect{
		PersistOrderStatus{From: order.Status, Order: next},
	}
	for _, recipient := range orderRecipients(order, role) {
		effects = append(effects, NotifyCounterpart{
			Kind:        entities.KindOrder,
			EntityID:    order.ID,
			RecipientID: recipient,
			MessageKey:  MessageKey(entities.KindOrder, requested.String()),
			Params:      orderNotificationParams(next),
		})
	}

	return OrderOutcome{Order: next, Effects: effects}, nil
}

// Available возвращает статусы, доступные роли из текущего статуса заказа.
func (e *OrderEngine) Available(order entities.Order, role entities.ActorRole) []entities.OrderStatusType {
	statuses := Available(entities.KindOrder, order.Status.String(), role)
	result := make([]entities.OrderStatusType, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, entities.OrderStatusType(s))
	}
	return result
}

func (e *OrderEngine) IsTerminal(status entities.OrderStatusType) bool {
	return IsTerminal(entities.KindOrder, status.String())
}

// RoleOf определяет роль пользователя в заказе.
func RoleOf(order entities.Order, actorID string) (entities.ActorRole, bool) {
	switch actorID {
	case "":
		return "", false
	case order.BuyerID:
		return entities.RoleBuyer, true
	case order.SellerID:
		return entities.RoleSeller, true
	default:
		return "", false
	}
}

func orderRecipients(order entities.Order, role entities.ActorRole) []string {
	switch role {
	case entities.RoleSeller:
		return []string{order.BuyerID}
	case entities.RoleBuyer:
		return []string{order.SellerID}
	case entities.RoleSystem:
		return []string{order.BuyerID, order.SellerID}
	default:
		return nil
	}
}

func orderNotificationParams(order entities.Order) map[string]string {
	params := map[string]string{
		"status": order.Status.String(),
	}
	if order.TrackingNumber != nil {
		params["trackingNumber"] = *order.TrackingNumber
	}
	return params
}

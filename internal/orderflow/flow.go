package orderflow

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	"marketplace/internal/optimistic"
	"marketplace/pkg/logger"
)

// Flow выполняет переход на стороне клиента: решение движка применяется оптимистично,
// затем запрос уходит на сервер, который подтверждает или отклоняет результат.
type Flow struct {
	log          logger.Logger
	gateway      Gateway
	orders       *lifecycle.OrderEngine
	customOrders *lifecycle.CustomOrderEngine
	actorID      string
}

func New(
	log logger.Logger,
	gateway Gateway,
	orders *lifecycle.OrderEngine,
	customOrders *lifecycle.CustomOrderEngine,
	actorID string,
) *Flow {
	return &Flow{
		log:          log,
		gateway:      gateway,
		orders:       orders,
		customOrders: customOrders,
		actorID:      actorID,
	}
}

// LoadOrder читает заказ с сервера и создает для него трекер.
func (f *Flow) LoadOrder(ctx context.Context, id string) (*optimistic.Tracker[entities.Order], error) {
	order, err := f.gateway.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	return optimistic.New(*order), nil
}

func (f *Flow) LoadCustomOrder(ctx context.Context, id string) (*optimistic.Tracker[entities.CustomOrder], error) {
	customOrder, _, err := f.gateway.GetCustomOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load custom order: %w", err)
	}
	return optimistic.New(*customOrder), nil
}

// TransitionOrder возвращает снимок, который нужно показать пользователю после попытки перехода,
// и ошибку с ролью пользователя для выбора сообщения.
func (f *Flow) TransitionOrder(
	ctx context.Context,
	tracker *optimistic.Tracker[entities.Order],
	requested entities.OrderStatusType,
	payload lifecycle.Payload,
) (entities.Order, error) {
	snapshot := tracker.Confirmed()

	role, ok := lifecycle.RoleOf(snapshot, f.actorID)
	if !ok {
		return snapshot, fmt.Errorf("%w: %s is not a party of order %s", lifecycle.ErrForbidden, f.actorID, snapshot.ID)
	}

	flowLog := f.log.With(
		logger.NewField("order", snapshot.ID),
		logger.NewField("from", snapshot.Status.String()),
		logger.NewField("to", requested.String()),
		logger.NewField("role", role.String()),
	)

	outcome, err := f.orders.RequestTransition(snapshot, requested, role, payload)
	if err != nil {
		// Локальный отказ означает устаревшее представление: перечитываем, но не повторяем.
		flowLog.With(logger.NewField("error", err)).Debug("local transition refused, refreshing order")
		return f.refreshOrder(ctx, tracker, lifecycle.WithRole(err, role))
	}

	err = tracker.Begin(outcome.Order)
	if err != nil {
		return tracker.View(), err
	}

	var authoritative *entities.Order
	if requested == entities.OrderCancelled {
		authoritative, err = f.gateway.CancelOrder(ctx, snapshot.ID)
	} else {
		authoritative, err = f.gateway.TransitionOrder(ctx, snapshot.ID, requested, payload.TrackingNumber)
	}
	if err != nil {
		restored, rollbackErr := tracker.RollBack(err)
		if rollbackErr != nil {
			return restored, errors.Join(err, rollbackErr)
		}
		flowLog.With(logger.NewField("error", err)).Info("transition rolled back")

		if errors.Is(err, lifecycle.ErrBackendRejected) {
			return f.refreshOrder(ctx, tracker, lifecycle.WithRole(err, role))
		}
		return restored, lifecycle.WithRole(err, role)
	}

	err = tracker.Confirm(*authoritative)
	if err != nil {
		return *authoritative, err
	}
	flowLog.Debug("transition confirmed")
	return *authoritative, nil
}

func (f *Flow) TransitionCustomOrder(
	ctx context.Context,
	tracker *optimistic.Tracker[entities.CustomOrder],
	requested entities.CustomOrderStatusType,
	payload lifecycle.Payload,
) (entities.CustomOrder, error) {
	snapshot := tracker.Confirmed()

	role, ok := lifecycle.CustomRoleOf(snapshot, f.actorID)
	if !ok {
		return snapshot, fmt.Errorf("%w: %s is not a party of custom order %s", lifecycle.ErrForbidden, f.actorID, snapshot.ID)
	}
	payload.ActorID = f.actorID

	flowLog := f.log.With(
		logger.NewField("custom_order", snapshot.ID),
		logger.NewField("from", snapshot.Status.String()),
		logger.NewField("to", requested.String()),
		logger.NewField("role", role.String()),
	)

	outcome, err := f.customOrders.RequestCustomTransition(snapshot, requested, role, payload)
	if err != nil {
		flowLog.With(logger.NewField("error", err)).Debug("local transition refused, refreshing custom order")
		return f.refreshCustomOrder(ctx, tracker, lifecycle.WithRole(err, role))
	}

	err = tracker.Begin(outcome.CustomOrder)
	if err != nil {
		return tracker.View(), err
	}

	authoritative, err := f.gateway.TransitionCustomOrder(ctx, snapshot.ID, requested, payload)
	if err != nil {
		restored, rollbackErr := tracker.RollBack(err)
		if rollbackErr != nil {
			return restored, errors.Join(err, rollbackErr)
		}
		flowLog.With(logger.NewField("error", err)).Info("transition rolled back")

		if errors.Is(err, lifecycle.ErrBackendRejected) {
			return f.refreshCustomOrder(ctx, tracker, lifecycle.WithRole(err, role))
		}
		return restored, lifecycle.WithRole(err, role)
	}

	err = tracker.Confirm(*authoritative)
	if err != nil {
		return *authoritative, err
	}
	flowLog.Debug("transition confirmed")
	return *authoritative, nil
}

// refreshOrder перечитывает заказ после отказа и возвращает исходную причину отказа.
func (f *Flow) refreshOrder(
	ctx context.Context,
	tracker *optimistic.Tracker[entities.Order],
	cause error,
) (entities.Order, error) {
	fresh, err := f.gateway.GetOrder(ctx, tracker.Confirmed().ID)
	if err != nil {
		return tracker.View(), errors.Join(cause, fmt.Errorf("refresh order: %w", err))
	}
	if err := tracker.Reset(*fresh); err != nil {
		return tracker.View(), errors.Join(cause, err)
	}
	return *fresh, cause
}

func (f *Flow) refreshCustomOrder(
	ctx context.Context,
	tracker *optimistic.Tracker[entities.CustomOrder],
	cause error,
) (entities.CustomOrder, error) {
	fresh, _, err := f.gateway.GetCustomOrder(ctx, tracker.Confirmed().ID)
	if err != nil {
		return tracker.View(), errors.Join(cause, fmt.Errorf("refresh custom order: %w", err))
	}
	if err := tracker.Reset(*fresh); err != nil {
		return tracker.View(), errors.Join(cause, err)
	}
	return *fresh, cause
}

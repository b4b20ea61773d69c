package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/redislock"
)

const autocompleteBatchSize = 100

type Service struct {
	repository Repository
	dispatcher Dispatcher
	locker     Locker
	metrics    Metrics
	engine     *lifecycle.OrderEngine
	now        func() time.Time
	newID      func() string
}

func New(
	repository Repository,
	dispatcher Dispatcher,
	locker Locker,
	metrics Metrics,
	engine *lifecycle.OrderEngine,
) *Service {
	return &Service{
		repository: repository,
		dispatcher: dispatcher,
		locker:     locker,
		metrics:    metrics,
		engine:     engine,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func LockKey(id string) string {
	return "lock:transition:" + entities.KindOrder.String() + ":" + id
}

func (s *Service) CreateOrder(ctx context.Context, buyerID string, create entities.OrderCreate) (*entities.Order, error) {
	if !isValidID(buyerID) {
		return nil, lifecycle.ErrNotAParty
	}
	if err := validateCreate(buyerID, create); err != nil {
		return nil, err
	}

	now := s.now()
	order := entities.Order{
		ID:              s.newID(),
		BuyerID:         buyerID,
		SellerID:        create.SellerID,
		ProductID:       create.ProductID,
		Quantity:        create.Quantity,
		Price:           create.Price,
		Currency:        create.Currency,
		DeliveryAddress: strings.TrimSpace(create.DeliveryAddress),
		Notes:           create.Notes,
		Status:          entities.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	effects := []lifecycle.Effect{
		lifecycle.CreateOrder{Order: order},
		lifecycle.NotifyCounterpart{
			Kind:        entities.KindOrder,
			EntityID:    order.ID,
			RecipientID: order.SellerID,
			MessageKey:  lifecycle.MessageKey(entities.KindOrder, order.Status.String()),
			Params:      map[string]string{"status": order.Status.String()},
		},
	}
	if err := s.dispatcher.Dispatch(ctx, effects); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &order, nil
}

// GetOrder возвращает заказ только его участникам.
func (s *Service) GetOrder(ctx context.Context, actorID, id string) (*entities.Order, entities.ActorRole, error) {
	if !isValidID(id) {
		return nil, "", ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get order: %w", err)
	}

	role, ok := lifecycle.RoleOf(*order, actorID)
	if !ok {
		return nil, "", lifecycle.ErrNotAParty
	}
	return order, role, nil
}

// Actions возвращает статусы, в которые пользователь может перевести заказ.
func (s *Service) Actions(ctx context.Context, actorID, id string) (*entities.Order, entities.ActorRole, []entities.OrderStatusType, error) {
	order, role, err := s.GetOrder(ctx, actorID, id)
	if err != nil {
		return nil, "", nil, err
	}
	return order, role, s.engine.Available(*order, role), nil
}

func (s *Service) RequestTransition(
	ctx context.Context,
	actorID string,
	id string,
	requested entities.OrderStatusType,
	payload lifecycle.Payload,
) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if !requested.IsValid() {
		return nil, ErrInvalidStatus
	}

	return s.transition(ctx, id, requested, payload, func(order entities.Order) (entities.ActorRole, error) {
		role, ok := lifecycle.RoleOf(order, actorID)
		if !ok {
			return "", lifecycle.ErrNotAParty
		}
		return role, nil
	})
}

func (s *Service) Cancel(ctx context.Context, actorID, id string) (*entities.Order, error) {
	return s.RequestTransition(ctx, actorID, id, entities.OrderCancelled, lifecycle.Payload{ActorID: actorID})
}

// CompleteDelivered завершает от имени системы заказы, доставленные раньше before.
// Заказы, которые успели измениться, пропускаются.
func (s *Service) CompleteDelivered(ctx context.Context, before time.Time) (int64, error) {
	orders, err := s.repository.ListDeliveredBefore(ctx, before, autocompleteBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list delivered orders: %w", err)
	}

	var completed int64
	for _, o := range orders {
		_, err := s.transition(ctx, o.ID, entities.OrderCompleted, lifecycle.Payload{}, func(entities.Order) (entities.ActorRole, error) {
			return entities.RoleSystem, nil
		})
		switch {
		case err == nil:
			completed++
		case errors.Is(err, ErrInFlight), errors.Is(err, ErrStaleState), errors.Is(err, lifecycle.ErrIllegalTransition):
			continue
		default:
			return completed, fmt.Errorf("complete order %s: %w", o.ID, err)
		}
	}

	return completed, nil
}

func (s *Service) transition(
	ctx context.Context,
	id string,
	requested entities.OrderStatusType,
	payload lifecycle.Payload,
	roleOf func(order entities.Order) (entities.ActorRole, error),
) (*entities.Order, error) {
	unlock, err := s.locker.Lock(ctx, LockKey(id))
	if err != nil {
		if errors.Is(err, redislock.ErrLocked) {
			return nil, ErrInFlight
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}
	// если снять блокировку не удалось, она истечет по TTL
	defer unlock(context.WithoutCancel(ctx)) //nolint:errcheck

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	role, err := roleOf(*order)
	if err != nil {
		s.observe(order.Status, requested, err)
		return nil, err
	}

	outcome, err := s.engine.RequestTransition(*order, requested, role, payload)
	if err != nil {
		s.observe(order.Status, requested, err)
		return nil, lifecycle.WithRole(err, role)
	}

	if err := s.dispatcher.Dispatch(ctx, outcome.Effects); err != nil {
		s.observe(order.Status, requested, err)
		return nil, fmt.Errorf("dispatch order effects: %w", err)
	}

	s.observe(order.Status, requested, nil)
	return &outcome.Order, nil
}

func (s *Service) observe(from, to entities.OrderStatusType, err error) {
	result := metrics.TransitionResultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrStaleState):
		result = "CONFLICT"
	default:
		result = lifecycle.Code(err)
	}
	s.metrics.ObserveTransition(entities.KindOrder.String(), from.String(), to.String(), result)
}

package customorder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/redislock"
)

const expiryBatchSize = 100

type Service struct {
	repository Repository
	dispatcher Dispatcher
	locker     Locker
	metrics    Metrics
	txManager  TxManager
	engine     *lifecycle.CustomOrderEngine
	now        func() time.Time
	newID      func() string
}

func New(
	repository Repository,
	dispatcher Dispatcher,
	locker Locker,
	metrics Metrics,
	txManager TxManager,
	engine *lifecycle.CustomOrderEngine,
) *Service {
	return &Service{
		repository: repository,
		dispatcher: dispatcher,
		locker:     locker,
		metrics:    metrics,
		txManager:  txManager,
		engine:     engine,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func LockKey(id string) string {
	return "lock:transition:" + entities.KindCustomOrder.String() + ":" + id
}

// CreateCustomOrder открывает запрос покупателя. Продавцу отводится окно ответа от текущего момента.
func (s *Service) CreateCustomOrder(ctx context.Context, buyerID string, create entities.CustomOrderCreate) (*entities.CustomOrder, error) {
	if !isValidID(buyerID) {
		return nil, lifecycle.ErrNotAParty
	}

	now := s.now()
	if err := validateCreate(buyerID, create, now); err != nil {
		return nil, err
	}

	customOrder := entities.CustomOrder{
		ID:               s.newID(),
		BuyerID:          buyerID,
		SellerID:         create.SellerID,
		Title:            strings.TrimSpace(create.Title),
		Description:      create.Description,
		Photos:           slices.Clone(create.Photos),
		MaxPrice:         create.MaxPrice,
		Currency:         create.Currency,
		DeliveryDeadline: create.DeliveryDeadline,
		IsASAP:           create.IsASAP,
		Status:           entities.CustomOrderPendingSellerResponse,
		ExpiresAt:        now.Add(s.engine.ResponseWindow()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if customOrder.Photos == nil {
		customOrder.Photos = []string{}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, customOrder); err != nil {
			return fmt.Errorf("create custom order: %w", err)
		}

		// открытый запрос никому персонально не адресован
		if customOrder.SellerID == nil {
			return nil
		}
		return s.dispatcher.Dispatch(ctx, []lifecycle.Effect{
			lifecycle.NotifyCounterpart{
				Kind:        entities.KindCustomOrder,
				EntityID:    customOrder.ID,
				RecipientID: *customOrder.SellerID,
				MessageKey:  lifecycle.MessageKey(entities.KindCustomOrder, customOrder.Status.String()),
				Params:      map[string]string{"status": customOrder.Status.String(), "title": customOrder.Title},
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return &customOrder, nil
}

// GetCustomOrder возвращает запрос с отображаемым статусом. Открытые запросы видны любому продавцу.
func (s *Service) GetCustomOrder(
	ctx context.Context,
	actorID, id string,
) (*entities.CustomOrder, entities.CustomOrderStatusType, entities.ActorRole, error) {
	if !isValidID(id) {
		return nil, "", "", ErrInvalidCustomOrderID
	}

	customOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, "", "", fmt.Errorf("get custom order: %w", err)
	}

	role, ok := lifecycle.CustomRoleOf(*customOrder, actorID)
	if !ok {
		return nil, "", "", lifecycle.ErrNotAParty
	}
	return customOrder, s.engine.ViewStatus(*customOrder), role, nil
}

func (s *Service) Actions(
	ctx context.Context,
	actorID, id string,
) (*entities.CustomOrder, entities.ActorRole, []entities.CustomOrderStatusType, error) {
	customOrder, _, role, err := s.GetCustomOrder(ctx, actorID, id)
	if err != nil {
		return nil, "", nil, err
	}
	return customOrder, role, s.engine.Available(*customOrder, role), nil
}

func (s *Service) RequestTransition(
	ctx context.Context,
	actorID string,
	id string,
	requested entities.CustomOrderStatusType,
	payload lifecycle.Payload,
) (*entities.CustomOrder, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCustomOrderID
	}
	if !requested.IsValid() {
		return nil, ErrInvalidStatus
	}
	payload.ActorID = actorID

	unlock, err := s.locker.Lock(ctx, LockKey(id))
	if err != nil {
		if errors.Is(err, redislock.ErrLocked) {
			return nil, ErrInFlight
		}
		return nil, fmt.Errorf("lock custom order: %w", err)
	}
	// если снять блокировку не удалось, она истечет по TTL
	defer unlock(context.WithoutCancel(ctx)) //nolint:errcheck

	customOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get custom order: %w", err)
	}

	role, ok := lifecycle.CustomRoleOf(*customOrder, actorID)
	if !ok {
		s.observe(customOrder.Status, requested, lifecycle.ErrNotAParty)
		return nil, lifecycle.ErrNotAParty
	}

	outcome, err := s.engine.RequestCustomTransition(*customOrder, requested, role, payload)
	if err != nil {
		s.observe(customOrder.Status, requested, err)
		return nil, lifecycle.WithRole(err, role)
	}

	if err := s.dispatcher.Dispatch(ctx, outcome.Effects); err != nil {
		s.observe(customOrder.Status, requested, err)
		return nil, fmt.Errorf("dispatch custom order effects: %w", err)
	}

	s.observe(customOrder.Status, requested, nil)
	return &outcome.CustomOrder, nil
}

// NotifyExpired один раз уведомляет покупателя о запросах, оставшихся без ответа.
// Сохраненный статус не меняется, просрочка вычисляется при чтении.
func (s *Service) NotifyExpired(ctx context.Context) (int64, error) {
	now := s.now()

	expired, err := s.repository.ListExpiredUnnotified(ctx, now, expiryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list expired custom orders: %w", err)
	}

	var notified int64
	for _, customOrder := range expired {
		customOrder := customOrder
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repository.MarkExpiryNotified(ctx, customOrder.ID, now); err != nil {
				return fmt.Errorf("mark expiry notified: %w", err)
			}
			return s.dispatcher.Dispatch(ctx, []lifecycle.Effect{
				lifecycle.NotifyCounterpart{
					Kind:        entities.KindCustomOrder,
					EntityID:    customOrder.ID,
					RecipientID: customOrder.BuyerID,
					MessageKey:  lifecycle.MessageKey(entities.KindCustomOrder, entities.CustomOrderExpired.String()),
					Params:      map[string]string{"status": entities.CustomOrderExpired.String(), "title": customOrder.Title},
				},
			})
		})
		if err != nil {
			if errors.Is(err, ErrStaleState) {
				continue
			}
			return notified, fmt.Errorf("notify expired custom order %s: %w", customOrder.ID, err)
		}
		notified++
	}

	return notified, nil
}

func (s *Service) observe(from, to entities.CustomOrderStatusType, err error) {
	result := metrics.TransitionResultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrStaleState):
		result = "CONFLICT"
	default:
		result = lifecycle.Code(err)
	}
	s.metrics.ObserveTransition(entities.KindCustomOrder.String(), from.String(), to.String(), result)
}

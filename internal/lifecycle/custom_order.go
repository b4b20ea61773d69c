package lifecycle

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/entities"
)

type CustomOrderOutcome struct {
	CustomOrder entities.CustomOrder
	Effects     []Effect
}

// CustomOrderEngine ведет переговоры по индивидуальному заказу вплоть до конвертации в обычный заказ.
type CustomOrderEngine struct {
	opts options
}

func NewCustomOrderEngine(opts ...Option) *CustomOrderEngine {
	return &CustomOrderEngine{opts: buildOptions(opts)}
}

func (e *CustomOrderEngine) ResponseWindow() time.Duration {
	return e.opts.responseWindow
}

func (e *CustomOrderEngine) RequestCustomTransition(
	customOrder entities.CustomOrder,
	requested entities.CustomOrderStatusType,
	role entities.ActorRole,
	payload Payload,
) (CustomOrderOutcome, error) {
	now := e.opts.now()

	if role == entities.RoleSeller && IsExpired(customOrder, now) {
		return CustomOrderOutcome{}, fmt.Errorf("%w: custom order %s expired at %s",
			ErrExpired, customOrder.ID, customOrder.ExpiresAt.Format(time.RFC3339))
	}

	edge, ok := Lookup(entities.KindCustomOrder, customOrder.Status.String(), requested.String())
	if !ok {
		return CustomOrderOutcome{}, fmt.Errorf("%w: custom order %s -> %s", ErrIllegalTransition, customOrder.Status, requested)
	}

	if !edge.Allows(role) {
		return CustomOrderOutcome{}, fmt.Errorf("%w: %s cannot move custom order %s -> %s", ErrForbidden, role, customOrder.Status, requested)
	}

	// открытый запрос не адресован ни одному продавцу, отклонять его некому
	if role == entities.RoleSeller && customOrder.SellerID == nil && requested == entities.CustomOrderDeclined {
		return CustomOrderOutcome{}, fmt.Errorf("%w: custom order %s is not addressed to a seller", ErrForbidden, customOrder.ID)
	}

	if missing := payload.missing(edge.Required); len(missing) > 0 {
		return CustomOrderOutcome{}, fmt.Errorf("%w: %v", ErrMissingInput, missing)
	}

	next := customOrder
	next.Photos = slices.Clone(customOrder.Photos)
	next.Status = requested
	next.UpdatedAt = now

	if role == entities.RoleSeller && next.SellerID == nil {
		if strings.TrimSpace(payload.ActorID) == "" {
			return CustomOrderOutcome{}, fmt.Errorf("%w: seller id", ErrMissingInput)
		}
		sellerID := payload.ActorID
		next.SellerID = &sellerID
	}

	var effects []Effect

	switch requested {
	case entities.CustomOrderClarificationNeeded:
		message := strings.TrimSpace(*payload.Message)
		next.LastMessage = &message

	case entities.CustomOrderPendingSellerResponse:
		// ответ покупателя перезапускает срок ответа продавца
		message := strings.TrimSpace(*payload.Message)
		next.LastMessage = &message
		next.ExpiresAt = now.Add(e.opts.responseWindow)

	case entities.CustomOrderConvertedToOrder:
		order, err := e.convert(next, payload, now)
		if err != nil {
			return CustomOrderOutcome{}, err
		}
		next.OrderID = &order.ID
		effects = append(effects, CreateOrder{Order: order})
	}

	effects = append([]Effect{PersistCustomOrderStatus{From: customOrder.Status, CustomOrder: next}}, effects...)

	if recipient := customRecipient(next, role); recipient != "" {
		effects = append(effects, NotifyCounterpart{
			Kind:        entities.KindCustomOrder,
			EntityID:    customOrder.ID,
			RecipientID: recipient,
			MessageKey:  MessageKey(entities.KindCustomOrder, requested.String()),
			Params:      customNotificationParams(next),
		})
	}

	return CustomOrderOutcome{CustomOrder: next, Effects: effects}, nil
}

func (e *CustomOrderEngine) convert(customOrder entities.CustomOrder, payload Payload, now time.Time) (entities.Order, error) {
	if customOrder.SellerID == nil {
		return entities.Order{}, fmt.Errorf("%w: custom order %s has no seller", ErrMissingInput, customOrder.ID)
	}
	if !IsValidAmount(*payload.FinalPrice) {
		return entities.Order{}, fmt.Errorf("%w: final price %s must be a non-negative amount with at most 2 decimal places below 10^12",
			ErrInvalidInput, payload.FinalPrice)
	}

	customOrderID := customOrder.ID
	order := entities.Order{
		ID:              e.opts.newID(),
		BuyerID:         customOrder.BuyerID,
		SellerID:        *customOrder.SellerID,
		Quantity:        1,
		Price:           *payload.FinalPrice,
		Currency:        customOrder.Currency,
		DeliveryAddress: strings.TrimSpace(*payload.DeliveryAddress),
		Notes:           payload.Notes,
		Status:          entities.OrderPending,
		CustomOrderID:   &customOrderID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return order, nil
}

// ViewStatus возвращает статус для отображения. Сохраненный статус при этом не меняется.
func (e *CustomOrderEngine) ViewStatus(customOrder entities.CustomOrder) entities.CustomOrderStatusType {
	if IsExpired(customOrder, e.opts.now()) {
		return entities.CustomOrderExpired
	}
	return customOrder.Status
}

func (e *CustomOrderEngine) Available(customOrder entities.CustomOrder, role entities.ActorRole) []entities.CustomOrderStatusType {
	if role == entities.RoleSeller && IsExpired(customOrder, e.opts.now()) {
		return []entities.CustomOrderStatusType{}
	}
	statuses := Available(entities.KindCustomOrder, customOrder.Status.String(), role)
	result := make([]entities.CustomOrderStatusType, 0, len(statuses))
	for _, s := range statuses {
		if role == entities.RoleSeller && customOrder.SellerID == nil && s == entities.CustomOrderDeclined.String() {
			continue
		}
		result = append(result, entities.CustomOrderStatusType(s))
	}
	return result
}

// IsExpired - неотвеченный запрос после ExpiresAt считается просроченным.
func IsExpired(customOrder entities.CustomOrder, now time.Time) bool {
	return customOrder.Status == entities.CustomOrderPendingSellerResponse &&
		!customOrder.ExpiresAt.IsZero() &&
		now.After(customOrder.ExpiresAt)
}

// CustomRoleOf определяет роль пользователя в индивидуальном заказе. Пока продавец не назначен,
// любой пользователь кроме покупателя выступает продавцом, но отклонить такой запрос не может.
func CustomRoleOf(customOrder entities.CustomOrder, actorID string) (entities.ActorRole, bool) {
	switch {
	case actorID == "":
		return "", false
	case actorID == customOrder.BuyerID:
		return entities.RoleBuyer, true
	case customOrder.SellerID == nil || *customOrder.SellerID == actorID:
		return entities.RoleSeller, true
	default:
		return "", false
	}
}

func customRecipient(customOrder entities.CustomOrder, role entities.ActorRole) string {
	switch role {
	case entities.RoleSeller:
		return customOrder.BuyerID
	case entities.RoleBuyer:
		return customOrder.Seller()
	default:
		return ""
	}
}

func customNotificationParams(customOrder entities.CustomOrder) map[string]string {
	params := map[string]string{
		"status": customOrder.Status.String(),
		"title":  customOrder.Title,
	}
	if customOrder.LastMessage != nil && customOrder.Status != entities.CustomOrderConvertedToOrder {
		params["message"] = *customOrder.LastMessage
	}
	if customOrder.OrderID != nil {
		params["orderId"] = *customOrder.OrderID
	}
	return params
}

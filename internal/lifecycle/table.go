package lifecycle

import (
	"slices"

	"marketplace/internal/entities"
)

// Input - поле payload, которое может требоваться ребру таблицы переходов.
type Input string

const (
	InputTrackingNumber  Input = "trackingNumber"
	InputMessage         Input = "message"
	InputFinalPrice      Input = "finalPrice"
	InputDeliveryAddress Input = "deliveryAddress"
)

func (i Input) String() string {
	return string(i)
}

type Key struct {
	Kind entities.EntityKind
	From string
}

type Edge struct {
	To       string
	Actors   []entities.ActorRole
	Required []Input
	Optional []Input
}

func (e Edge) Allows(role entities.ActorRole) bool {
	return slices.Contains(e.Actors, role)
}

var (
	seller        = []entities.ActorRole{entities.RoleSeller}
	buyer         = []entities.ActorRole{entities.RoleBuyer}
	buyerOrSystem = []entities.ActorRole{entities.RoleSystem, entities.RoleBuyer}
	eitherParty   = []entities.ActorRole{entities.RoleBuyer, entities.RoleSeller}
)

func orderKey(from entities.OrderStatusType) Key {
	return Key{Kind: entities.KindOrder, From: from.String()}
}

func customKey(from entities.CustomOrderStatusType) Key {
	return Key{Kind: entities.KindCustomOrder, From: from.String()}
}

// table содержит только разрешенные переходы. Любая пара (from, to), которой здесь нет,
// запрещена для всех ролей. Самопереходов нет.
var table = map[Key][]Edge{
	orderKey(entities.OrderPending): {
		{To: entities.OrderAccepted.String(), Actors: seller},
		{To: entities.OrderCancelled.String(), Actors: buyer},
	},
	orderKey(entities.OrderAccepted): {
		{To: entities.OrderPaid.String(), Actors: seller},
		{To: entities.OrderProcessing.String(), Actors: seller},
	},
	orderKey(entities.OrderPaid): {
		{To: entities.OrderProcessing.String(), Actors: seller},
	},
	orderKey(entities.OrderProcessing): {
		{To: entities.OrderShipped.String(), Actors: seller, Optional: []Input{InputTrackingNumber}},
	},
	orderKey(entities.OrderShipped): {
		{To: entities.OrderDelivered.String(), Actors: seller},
	},
	orderKey(entities.OrderDelivered): {
		{To: entities.OrderCompleted.String(), Actors: buyerOrSystem},
	},

	customKey(entities.CustomOrderPendingSellerResponse): {
		{To: entities.CustomOrderAccepted.String(), Actors: seller},
		{To: entities.CustomOrderDeclined.String(), Actors: seller},
		{To: entities.CustomOrderClarificationNeeded.String(), Actors: seller, Required: []Input{InputMessage}},
		{To: entities.CustomOrderCancelled.String(), Actors: buyer},
	},
	customKey(entities.CustomOrderClarificationNeeded): {
		{To: entities.CustomOrderPendingSellerResponse.String(), Actors: buyer, Required: []Input{InputMessage}},
		{To: entities.CustomOrderCancelled.String(), Actors: buyer},
	},
	customKey(entities.CustomOrderAccepted): {
		{
			To:       entities.CustomOrderConvertedToOrder.String(),
			Actors:   eitherParty,
			Required: []Input{InputFinalPrice, InputDeliveryAddress},
		},
		{To: entities.CustomOrderCancelled.String(), Actors: buyer},
	},
}

var terminal = map[Key]struct{}{
	orderKey(entities.OrderCancelled):               {},
	orderKey(entities.OrderRefunded):                {},
	orderKey(entities.OrderCompleted):               {},
	customKey(entities.CustomOrderConvertedToOrder): {},
	customKey(entities.CustomOrderDeclined):         {},
	customKey(entities.CustomOrderCancelled):        {},
}

// Lookup возвращает ребро (from -> to) если оно есть в таблице.
func Lookup(kind entities.EntityKind, from, to string) (Edge, bool) {
	for _, edge := range table[Key{Kind: kind, From: from}] {
		if edge.To == to {
			return edge, true
		}
	}
	return Edge{}, false
}

// Edges возвращает копию всех ребер, исходящих из статуса from.
func Edges(kind entities.EntityKind, from string) []Edge {
	return slices.Clone(table[Key{Kind: kind, From: from}])
}

// Available возвращает статусы, в которые роль может перевести сущность из from.
func Available(kind entities.EntityKind, from string, role entities.ActorRole) []string {
	edges := table[Key{Kind: kind, From: from}]
	result := make([]string, 0, len(edges))
	for _, edge := range edges {
		if edge.Allows(role) {
			result = append(result, edge.To)
		}
	}
	return result
}

func IsTerminal(kind entities.EntityKind, status string) bool {
	_, ok := terminal[Key{Kind: kind, From: status}]
	return ok
}

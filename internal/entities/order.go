package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string
	BuyerID         string
	SellerID        string
	ProductID       string
	Quantity        int
	Price           decimal.Decimal
	Currency        string
	DeliveryAddress string
	TrackingNumber  *string
	Notes           *string
	Status          OrderStatusType
	CustomOrderID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "PENDING"
	OrderAccepted   OrderStatusType = "ACCEPTED"
	OrderPaid       OrderStatusType = "PAID"
	OrderProcessing OrderStatusType = "PROCESSING"
	OrderShipped    OrderStatusType = "SHIPPED"
	OrderDelivered  OrderStatusType = "DELIVERED"
	OrderCompleted  OrderStatusType = "COMPLETED"
	OrderCancelled  OrderStatusType = "CANCELLED"
	OrderDisputed   OrderStatusType = "DISPUTED"
	OrderRefunded   OrderStatusType = "REFUNDED"
)

var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderAccepted,
	OrderPaid,
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
	OrderCompleted,
	OrderCancelled,
	OrderDisputed,
	OrderRefunded,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderCreate - данные покупателя для нового заказа.
type OrderCreate struct {
	SellerID        string
	ProductID       string
	Quantity        int
	Price           decimal.Decimal
	Currency        string
	DeliveryAddress string
	Notes           *string
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomOrder struct {
	ID               string
	BuyerID          string
	SellerID         *string
	Title            string
	Description      string
	Photos           []string
	MaxPrice         *decimal.Decimal
	Currency         string
	DeliveryDeadline *time.Time
	IsASAP           bool
	Status           CustomOrderStatusType
	ExpiresAt        time.Time
	LastMessage      *string
	OrderID          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CustomOrderStatusType string

const (
	CustomOrderPendingSellerResponse CustomOrderStatusType = "PENDING_SELLER_RESPONSE"
	CustomOrderClarificationNeeded   CustomOrderStatusType = "CLARIFICATION_NEEDED"
	CustomOrderAccepted              CustomOrderStatusType = "ACCEPTED"
	CustomOrderConvertedToOrder      CustomOrderStatusType = "CONVERTED_TO_ORDER"
	CustomOrderDeclined              CustomOrderStatusType = "DECLINED"
	CustomOrderCancelled             CustomOrderStatusType = "CANCELLED"

	// CustomOrderExpired никогда не сохраняется, это только статус для отображения.
	CustomOrderExpired CustomOrderStatusType = "EXPIRED"
)

var CustomOrderStatuses = []CustomOrderStatusType{
	CustomOrderPendingSellerResponse,
	CustomOrderClarificationNeeded,
	CustomOrderAccepted,
	CustomOrderConvertedToOrder,
	CustomOrderDeclined,
	CustomOrderCancelled,
}

func (s CustomOrderStatusType) String() string {
	return string(s)
}

func (s CustomOrderStatusType) IsValid() bool {
	for _, status := range CustomOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (c CustomOrder) Seller() string {
	if c.SellerID == nil {
		return ""
	}
	return *c.SellerID
}

// CustomOrderCreate - запрос покупателя на индивидуальный заказ. SellerID пустой, если запрос открытый.
type CustomOrderCreate struct {
	SellerID         *string
	Title            string
	Description      string
	Photos           []string
	MaxPrice         *decimal.Decimal
	Currency         string
	DeliveryDeadline *time.Time
	IsASAP           bool
}

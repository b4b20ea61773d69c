package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PingResponse struct {
	Message       string `json:"message"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

type Order struct {
	ID              string          `json:"id"`
	BuyerID         string          `json:"buyerId"`
	SellerID        string          `json:"sellerId"`
	ProductID       string          `json:"productId,omitempty"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	DeliveryAddress string          `json:"deliveryAddress"`
	TrackingNumber  *string         `json:"trackingNumber,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	Status          string          `json:"status"`
	CustomOrderID   *string         `json:"customOrderId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type OrderCreateRequest struct {
	SellerID        string          `json:"sellerId"`
	ProductID       string          `json:"productId"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Notes           *string         `json:"notes,omitempty"`
}

type OrderStatusRequest struct {
	Status         string  `json:"status"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

type ActionsResponse struct {
	Status  string   `json:"status"`
	Role    string   `json:"role"`
	Actions []string `json:"actions"`
}

type CustomOrder struct {
	ID               string           `json:"id"`
	BuyerID          string           `json:"buyerId"`
	SellerID         *string          `json:"sellerId,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Photos           []string         `json:"photos"`
	MaxPrice         *decimal.Decimal `json:"maxPrice,omitempty"`
	Currency         string           `json:"currency"`
	DeliveryDeadline *time.Time       `json:"deliveryDeadline,omitempty"`
	IsASAP           bool             `json:"isAsap"`
	Status           string           `json:"status"`
	ViewStatus       string           `json:"viewStatus"`
	ExpiresAt        time.Time        `json:"expiresAt"`
	LastMessage      *string          `json:"lastMessage,omitempty"`
	OrderID          *string          `json:"orderId,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type CustomOrderCreateRequest struct {
	SellerID         *string          `json:"sellerId,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Photos           []string         `json:"photos"`
	MaxPrice         *decimal.Decimal `json:"maxPrice,omitempty"`
	Currency         string           `json:"currency"`
	DeliveryDeadline *time.Time       `json:"deliveryDeadline,omitempty"`
	IsASAP           bool             `json:"isAsap"`
}

type CustomOrderStatusRequest struct {
	Status          string           `json:"status"`
	Message         *string          `json:"message,omitempty"`
	FinalPrice      *decimal.Decimal `json:"finalPrice,omitempty"`
	DeliveryAddress *string          `json:"deliveryAddress,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

type ReviewCreateRequest struct {
	OrderID             string  `json:"orderId"`
	RevieweeID          string  `json:"revieweeId"`
	OverallRating       int     `json:"overallRating"`
	CommunicationRating int     `json:"communicationRating"`
	TimelinessRating    int     `json:"timelinessRating"`
	Comment             *string `json:"comment,omitempty"`
}

type Review struct {
	ID                  string    `json:"id"`
	OrderID             string    `json:"orderId"`
	ReviewerID          string    `json:"reviewerId"`
	RevieweeID          string    `json:"revieweeId"`
	ReviewerRole        string    `json:"reviewerRole"`
	OverallRating       int       `json:"overallRating"`
	CommunicationRating int       `json:"communicationRating"`
	TimelinessRating    int       `json:"timelinessRating"`
	Comment             *string   `json:"comment,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

type Notification struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipientId"`
	EntityKind  string            `json:"entityKind"`
	EntityID    string            `json:"entityId"`
	MessageKey  string            `json:"messageKey"`
	Params      map[string]string `json:"params,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type NotificationList struct {
	Items []Notification `json:"items"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

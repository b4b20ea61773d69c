package customorder

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomOrderDB struct {
	ID               string
	BuyerID          string
	SellerID         *string
	Title            string
	Description      string
	Photos           []string
	MaxPrice         decimal.NullDecimal
	Currency         string
	DeliveryDeadline *time.Time
	IsASAP           bool
	Status           string
	ExpiresAt        time.Time
	LastMessage      *string
	OrderID          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const customOrderColumns = `id, buyer_id, seller_id, title, description, photos, max_price, currency,
	delivery_deadline, is_asap, status, expires_at, last_message, order_id, created_at, updated_at`

func (c *CustomOrderDB) scanTargets() []interface{} {
	return []interface{}{
		&c.ID,
		&c.BuyerID,
		&c.SellerID,
		&c.Title,
		&c.Description,
		&c.Photos,
		&c.MaxPrice,
		&c.Currency,
		&c.DeliveryDeadline,
		&c.IsASAP,
		&c.Status,
		&c.ExpiresAt,
		&c.LastMessage,
		&c.OrderID,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
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
	Status          string
	CustomOrderID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const orderColumns = `id, buyer_id, seller_id, product_id, quantity, price, currency, delivery_address,
	tracking_number, notes, status, custom_order_id, created_at, updated_at`

func (o *OrderDB) scanTargets() []interface{} {
	return []interface{}{
		&o.ID,
		&o.BuyerID,
		&o.SellerID,
		&o.ProductID,
		&o.Quantity,
		&o.Price,
		&o.Currency,
		&o.DeliveryAddress,
		&o.TrackingNumber,
		&o.Notes,
		&o.Status,
		&o.CustomOrderID,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}

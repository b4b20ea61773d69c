package customorder

import (
	"time"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

func ToDomain(c *CustomOrderDB) *entities.CustomOrder {
	if c == nil {
		return nil
	}

	var maxPrice *decimal.Decimal
	if c.MaxPrice.Valid {
		price := c.MaxPrice.Decimal
		maxPrice = &price
	}

	var deadline *time.Time
	if c.DeliveryDeadline != nil {
		utc := c.DeliveryDeadline.UTC()
		deadline = &utc
	}

	photos := c.Photos
	if photos == nil {
		photos = []string{}
	}

	return &entities.CustomOrder{
		ID:               c.ID,
		BuyerID:          c.BuyerID,
		SellerID:         c.SellerID,
		Title:            c.Title,
		Description:      c.Description,
		Photos:           photos,
		MaxPrice:         maxPrice,
		Currency:         c.Currency,
		DeliveryDeadline: deadline,
		IsASAP:           c.IsASAP,
		Status:           entities.CustomOrderStatusType(c.Status),
		ExpiresAt:        c.ExpiresAt.UTC(),
		LastMessage:      c.LastMessage,
		OrderID:          c.OrderID,
		CreatedAt:        c.CreatedAt.UTC(),
		UpdatedAt:        c.UpdatedAt.UTC(),
	}
}

func FromDomain(c *entities.CustomOrder) *CustomOrderDB {
	if c == nil {
		return nil
	}

	var maxPrice decimal.NullDecimal
	if c.MaxPrice != nil {
		maxPrice = decimal.NewNullDecimal(*c.MaxPrice)
	}

	photos := c.Photos
	if photos == nil {
		photos = []string{}
	}

	return &CustomOrderDB{
		ID:               c.ID,
		BuyerID:          c.BuyerID,
		SellerID:         c.SellerID,
		Title:            c.Title,
		Description:      c.Description,
		Photos:           photos,
		MaxPrice:         maxPrice,
		Currency:         c.Currency,
		DeliveryDeadline: c.DeliveryDeadline,
		IsASAP:           c.IsASAP,
		Status:           c.Status.String(),
		ExpiresAt:        c.ExpiresAt,
		LastMessage:      c.LastMessage,
		OrderID:          c.OrderID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func ToDomainList(customOrdersDB []CustomOrderDB) []entities.CustomOrder {
	if len(customOrdersDB) == 0 {
		return []entities.CustomOrder{}
	}

	result := make([]entities.CustomOrder, len(customOrdersDB))
	for i, customOrderDB := range customOrdersDB {
		customOrderDB := customOrderDB
		result[i] = *ToDomain(&customOrderDB)
	}
	return result
}

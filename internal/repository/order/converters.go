package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		Price:           o.Price,
		Currency:        o.Currency,
		DeliveryAddress: o.DeliveryAddress,
		TrackingNumber:  o.TrackingNumber,
		Notes:           o.Notes,
		Status:          entities.OrderStatusType(o.Status),
		CustomOrderID:   o.CustomOrderID,
		CreatedAt:       o.CreatedAt.UTC(),
		UpdatedAt:       o.UpdatedAt.UTC(),
	}
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}
	return &OrderDB{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		Price:           o.Price,
		Currency:        o.Currency,
		DeliveryAddress: o.DeliveryAddress,
		TrackingNumber:  o.TrackingNumber,
		Notes:           o.Notes,
		Status:          o.Status.String(),
		CustomOrderID:   o.CustomOrderID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		orderDB := orderDB
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

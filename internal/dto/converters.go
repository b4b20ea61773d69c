package dto

import (
	"slices"

	"marketplace/internal/entities"
)

func FromOrder(o *entities.Order) Order {
	return Order{
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

func ToOrder(o *Order) *entities.Order {
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
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromCustomOrder(c *entities.CustomOrder, viewStatus entities.CustomOrderStatusType) CustomOrder {
	photos := slices.Clone(c.Photos)
	if photos == nil {
		photos = []string{}
	}
	return CustomOrder{
		ID:               c.ID,
		BuyerID:          c.BuyerID,
		SellerID:         c.SellerID,
		Title:            c.Title,
		Description:      c.Description,
		Photos:           photos,
		MaxPrice:         c.MaxPrice,
		Currency:         c.Currency,
		DeliveryDeadline: c.DeliveryDeadline,
		IsASAP:           c.IsASAP,
		Status:           c.Status.String(),
		ViewStatus:       viewStatus.String(),
		ExpiresAt:        c.ExpiresAt,
		LastMessage:      c.LastMessage,
		OrderID:          c.OrderID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func ToCustomOrder(c *CustomOrder) *entities.CustomOrder {
	if c == nil {
		return nil
	}
	return &entities.CustomOrder{
		ID:               c.ID,
		BuyerID:          c.BuyerID,
		SellerID:         c.SellerID,
		Title:            c.Title,
		Description:      c.Description,
		Photos:           slices.Clone(c.Photos),
		MaxPrice:         c.MaxPrice,
		Currency:         c.Currency,
		DeliveryDeadline: c.DeliveryDeadline,
		IsASAP:           c.IsASAP,
		Status:           entities.CustomOrderStatusType(c.Status),
		ExpiresAt:        c.ExpiresAt,
		LastMessage:      c.LastMessage,
		OrderID:          c.OrderID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromReview(r *entities.Review) Review {
	return Review{
		ID:                  r.ID,
		OrderID:             r.OrderID,
		ReviewerID:          r.ReviewerID,
		RevieweeID:          r.RevieweeID,
		ReviewerRole:        r.ReviewerRole.String(),
		OverallRating:       r.OverallRating,
		CommunicationRating: r.CommunicationRating,
		TimelinessRating:    r.TimelinessRating,
		Comment:             r.Comment,
		CreatedAt:           r.CreatedAt,
	}
}

func ToReview(r *Review) *entities.Review {
	if r == nil {
		return nil
	}
	return &entities.Review{
		ID:                  r.ID,
		OrderID:             r.OrderID,
		ReviewerID:          r.ReviewerID,
		RevieweeID:          r.RevieweeID,
		ReviewerRole:        entities.ActorRole(r.ReviewerRole),
		OverallRating:       r.OverallRating,
		CommunicationRating: r.CommunicationRating,
		TimelinessRating:    r.TimelinessRating,
		Comment:             r.Comment,
		CreatedAt:           r.CreatedAt,
	}
}

func FromNotifications(items []entities.Notification) NotificationList {
	result := NotificationList{Items: make([]Notification, 0, len(items))}
	for _, n := range items {
		result.Items = append(result.Items, Notification{
			ID:          n.ID,
			RecipientID: n.RecipientID,
			EntityKind:  n.EntityKind.String(),
			EntityID:    n.EntityID,
			MessageKey:  n.MessageKey,
			Params:      n.Params,
			CreatedAt:   n.CreatedAt,
		})
	}
	return result
}

func FromTokenPair(p *entities.TokenPair) TokenPair {
	return TokenPair{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}

func ToTokenPair(p *TokenPair) *entities.TokenPair {
	if p == nil {
		return nil
	}
	return &entities.TokenPair{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}

func ToNotifications(list *NotificationList) []entities.Notification {
	if list == nil {
		return nil
	}
	result := make([]entities.Notification, 0, len(list.Items))
	for _, n := range list.Items {
		result = append(result, entities.Notification{
			ID:          n.ID,
			RecipientID: n.RecipientID,
			EntityKind:  entities.EntityKind(n.EntityKind),
			EntityID:    n.EntityID,
			MessageKey:  n.MessageKey,
			Params:      n.Params,
			CreatedAt:   n.CreatedAt,
		})
	}
	return result
}
